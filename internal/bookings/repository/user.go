package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayhub/pkg/config"
	"stayhub/pkg/model"
)

const UserCollectionName = "Users"

// UserRepository exposes guests to the reservations view. The projection is
// fixed server-side: only id, name, email and mobile ever leave the users
// collection through this repository.
type UserRepository interface {
	FindProfilesByIDs(ctx context.Context, ids []string) (map[string]*model.GuestProfile, error)
}

type mongoUserRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoUserRepository(cfg *config.Config) UserRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoUserRepository{
		cfg:        cfg,
		collection: db.Collection(UserCollectionName),
	}
}

func (r *mongoUserRepository) FindProfilesByIDs(ctx context.Context, ids []string) (map[string]*model.GuestProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{
		"_id":    1,
		"name":   1,
		"email":  1,
		"mobile": 1,
	})

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs(ids)}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []*model.GuestProfile
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	byID := make(map[string]*model.GuestProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	return byID, nil
}
