package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "stayhub/internal/bookings/errors"
	"stayhub/pkg/config"
	"stayhub/pkg/model"
)

const (
	ListingCollectionName  = "Listings"
	PropertyCollectionName = "Properties"
)

// ListingRepository is the read-only view into the listing service's data.
// Bookings only consume the availability windows and the property reference.
type ListingRepository interface {
	FindByID(ctx context.Context, id string) (*model.Listing, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*model.Listing, error)
}

// PropertyRepository resolves the owning property behind a listing.
type PropertyRepository interface {
	FindByIDs(ctx context.Context, ids []string) (map[string]*model.Property, error)
}

type mongoListingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoListingRepository(cfg *config.Config) ListingRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoListingRepository{
		cfg:        cfg,
		collection: db.Collection(ListingCollectionName),
	}
}

func (r *mongoListingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidListingID, id)
	}

	var listing model.Listing
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}

	return &listing, nil
}

func (r *mongoListingRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*model.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs(ids)}})
	if err != nil {
		return nil, fmt.Errorf("failed to find listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []*model.Listing
	if err = cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}

	byID := make(map[string]*model.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	return byID, nil
}

type mongoPropertyRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoPropertyRepository(cfg *config.Config) PropertyRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoPropertyRepository{
		cfg:        cfg,
		collection: db.Collection(PropertyCollectionName),
	}
}

func (r *mongoPropertyRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*model.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs(ids)}})
	if err != nil {
		return nil, fmt.Errorf("failed to find properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []*model.Property
	if err = cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}

	byID := make(map[string]*model.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	return byID, nil
}

// objectIDs converts hex identifiers, dropping malformed ones. A malformed
// reference simply fails to expand, mirroring an absent document.
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}
