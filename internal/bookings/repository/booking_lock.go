package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stayhub/pkg/config"
	"stayhub/pkg/model"
)

const LockCollectionName = "Booking_locks"

// BookingLockRepository provides operations for per-listing advisory locks.
// Lock identity rides on the _id uniqueness constraint: the second inserter
// of the same lock ID gets a duplicate key error.
type BookingLockRepository interface {
	Create(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error)
	Delete(ctx context.Context, lockID string) error
}

type mongoBookingLockRepository struct {
	collection *mongo.Collection
}

func NewBookingLockRepository(cfg *config.Config) BookingLockRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoBookingLockRepository{
		collection: db.Collection(LockCollectionName),
	}
}

func (r *mongoBookingLockRepository) Create(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	lock.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		return nil, err
	}

	return lock, nil
}

func (r *mongoBookingLockRepository) Delete(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
