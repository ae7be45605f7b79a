package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingserrors "stayhub/internal/bookings/errors"
	"stayhub/pkg/config"
	mongotx "stayhub/pkg/db/mongo"
	"stayhub/pkg/model"
)

const (
	CollectionName = "Bookings"
)

type mongoBookingRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindByGuest(ctx context.Context, guestID string) ([]*model.Booking, error)
	FindByGuestAndListing(ctx context.Context, guestID, listingID string) ([]*model.Booking, error)
	FindOverlapping(ctx context.Context, listingID string, checkIn, checkOut time.Time) ([]*model.Booking, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo.Client),
	}
}

// withTimeout wraps the context with a timeout if not already in a transaction.
// SessionContext cannot be wrapped without breaking transaction semantics, so
// inside a transaction the original context is returned with a no-op cancel.
func (r *mongoBookingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		if remaining := time.Until(deadline); remaining < timeout {
			return context.WithTimeout(ctx, remaining)
		}
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	}
	return nil
}

func (r *mongoBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	var booking model.Booking
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return &booking, nil
}

func (r *mongoBookingRepository) FindByGuest(ctx context.Context, guestID string) ([]*model.Booking, error) {
	return r.find(ctx, bson.M{"guest": guestID})
}

func (r *mongoBookingRepository) FindByGuestAndListing(ctx context.Context, guestID, listingID string) ([]*model.Booking, error) {
	return r.find(ctx, bson.M{"guest": guestID, "listing": listingID})
}

// FindOverlapping returns bookings on the listing whose stay overlaps the
// requested interval under the open-overlap rule: an existing booking
// conflicts iff it starts before the new check-out and ends after the new
// check-in. Touching endpoints do not match.
func (r *mongoBookingRepository) FindOverlapping(ctx context.Context, listingID string, checkIn, checkOut time.Time) ([]*model.Booking, error) {
	return r.find(ctx, bson.M{
		"listing":   listingID,
		"check_in":  bson.M{"$lt": checkOut},
		"check_out": bson.M{"$gt": checkIn},
	})
}

func (r *mongoBookingRepository) find(ctx context.Context, filter bson.M) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "check_in", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
