package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "stayhub/internal/bookings/errors"
	"stayhub/internal/bookings/events"
	"stayhub/internal/bookings/repository"
	"stayhub/internal/bookings/validator"
	"stayhub/pkg/config"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/model"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking, guestID string) error
	GetByID(ctx context.Context, id string) (*model.BookingWithListing, error)
	GetForGuest(ctx context.Context, guestID string) ([]*model.BookingWithListing, error)
	GetForGuestOnListing(ctx context.Context, guestID, listingID string) ([]*model.BookingWithListing, error)
	GetReservations(ctx context.Context, ownerID string, limit int, offset int64) ([]*model.Reservation, error)
}

type bookingService struct {
	repo         repository.BookingRepository
	lockRepo     repository.BookingLockRepository
	listingRepo  repository.ListingRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	validator    *validator.BookingValidator
	publisher    events.Publisher
	cfg          *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	listingRepo repository.ListingRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:         repo,
		lockRepo:     lockRepo,
		listingRepo:  listingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		validator:    validator,
		publisher:    publisher,
		cfg:          cfg,
	}
}

// Create authorizes and persists a booking. The guest is always the
// authenticated caller, never whatever arrived in the payload. The conflict
// check and the insert run inside a transaction, behind a per-listing
// advisory lock, so two racing requests for overlapping dates cannot both
// commit.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking, guestID string) error {
	booking.Guest = guestID

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Please provide all required fields", map[string]any{"error": err.Error()})
	}

	listing, err := s.listingRepo.FindByID(ctx, booking.Listing)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrListingNotFound) || errors.Is(err, bookingserrors.ErrInvalidListingID) {
			return apperrors.NotFoundWithID("Listing", booking.Listing)
		}
		return apperrors.Internal("Failed to resolve listing", err)
	}

	if !listing.Covers(booking.CheckIn, booking.CheckOut) {
		return apperrors.Policy("Booking dates do not fall within the available dates for this listing")
	}

	lockID, err := s.acquireListingLock(ctx, booking.Listing)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseListingLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyNoConflict(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "listing", booking.Listing, "error", err)
		return err
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"listing", booking.Listing,
		"guest", booking.Guest,
		"check_in", booking.CheckIn,
		"check_out", booking.CheckOut,
	)
	s.publisher.BookingCreated(ctx, booking)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.BookingWithListing, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	expanded, err := s.expandListings(ctx, []*model.Booking{booking}, false)
	if err != nil {
		return nil, err
	}
	return expanded[0], nil
}

// GetForGuest returns the caller's bookings with listing and property
// expanded. An empty result surfaces as not found rather than an empty
// success; callers depend on that shape.
func (s *bookingService) GetForGuest(ctx context.Context, guestID string) ([]*model.BookingWithListing, error) {
	if guestID == "" {
		return nil, apperrors.InvalidInput("Guest ID cannot be empty")
	}

	bookings, err := s.repo.FindByGuest(ctx, guestID)
	if err != nil {
		s.cfg.Log.Error("Failed to list guest bookings", "guest", guestID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	if len(bookings) == 0 {
		return nil, apperrors.NotFound("Bookings for the user")
	}

	return s.expandListings(ctx, bookings, true)
}

func (s *bookingService) GetForGuestOnListing(ctx context.Context, guestID, listingID string) ([]*model.BookingWithListing, error) {
	if guestID == "" {
		return nil, apperrors.InvalidInput("Guest ID cannot be empty")
	}
	if !primitive.IsValidObjectID(listingID) {
		return nil, apperrors.InvalidInput("Invalid listing ID format")
	}

	bookings, err := s.repo.FindByGuestAndListing(ctx, guestID, listingID)
	if err != nil {
		s.cfg.Log.Error("Failed to list guest bookings for listing",
			"guest", guestID,
			"listing", listingID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	// Empty is a normal result here, unlike GetForGuest.
	return s.expandListings(ctx, bookings, false)
}

// GetReservations builds the owner view: every booking whose listing belongs
// to a property owned by the caller, with the guest reduced to the contact
// projection. The ownership match is a filtering join; bookings on other
// owners' properties are dropped, not returned with empty relations.
func (s *bookingService) GetReservations(ctx context.Context, ownerID string, limit int, offset int64) ([]*model.Reservation, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidInput("Owner ID cannot be empty")
	}

	bookings, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to scan bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve reservations", err)
	}

	expanded, err := s.expandListings(ctx, bookings, true)
	if err != nil {
		return nil, err
	}

	owned := make([]*model.BookingWithListing, 0, len(expanded))
	guestIDs := make([]string, 0, len(expanded))
	for _, b := range expanded {
		if b.Property == nil || b.Property.Owner != ownerID {
			continue
		}
		owned = append(owned, b)
		guestIDs = append(guestIDs, b.Booking.Guest)
	}

	reservations := make([]*model.Reservation, 0, len(owned))
	if len(owned) == 0 {
		return reservations, nil
	}

	profiles, err := s.userRepo.FindProfilesByIDs(ctx, guestIDs)
	if err != nil {
		s.cfg.Log.Error("Failed to expand guest profiles", "error", err)
		return nil, apperrors.Internal("Failed to retrieve reservations", err)
	}

	for _, b := range owned {
		reservations = append(reservations, &model.Reservation{
			Booking:  b.Booking,
			Listing:  b.Listing,
			Property: b.Property,
			Guest:    profiles[b.Booking.Guest],
		})
	}

	s.cfg.Log.Debug("Reservations view built",
		"owner", ownerID,
		"scanned", len(bookings),
		"kept", len(reservations),
	)
	return reservations, nil
}

// --- Helpers ---

// expandListings resolves the listing reference on each booking with one
// batched fetch, and optionally the second hop to the owning property.
func (s *bookingService) expandListings(ctx context.Context, bookings []*model.Booking, withProperty bool) ([]*model.BookingWithListing, error) {
	listingIDs := make([]string, 0, len(bookings))
	seen := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if !seen[b.Listing] {
			seen[b.Listing] = true
			listingIDs = append(listingIDs, b.Listing)
		}
	}

	listings := map[string]*model.Listing{}
	if len(listingIDs) > 0 {
		var err error
		listings, err = s.listingRepo.FindByIDs(ctx, listingIDs)
		if err != nil {
			s.cfg.Log.Error("Failed to expand listings", "error", err)
			return nil, apperrors.Internal("Failed to expand listings", err)
		}
	}

	properties := map[string]*model.Property{}
	if withProperty {
		propertyIDs := make([]string, 0, len(listings))
		for _, l := range listings {
			propertyIDs = append(propertyIDs, l.Property)
		}
		if len(propertyIDs) > 0 {
			var err error
			properties, err = s.propertyRepo.FindByIDs(ctx, propertyIDs)
			if err != nil {
				s.cfg.Log.Error("Failed to expand properties", "error", err)
				return nil, apperrors.Internal("Failed to expand properties", err)
			}
		}
	}

	expanded := make([]*model.BookingWithListing, 0, len(bookings))
	for _, b := range bookings {
		item := &model.BookingWithListing{Booking: b}
		if l := listings[b.Listing]; l != nil {
			item.Listing = l
			if withProperty {
				item.Property = properties[l.Property]
			}
		}
		expanded = append(expanded, item)
	}
	return expanded, nil
}

func (s *bookingService) verifyNoConflict(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindOverlapping(ctx, booking.Listing, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	for _, b := range existing {
		if overlaps(b.CheckIn, b.CheckOut, booking.CheckIn, booking.CheckOut) {
			return apperrors.Conflict(fmt.Sprintf(
				"Booking dates overlap with an existing booking (%s - %s)",
				b.CheckIn.Format(time.RFC3339),
				b.CheckOut.Format(time.RFC3339),
			))
		}
	}
	return nil
}

// Touching endpoints are not an overlap: a stay may check in the day an
// earlier one checks out.
func overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}

// acquireListingLock takes the per-listing advisory lock. The losing writer
// of a concurrent pair fails here with a conflict instead of double-booking.
func (s *bookingService) acquireListingLock(ctx context.Context, listingID string) (string, error) {
	lockID := fmt.Sprintf("booking_lock_%s", listingID)

	lock := &model.BookingLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(s.cfg.BookingLockTTL),
	}

	if _, err := s.lockRepo.Create(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This listing is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire booking lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseListingLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}
