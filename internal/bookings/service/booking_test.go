package service

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "stayhub/internal/bookings/errors"
	"stayhub/internal/bookings/events"
	"stayhub/internal/bookings/validator"
	"stayhub/pkg/config"
	mongotx "stayhub/pkg/db/mongo"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/logger"
	"stayhub/pkg/model"
)

// Mock repositories for testing

type mockBookingRepository struct {
	createFunc                func(ctx context.Context, booking *model.Booking) error
	findByIDFunc              func(ctx context.Context, id string) (*model.Booking, error)
	findByGuestFunc           func(ctx context.Context, guestID string) ([]*model.Booking, error)
	findByGuestAndListingFunc func(ctx context.Context, guestID, listingID string) ([]*model.Booking, error)
	findOverlappingFunc       func(ctx context.Context, listingID string, checkIn, checkOut time.Time) ([]*model.Booking, error)
	findAllFunc               func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = primitive.NewObjectID().Hex()
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindByGuest(ctx context.Context, guestID string) ([]*model.Booking, error) {
	if m.findByGuestFunc != nil {
		return m.findByGuestFunc(ctx, guestID)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindByGuestAndListing(ctx context.Context, guestID, listingID string) ([]*model.Booking, error) {
	if m.findByGuestAndListingFunc != nil {
		return m.findByGuestAndListingFunc(ctx, guestID, listingID)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindOverlapping(ctx context.Context, listingID string, checkIn, checkOut time.Time) ([]*model.Booking, error) {
	if m.findOverlappingFunc != nil {
		return m.findOverlappingFunc(ctx, listingID, checkIn, checkOut)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockLockRepository struct {
	createFunc func(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error)
	deleted    []string
}

func (m *mockLockRepository) Create(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, lock)
	}
	return lock, nil
}

func (m *mockLockRepository) Delete(ctx context.Context, lockID string) error {
	m.deleted = append(m.deleted, lockID)
	return nil
}

type mockListingRepository struct {
	findByIDFunc  func(ctx context.Context, id string) (*model.Listing, error)
	findByIDsFunc func(ctx context.Context, ids []string) (map[string]*model.Listing, error)
}

func (m *mockListingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrListingNotFound
}

func (m *mockListingRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*model.Listing, error) {
	if m.findByIDsFunc != nil {
		return m.findByIDsFunc(ctx, ids)
	}
	return map[string]*model.Listing{}, nil
}

type mockPropertyRepository struct {
	findByIDsFunc func(ctx context.Context, ids []string) (map[string]*model.Property, error)
}

func (m *mockPropertyRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*model.Property, error) {
	if m.findByIDsFunc != nil {
		return m.findByIDsFunc(ctx, ids)
	}
	return map[string]*model.Property{}, nil
}

type mockUserRepository struct {
	findProfilesFunc func(ctx context.Context, ids []string) (map[string]*model.GuestProfile, error)
}

func (m *mockUserRepository) FindProfilesByIDs(ctx context.Context, ids []string) (map[string]*model.GuestProfile, error) {
	if m.findProfilesFunc != nil {
		return m.findProfilesFunc(ctx, ids)
	}
	return map[string]*model.GuestProfile{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		BookingLockTTL: 10 * time.Second,
	}
}

type testDeps struct {
	repo     *mockBookingRepository
	locks    *mockLockRepository
	listings *mockListingRepository
	props    *mockPropertyRepository
	users    *mockUserRepository
}

func newTestService(deps *testDeps) BookingService {
	cfg := testConfig()
	return NewBookingService(
		deps.repo,
		deps.locks,
		deps.listings,
		deps.props,
		deps.users,
		validator.NewBookingValidator(cfg.Log),
		events.NopPublisher{},
		cfg,
	)
}

func date(day int) time.Time {
	return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
}

func availableListing(id string) *model.Listing {
	return &model.Listing{
		ID:       id,
		Property: primitive.NewObjectID().Hex(),
		AvailableDates: []model.DateRange{
			{StartDate: date(1), EndDate: date(10)},
		},
	}
}

func validBooking(listingID string) *model.Booking {
	return &model.Booking{
		Listing:        listingID,
		CheckIn:        date(1),
		CheckOut:       date(5),
		NumberOfAdults: 2,
		TotalPrice:     450,
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != code {
		t.Fatalf("expected error code %s, got %s (%v)", code, appErr.Code, err)
	}
}

func TestCreate_Success(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()

	var inserted *model.Booking
	deps := &testDeps{
		repo: &mockBookingRepository{
			createFunc: func(ctx context.Context, booking *model.Booking) error {
				inserted = booking
				booking.ID = primitive.NewObjectID().Hex()
				return nil
			},
		},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
				return availableListing(listingID), nil
			},
		},
		props: &mockPropertyRepository{},
		users: &mockUserRepository{},
	}
	svc := newTestService(deps)

	booking := validBooking(listingID)
	booking.Guest = "spoofed-user" // must be overwritten by the caller identity

	if err := svc.Create(context.Background(), booking, "guest-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inserted == nil {
		t.Fatal("expected booking to be persisted")
	}
	if inserted.Guest != "guest-1" {
		t.Errorf("expected guest bound to caller identity, got %q", inserted.Guest)
	}
	if booking.ID == "" {
		t.Error("expected booking ID to be assigned")
	}
	if len(deps.locks.deleted) != 1 {
		t.Errorf("expected advisory lock to be released once, got %d", len(deps.locks.deleted))
	}
}

func TestCreate_MissingFields(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()

	cases := []struct {
		name   string
		mutate func(b *model.Booking)
	}{
		{"missing listing", func(b *model.Booking) { b.Listing = "" }},
		{"missing check_in", func(b *model.Booking) { b.CheckIn = time.Time{} }},
		{"missing check_out", func(b *model.Booking) { b.CheckOut = time.Time{} }},
		{"zero adults", func(b *model.Booking) { b.NumberOfAdults = 0 }},
		{"zero price", func(b *model.Booking) { b.TotalPrice = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			created := false
			deps := &testDeps{
				repo: &mockBookingRepository{
					createFunc: func(ctx context.Context, booking *model.Booking) error {
						created = true
						return nil
					},
				},
				locks:    &mockLockRepository{},
				listings: &mockListingRepository{},
				props:    &mockPropertyRepository{},
				users:    &mockUserRepository{},
			}
			svc := newTestService(deps)

			booking := validBooking(listingID)
			tc.mutate(booking)

			err := svc.Create(context.Background(), booking, "guest-1")
			assertErrorCode(t, err, apperrors.CodeValidation)
			if created {
				t.Error("booking must not be persisted on validation failure")
			}
		})
	}
}

func TestCreate_InvalidListing(t *testing.T) {
	deps := &testDeps{
		repo:     &mockBookingRepository{},
		locks:    &mockLockRepository{},
		listings: &mockListingRepository{}, // defaults to ErrListingNotFound
		props:    &mockPropertyRepository{},
		users:    &mockUserRepository{},
	}
	svc := newTestService(deps)

	err := svc.Create(context.Background(), validBooking(primitive.NewObjectID().Hex()), "guest-1")
	assertErrorCode(t, err, apperrors.CodeNotFound)
}

func TestCreate_DatesNotAvailable(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()
	deps := &testDeps{
		repo:  &mockBookingRepository{},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
				return availableListing(listingID), nil
			},
		},
		props: &mockPropertyRepository{},
		users: &mockUserRepository{},
	}
	svc := newTestService(deps)

	// Window ends June 10; the requested stay runs past it.
	booking := validBooking(listingID)
	booking.CheckIn = date(9)
	booking.CheckOut = date(12)

	err := svc.Create(context.Background(), booking, "guest-1")
	assertErrorCode(t, err, apperrors.CodePolicy)
}

func TestCreate_OverlapConflict(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()
	created := false
	deps := &testDeps{
		repo: &mockBookingRepository{
			createFunc: func(ctx context.Context, booking *model.Booking) error {
				created = true
				return nil
			},
			findOverlappingFunc: func(ctx context.Context, id string, in, out time.Time) ([]*model.Booking, error) {
				return []*model.Booking{
					{Listing: id, CheckIn: date(1), CheckOut: date(5)},
				}, nil
			},
		},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
				return availableListing(listingID), nil
			},
		},
		props: &mockPropertyRepository{},
		users: &mockUserRepository{},
	}
	svc := newTestService(deps)

	booking := validBooking(listingID)
	booking.CheckIn = date(4)
	booking.CheckOut = date(8)

	err := svc.Create(context.Background(), booking, "guest-1")
	assertErrorCode(t, err, apperrors.CodeConflict)
	if created {
		t.Error("booking must not be persisted on conflict")
	}
	if len(deps.locks.deleted) != 1 {
		t.Error("advisory lock must be released on the failure path")
	}
}

func TestCreate_TouchingBoundaryIsNotOverlap(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()
	deps := &testDeps{
		repo: &mockBookingRepository{
			// Even if the store returns a booking that merely touches the
			// requested interval, the engine must not treat it as a conflict.
			findOverlappingFunc: func(ctx context.Context, id string, in, out time.Time) ([]*model.Booking, error) {
				return []*model.Booking{
					{Listing: id, CheckIn: date(1), CheckOut: date(5)},
				}, nil
			},
		},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
				return availableListing(listingID), nil
			},
		},
		props: &mockPropertyRepository{},
		users: &mockUserRepository{},
	}
	svc := newTestService(deps)

	booking := validBooking(listingID)
	booking.CheckIn = date(5) // checks in the day the existing stay checks out
	booking.CheckOut = date(8)

	if err := svc.Create(context.Background(), booking, "guest-1"); err != nil {
		t.Fatalf("boundary-touching booking must succeed, got: %v", err)
	}
}

func TestCreate_ListingLockHeld(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()
	deps := &testDeps{
		repo:  &mockBookingRepository{},
		locks: &mockLockRepository{
			createFunc: func(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
				return nil, mongo.WriteException{
					WriteErrors: mongo.WriteErrors{{Code: 11000}},
				}
			},
		},
		listings: &mockListingRepository{
			findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
				return availableListing(listingID), nil
			},
		},
		props: &mockPropertyRepository{},
		users: &mockUserRepository{},
	}
	svc := newTestService(deps)

	err := svc.Create(context.Background(), validBooking(listingID), "guest-1")
	assertErrorCode(t, err, apperrors.CodeConflict)
}

// TestCreate_SequentialScenario walks the canonical sequence: book the start
// of the window, reject an overlap, accept a boundary-touching stay, reject
// a stay that runs past the window.
func TestCreate_SequentialScenario(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()

	var stored []*model.Booking
	deps := &testDeps{
		repo: &mockBookingRepository{
			createFunc: func(ctx context.Context, booking *model.Booking) error {
				copied := *booking
				copied.ID = primitive.NewObjectID().Hex()
				stored = append(stored, &copied)
				booking.ID = copied.ID
				return nil
			},
			findOverlappingFunc: func(ctx context.Context, id string, in, out time.Time) ([]*model.Booking, error) {
				var matches []*model.Booking
				for _, b := range stored {
					if b.Listing == id && b.CheckIn.Before(out) && b.CheckOut.After(in) {
						matches = append(matches, b)
					}
				}
				return matches, nil
			},
		},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
				return availableListing(listingID), nil
			},
		},
		props: &mockPropertyRepository{},
		users: &mockUserRepository{},
	}
	svc := newTestService(deps)

	book := func(in, out int) error {
		b := validBooking(listingID)
		b.CheckIn = date(in)
		b.CheckOut = date(out)
		return svc.Create(context.Background(), b, "guest-1")
	}

	if err := book(1, 5); err != nil {
		t.Fatalf("booking A [1,5) must succeed: %v", err)
	}
	assertErrorCode(t, book(4, 8), apperrors.CodeConflict)
	if err := book(5, 8); err != nil {
		t.Fatalf("booking C [5,8) must succeed: %v", err)
	}
	assertErrorCode(t, book(9, 12), apperrors.CodePolicy)

	if len(stored) != 2 {
		t.Fatalf("expected exactly 2 persisted bookings, got %d", len(stored))
	}
	for i, a := range stored {
		for _, b := range stored[i+1:] {
			if a.CheckIn.Before(b.CheckOut) && a.CheckOut.After(b.CheckIn) {
				t.Errorf("persisted bookings overlap: [%v,%v) and [%v,%v)",
					a.CheckIn, a.CheckOut, b.CheckIn, b.CheckOut)
			}
		}
	}
}

func TestGetByID(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()
	bookingID := primitive.NewObjectID().Hex()

	deps := &testDeps{
		repo: &mockBookingRepository{
			findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
				if id == bookingID {
					b := validBooking(listingID)
					b.ID = bookingID
					b.Guest = "guest-1"
					return b, nil
				}
				if !primitive.IsValidObjectID(id) {
					return nil, bookingserrors.ErrInvalidID
				}
				return nil, bookingserrors.ErrNotFound
			},
		},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDsFunc: func(ctx context.Context, ids []string) (map[string]*model.Listing, error) {
				return map[string]*model.Listing{listingID: availableListing(listingID)}, nil
			},
		},
		props: &mockPropertyRepository{},
		users: &mockUserRepository{},
	}
	svc := newTestService(deps)

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), bookingID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Booking.ID != bookingID {
			t.Errorf("expected booking %s, got %s", bookingID, got.Booking.ID)
		}
		if got.Listing == nil || got.Listing.ID != listingID {
			t.Error("expected listing relation to be expanded")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())
		assertErrorCode(t, err, apperrors.CodeNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "not-a-hex-id")
		assertErrorCode(t, err, apperrors.CodeInvalidInput)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "")
		assertErrorCode(t, err, apperrors.CodeInvalidInput)
	})
}

func TestGetForGuest_EmptyIsNotFound(t *testing.T) {
	deps := &testDeps{
		repo:     &mockBookingRepository{}, // returns no bookings
		locks:    &mockLockRepository{},
		listings: &mockListingRepository{},
		props:    &mockPropertyRepository{},
		users:    &mockUserRepository{},
	}
	svc := newTestService(deps)

	_, err := svc.GetForGuest(context.Background(), "guest-1")
	assertErrorCode(t, err, apperrors.CodeNotFound)
}

func TestGetForGuest_ExpandsRelations(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()
	propertyID := primitive.NewObjectID().Hex()

	listing := availableListing(listingID)
	listing.Property = propertyID

	deps := &testDeps{
		repo: &mockBookingRepository{
			findByGuestFunc: func(ctx context.Context, guestID string) ([]*model.Booking, error) {
				b := validBooking(listingID)
				b.ID = primitive.NewObjectID().Hex()
				b.Guest = guestID
				return []*model.Booking{b}, nil
			},
		},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDsFunc: func(ctx context.Context, ids []string) (map[string]*model.Listing, error) {
				return map[string]*model.Listing{listingID: listing}, nil
			},
		},
		props: &mockPropertyRepository{
			findByIDsFunc: func(ctx context.Context, ids []string) (map[string]*model.Property, error) {
				return map[string]*model.Property{
					propertyID: {ID: propertyID, Owner: "owner-1"},
				}, nil
			},
		},
		users: &mockUserRepository{},
	}
	svc := newTestService(deps)

	got, err := svc.GetForGuest(context.Background(), "guest-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(got))
	}
	if got[0].Listing == nil || got[0].Listing.ID != listingID {
		t.Error("expected listing relation to be expanded")
	}
	if got[0].Property == nil || got[0].Property.ID != propertyID {
		t.Error("expected property relation to be expanded")
	}
}

func TestGetForGuestOnListing(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()

	deps := &testDeps{
		repo:     &mockBookingRepository{}, // returns no bookings
		locks:    &mockLockRepository{},
		listings: &mockListingRepository{},
		props:    &mockPropertyRepository{},
		users:    &mockUserRepository{},
	}
	svc := newTestService(deps)

	t.Run("empty result is a normal success", func(t *testing.T) {
		got, err := svc.GetForGuestOnListing(context.Background(), "guest-1", listingID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %d", len(got))
		}
	})

	t.Run("malformed listing id", func(t *testing.T) {
		_, err := svc.GetForGuestOnListing(context.Background(), "guest-1", "not-a-hex-id")
		assertErrorCode(t, err, apperrors.CodeInvalidInput)
	})
}

func TestGetReservations_FiltersByOwner(t *testing.T) {
	ownedListing := primitive.NewObjectID().Hex()
	otherListing := primitive.NewObjectID().Hex()
	ownedProperty := primitive.NewObjectID().Hex()
	otherProperty := primitive.NewObjectID().Hex()

	deps := &testDeps{
		repo: &mockBookingRepository{
			findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
				mine := validBooking(ownedListing)
				mine.ID = primitive.NewObjectID().Hex()
				mine.Guest = "guest-1"
				theirs := validBooking(otherListing)
				theirs.ID = primitive.NewObjectID().Hex()
				theirs.Guest = "guest-2"
				return []*model.Booking{mine, theirs}, nil
			},
		},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDsFunc: func(ctx context.Context, ids []string) (map[string]*model.Listing, error) {
				return map[string]*model.Listing{
					ownedListing: {ID: ownedListing, Property: ownedProperty},
					otherListing: {ID: otherListing, Property: otherProperty},
				}, nil
			},
		},
		props: &mockPropertyRepository{
			findByIDsFunc: func(ctx context.Context, ids []string) (map[string]*model.Property, error) {
				return map[string]*model.Property{
					ownedProperty: {ID: ownedProperty, Owner: "owner-1"},
					otherProperty: {ID: otherProperty, Owner: "owner-2"},
				}, nil
			},
		},
		users: &mockUserRepository{
			findProfilesFunc: func(ctx context.Context, ids []string) (map[string]*model.GuestProfile, error) {
				if len(ids) != 1 || ids[0] != "guest-1" {
					t.Errorf("expected profile lookup for guest-1 only, got %v", ids)
				}
				return map[string]*model.GuestProfile{
					"guest-1": {ID: "guest-1", Name: "Ada", Email: "ada@example.com", Mobile: "+15550100"},
				}, nil
			},
		},
	}
	svc := newTestService(deps)

	got, err := svc.GetReservations(context.Background(), "owner-1", 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation after ownership filtering, got %d", len(got))
	}

	res := got[0]
	if res.Booking.Listing != ownedListing {
		t.Errorf("expected booking on owned listing, got %s", res.Booking.Listing)
	}
	if res.Property == nil || res.Property.Owner != "owner-1" {
		t.Error("expected property owned by the caller")
	}
	if res.Guest == nil || res.Guest.Name != "Ada" {
		t.Error("expected guest contact projection to be attached")
	}
}

func TestGetReservations_NoOwnedBookings(t *testing.T) {
	listingID := primitive.NewObjectID().Hex()
	propertyID := primitive.NewObjectID().Hex()

	profileLookups := 0
	deps := &testDeps{
		repo: &mockBookingRepository{
			findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
				b := validBooking(listingID)
				b.ID = primitive.NewObjectID().Hex()
				b.Guest = "guest-1"
				return []*model.Booking{b}, nil
			},
		},
		locks: &mockLockRepository{},
		listings: &mockListingRepository{
			findByIDsFunc: func(ctx context.Context, ids []string) (map[string]*model.Listing, error) {
				return map[string]*model.Listing{listingID: {ID: listingID, Property: propertyID}}, nil
			},
		},
		props: &mockPropertyRepository{
			findByIDsFunc: func(ctx context.Context, ids []string) (map[string]*model.Property, error) {
				return map[string]*model.Property{propertyID: {ID: propertyID, Owner: "someone-else"}}, nil
			},
		},
		users: &mockUserRepository{
			findProfilesFunc: func(ctx context.Context, ids []string) (map[string]*model.GuestProfile, error) {
				profileLookups++
				return map[string]*model.GuestProfile{}, nil
			},
		},
	}
	svc := newTestService(deps)

	got, err := svc.GetReservations(context.Background(), "owner-1", 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty reservations, got %d", len(got))
	}
	if profileLookups != 0 {
		t.Error("profile lookup must be skipped when nothing is owned")
	}
}
