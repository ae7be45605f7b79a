package model

import (
	"time"
)

// Booking is a reservation of a listing for a date range. The guest field is
// always the authenticated caller; it is never bound from a request body.
type Booking struct {
	ID               string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Listing          string    `json:"listing" bson:"listing" validate:"required,mongodb"`
	CheckIn          time.Time `json:"check_in" bson:"check_in" validate:"required"`
	CheckOut         time.Time `json:"check_out" bson:"check_out" validate:"required,gtfield=CheckIn"`
	NumberOfAdults   int       `json:"number_of_adults" bson:"number_of_adults" validate:"required,min=1"`
	NumberOfChildren int       `json:"number_of_children" bson:"number_of_children" validate:"omitempty,min=0"`
	TotalPrice       float64   `json:"total_price" bson:"total_price" validate:"required,min=0"`
	Guest            string    `json:"guest" bson:"guest" validate:"required"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// BookingWithListing is a booking with its listing relation expanded, plus
// the listing's owning property when the view needs the second hop.
type BookingWithListing struct {
	Booking  *Booking  `json:"booking"`
	Listing  *Listing  `json:"listing,omitempty"`
	Property *Property `json:"property,omitempty"`
}

// Reservation is the owner-facing view of a booking: listing and property
// expanded, guest reduced to the contact projection.
type Reservation struct {
	Booking  *Booking      `json:"booking"`
	Listing  *Listing      `json:"listing"`
	Property *Property     `json:"property"`
	Guest    *GuestProfile `json:"guest,omitempty"`
}
