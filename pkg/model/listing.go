package model

import "time"

// DateRange is an advertised availability window on a listing. Windows may
// overlap each other; start <= end is a convention of the listing service,
// not enforced here.
type DateRange struct {
	StartDate time.Time `json:"start_date" bson:"start_date"`
	EndDate   time.Time `json:"end_date" bson:"end_date"`
}

// Listing is owned by the listing service; this service only reads it.
type Listing struct {
	ID             string      `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string      `json:"title,omitempty" bson:"title,omitempty"`
	Property       string      `json:"property" bson:"property"`
	AvailableDates []DateRange `json:"available_dates" bson:"available_dates"`
}

// Covers reports whether the requested stay lies entirely inside at least
// one advertised window.
func (l *Listing) Covers(checkIn, checkOut time.Time) bool {
	for _, w := range l.AvailableDates {
		if !checkIn.Before(w.StartDate) && !checkOut.After(w.EndDate) {
			return true
		}
	}
	return false
}

// Property groups listings under a single owner.
type Property struct {
	ID    string `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Owner string `json:"owner" bson:"owner"`
}

// GuestProfile is the restricted projection of a user exposed to property
// owners in the reservations view. Nothing beyond these fields ever leaves
// the users collection through this service.
type GuestProfile struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name,omitempty" bson:"name,omitempty"`
	Email  string `json:"email,omitempty" bson:"email,omitempty"`
	Mobile string `json:"mobile,omitempty" bson:"mobile,omitempty"`
}
