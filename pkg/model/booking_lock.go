package model

import "time"

// BookingLock is an advisory lock held for the duration of a booking
// creation. The _id encodes the listing, so a concurrent creation on the
// same listing fails with a duplicate key error. A TTL index on expires_at
// reaps locks abandoned by crashed requests.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
