package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrListingNotFound = errors.New("listing not found")

	ErrInvalidListingID = errors.New("invalid listing ID format")
)
