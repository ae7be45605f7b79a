package model

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestListing_Covers(t *testing.T) {
	listing := &Listing{
		AvailableDates: []DateRange{
			{StartDate: day(1), EndDate: day(10)},
			{StartDate: day(20), EndDate: day(25)},
		},
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"inside first window", day(2), day(5), true},
		{"exact first window", day(1), day(10), true},
		{"inside second window", day(21), day(24), true},
		{"starts before window", time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), day(5), false},
		{"ends after window", day(9), day(12), false},
		{"spans the gap between windows", day(9), day(21), false},
		{"entirely outside", day(12), day(15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listing.Covers(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("Covers(%v, %v) = %v, want %v", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}

func TestListing_CoversNoWindows(t *testing.T) {
	listing := &Listing{}
	if listing.Covers(day(1), day(2)) {
		t.Error("a listing with no availability windows must not cover any stay")
	}
}
