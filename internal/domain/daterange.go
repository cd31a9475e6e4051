package domain

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// DateRange is a stay interval with half-open semantics: the guest occupies
// the nights [CheckIn, CheckOut), so checking out on the day another booking
// checks in is not a conflict.
type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

func (r DateRange) Validate() error {
	if !r.CheckOut.After(r.CheckIn) {
		return ErrInvalidDateRange
	}
	return nil
}

// Nights rounds down to whole nights; callers pass date-granular times.
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether two ranges share at least one night.
// Back-to-back ranges (one ends where the other starts) do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}
