package booking

import "errors"

var (
	ErrInvalidDateRange        = errors.New("check-out must be after check-in")
	ErrInvalidGuestCount       = errors.New("guest count must be positive")
	ErrGuestCountExceeded      = errors.New("guest count exceeds room capacity")
	ErrRoomNotFound            = errors.New("room not found")
	ErrNotFound                = errors.New("booking not found")
	ErrRoomUnavailable         = errors.New("room is not available for the requested dates")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrStayNotEnded            = errors.New("checkout date has not passed yet")
	ErrForbidden               = errors.New("forbidden")
)
