package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

// BookingRepository defines the persistence operations the lifecycle manager needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListForGuest(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error)
	// UpdateStatus and CancelWithReason are compare-and-swap writes on the
	// prior status; domain.ErrStaleStatus when a concurrent transition won.
	UpdateStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error
	CancelWithReason(ctx context.Context, bookingID int64, from domain.BookingStatus, reason string) error
	CompleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// RoomRepository defines the room lookups the lifecycle manager needs.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityChecker decides whether a requested stay conflicts with
// existing bookings. The in-process check is an early reject; the storage
// constraint remains the real guard under concurrent creators.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, roomID int64, rng domain.DateRange, excludeBookingID *int64) (bool, error)
}
