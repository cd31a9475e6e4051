package availability

import (
	"context"

	"hotelbooking/internal/domain"
)

// BookingReader supplies the candidate bookings the checker decides over.
type BookingReader interface {
	FindActiveForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
}

// RoomReader verifies the room exists; the checker never fabricates
// availability for an unknown room.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
