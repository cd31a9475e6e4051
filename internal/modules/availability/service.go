package availability

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingReader
	rooms    RoomReader
}

func NewService(bookings BookingReader, rooms RoomReader) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

// IsAvailable reports whether the room is free for every night of rng.
// Only pending and confirmed bookings block availability; cancelled and
// completed ones never do. excludeBookingID lets a caller re-validate a
// booking without it conflicting with itself.
func (s *Service) IsAvailable(ctx context.Context, roomID int64, rng domain.DateRange, excludeBookingID *int64) (bool, error) {
	if err := rng.Validate(); err != nil {
		return false, err
	}

	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRoomNotFound
		}
		return false, err
	}

	candidates, err := s.bookings.FindActiveForRoom(ctx, roomID)
	if err != nil {
		return false, err
	}

	for _, b := range candidates {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if !b.Status.IsActive() {
			continue
		}
		if rng.Overlaps(b.DateRange()) {
			return false, nil
		}
	}
	return true, nil
}
