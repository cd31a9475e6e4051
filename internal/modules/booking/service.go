package booking

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	checker  AvailabilityChecker
	now      func() time.Time
}

func NewService(bookings BookingRepository, rooms RoomRepository, checker AvailabilityChecker) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		checker:  checker,
		now:      time.Now,
	}
}

// Create validates the request, checks availability and persists the booking
// in pending status. The storage layer enforces a no-overlap constraint for
// active bookings; a violation from a concurrent creator surfaces as
// ErrRoomUnavailable, same as the in-process check.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	rng, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if req.GuestCount < 1 {
		return nil, ErrInvalidGuestCount
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if req.GuestCount > room.Capacity {
		return nil, ErrGuestCountExceeded
	}

	ok, err := s.checker.IsAvailable(ctx, req.RoomID, rng, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomUnavailable
	}

	total := float64(rng.Nights()) * room.PricePerNight
	total = math.Round(total*100) / 100

	b := &domain.Booking{
		ReferenceCode:   newReferenceCode(),
		RoomID:          req.RoomID,
		GuestID:         req.GuestID,
		CheckIn:         rng.CheckIn,
		CheckOut:        rng.CheckOut,
		GuestCount:      req.GuestCount,
		TotalPrice:      total,
		Status:          domain.BookingPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isOverlapConstraintViolation(err) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}
	return b, nil
}

// Cancel moves a pending or confirmed booking to cancelled and stores the
// reason. It never touches an associated payment; refunds are a separate,
// explicit call on the payment.
func (s *Service) Cancel(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error) {
	b, err := s.getByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(domain.BookingCancelled) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, b.Status, reason); err != nil {
		if errors.Is(err, domain.ErrStaleStatus) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}
	return s.getByID(ctx, bookingID)
}

// MarkCompleted is the housekeeping transition confirmed -> completed,
// valid only once the checkout date has passed.
func (s *Service) MarkCompleted(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.getByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(domain.BookingCompleted) {
		return nil, ErrInvalidStatusTransition
	}
	if b.CheckOut.After(s.now()) {
		return nil, ErrStayNotEnded
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, b.Status, domain.BookingCompleted); err != nil {
		if errors.Is(err, domain.ErrStaleStatus) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}
	return s.getByID(ctx, bookingID)
}

// CompleteExpired completes every confirmed booking whose checkout date has
// passed. Invoked by the periodic sweeper, not by user action.
func (s *Service) CompleteExpired(ctx context.Context) (int64, error) {
	return s.bookings.CompleteExpired(ctx, s.now())
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.getByID(ctx, bookingID)
}

func (s *Service) ListForGuest(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListForGuest(ctx, guestID, limit, offset)
}

func (s *Service) getByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// isOverlapConstraintViolation matches the postgres exclusion constraint
// backstop (see repository.EnsureBookingConstraints). 23P01 is exclusion
// violation, 23505 unique violation.
func isOverlapConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23P01" && pgErr.Code != "23505" {
		return false
	}
	return pgErr.ConstraintName == "bookings_no_overlap"
}
