package availability

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) FindActiveForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomReader struct {
	mock.Mock
}

func (m *MockRoomReader) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
}

func rng(in, out int) domain.DateRange {
	return domain.DateRange{CheckIn: day(in), CheckOut: day(out)}
}

func setup(t *testing.T, existing []domain.Booking) (*Service, *MockBookingReader, *MockRoomReader) {
	t.Helper()
	bookings := new(MockBookingReader)
	rooms := new(MockRoomReader)
	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, RoomNumber: "101", Capacity: 2, PricePerNight: 100}, nil)
	bookings.On("FindActiveForRoom", mock.Anything, int64(1)).Return(existing, nil)
	return NewService(bookings, rooms), bookings, rooms
}

func TestIsAvailable_NoBookings(t *testing.T) {
	svc, _, _ := setup(t, []domain.Booking{})

	ok, err := svc.IsAvailable(context.Background(), 1, rng(1, 5), nil)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailable_OverlapBlocks(t *testing.T) {
	svc, _, _ := setup(t, []domain.Booking{
		{ID: 7, RoomID: 1, CheckIn: day(3), CheckOut: day(8), Status: domain.BookingConfirmed},
	})

	ok, err := svc.IsAvailable(context.Background(), 1, rng(1, 5), nil)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAvailable_BackToBackDoesNotBlock(t *testing.T) {
	svc, _, _ := setup(t, []domain.Booking{
		{ID: 7, RoomID: 1, CheckIn: day(1), CheckOut: day(5), Status: domain.BookingPending},
	})

	// checks in the same day the other checks out
	ok, err := svc.IsAvailable(context.Background(), 1, rng(5, 10), nil)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailable_CancelledNeverBlocks(t *testing.T) {
	svc, _, _ := setup(t, []domain.Booking{
		{ID: 7, RoomID: 1, CheckIn: day(1), CheckOut: day(10), Status: domain.BookingCancelled},
		{ID: 8, RoomID: 1, CheckIn: day(1), CheckOut: day(10), Status: domain.BookingCompleted},
	})

	ok, err := svc.IsAvailable(context.Background(), 1, rng(2, 6), nil)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailable_ExcludeSelf(t *testing.T) {
	svc, _, _ := setup(t, []domain.Booking{
		{ID: 7, RoomID: 1, CheckIn: day(1), CheckOut: day(5), Status: domain.BookingConfirmed},
	})

	self := int64(7)
	ok, err := svc.IsAvailable(context.Background(), 1, rng(1, 5), &self)
	assert.NoError(t, err)
	assert.True(t, ok)

	other := int64(99)
	ok, err = svc.IsAvailable(context.Background(), 1, rng(1, 5), &other)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAvailable_RoomNotFound(t *testing.T) {
	bookings := new(MockBookingReader)
	rooms := new(MockRoomReader)
	rooms.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewService(bookings, rooms)

	_, err := svc.IsAvailable(context.Background(), 42, rng(1, 5), nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestIsAvailable_InvalidRange(t *testing.T) {
	bookings := new(MockBookingReader)
	rooms := new(MockRoomReader)
	svc := NewService(bookings, rooms)

	_, err := svc.IsAvailable(context.Background(), 1, rng(5, 5), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
