package rooms

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	if r != nil && args.Error(0) == nil {
		r.ID = 1
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context, limit, offset int) ([]domain.Room, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Room), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomRepository) Update(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func TestCreateRoom_Success(t *testing.T) {
	repo := new(MockRoomRepository)
	repo.On("GetByNumber", mock.Anything, "101").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	room, err := svc.Create(context.Background(), CreateRoomRequest{
		RoomNumber: "101", Capacity: 2, PricePerNight: 100,
	})

	assert.NoError(t, err)
	assert.True(t, room.IsActive)
	assert.Equal(t, "101", room.RoomNumber)
}

func TestCreateRoom_DuplicateNumber(t *testing.T) {
	repo := new(MockRoomRepository)
	repo.On("GetByNumber", mock.Anything, "101").Return(&domain.Room{ID: 7, RoomNumber: "101"}, nil)

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), CreateRoomRequest{
		RoomNumber: "101", Capacity: 2, PricePerNight: 100,
	})

	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRoom_Validation(t *testing.T) {
	svc := NewService(new(MockRoomRepository))

	_, err := svc.Create(context.Background(), CreateRoomRequest{RoomNumber: " ", Capacity: 2, PricePerNight: 100})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateRoomRequest{RoomNumber: "101", Capacity: 0, PricePerNight: 100})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRoom_PartialFields(t *testing.T) {
	repo := new(MockRoomRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{
		ID: 1, RoomNumber: "101", Capacity: 2, PricePerNight: 100, IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	newPrice := 120.0
	room, err := svc.Update(context.Background(), 1, UpdateRoomRequest{PricePerNight: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, 120.0, room.PricePerNight)
	assert.Equal(t, 2, room.Capacity) // untouched
}

func TestDeactivateRoom(t *testing.T) {
	repo := new(MockRoomRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, RoomNumber: "101", Capacity: 2, IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	room, err := svc.Deactivate(context.Background(), 1)

	assert.NoError(t, err)
	assert.False(t, room.IsActive)
}
