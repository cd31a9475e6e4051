package rooms

import (
	"context"
	"errors"
	"strings"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	number := strings.TrimSpace(req.RoomNumber)
	if number == "" || req.Capacity < 1 || req.PricePerNight < 0 {
		return nil, ErrValidation
	}

	if _, err := s.rooms.GetByNumber(ctx, number); err == nil {
		return nil, ErrDuplicateRoomNumber
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := &domain.Room{
		RoomNumber:    number,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Description:   req.Description,
		IsActive:      true,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Room, int64, error) {
	return s.rooms.List(ctx, limit, offset)
}

// Update changes room attributes. The room number is deliberately not
// updatable: it identifies the physical room.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrValidation
		}
		room.Capacity = *req.Capacity
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight < 0 {
			return nil, ErrValidation
		}
		room.PricePerNight = *req.PricePerNight
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Deactivate takes the room out of sale. Rooms are never hard-deleted:
// bookings keep referencing them.
func (s *Service) Deactivate(ctx context.Context, id int64) (*domain.Room, error) {
	inactive := false
	return s.Update(ctx, id, UpdateRoomRequest{IsActive: &inactive})
}
