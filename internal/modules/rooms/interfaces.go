package rooms

import (
	"context"

	"hotelbooking/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	List(ctx context.Context, limit, offset int) ([]domain.Room, int64, error)
	Update(ctx context.Context, r *domain.Room) error
}
