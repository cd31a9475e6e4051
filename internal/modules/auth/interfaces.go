package auth

import (
	"context"

	"hotelbooking/internal/domain"
)

type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByEmail(ctx context.Context, email string) (*domain.Guest, error)
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

type jwtService interface {
	GenerateToken(guestID int64, role string) (string, error)
}
