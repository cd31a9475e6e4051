package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

type guestModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	Phone        *string   `gorm:"column:phone"`
	Role         string    `gorm:"column:role;size:20;default:guest"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (guestModel) TableName() string { return "guests" }

func toDomainGuest(m guestModel) *domain.Guest {
	g := &domain.Guest{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Phone != nil {
		g.Phone = *m.Phone
	}
	return g
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	m := guestModel{
		Email:        g.Email,
		PasswordHash: g.PasswordHash,
		Name:         g.Name,
		Role:         string(g.Role),
	}
	if g.Phone != "" {
		v := g.Phone
		m.Phone = &v
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*g = *toDomainGuest(m)
	return nil
}

func (r *GuestRepository) GetByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}
