package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	RoomNumber    string    `gorm:"column:room_number;uniqueIndex;size:50"`
	Capacity      int       `gorm:"column:capacity"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	Description   *string   `gorm:"column:description"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	r := &domain.Room{
		ID:            m.ID,
		RoomNumber:    m.RoomNumber,
		Capacity:      m.Capacity,
		PricePerNight: m.PricePerNight,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Description != nil {
		r.Description = *m.Description
	}
	return r
}

func toRoomModel(r *domain.Room) roomModel {
	m := roomModel{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.Description != "" {
		v := r.Description
		m.Description = &v
	}
	return m
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Where("room_number = ?", number).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context, limit, offset int) ([]domain.Room, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&roomModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []roomModel
	tx := r.db.WithContext(ctx).
		Order("room_number").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, total, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	return r.db.WithContext(ctx).Save(&m).Error
}
