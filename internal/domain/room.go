package domain

import "time"

type Room struct {
	ID            int64     `json:"id"`
	RoomNumber    string    `json:"room_number" validate:"required"`
	Capacity      int       `json:"capacity" validate:"required,gt=0"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gte=0"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
