package domain

import "time"

type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

type Guest struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name" validate:"required"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
