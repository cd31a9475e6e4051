package auth

import (
	"context"
	"errors"
	"strings"

	"hotelbooking/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	guests GuestRepository
	jwt    jwtService
}

type LoginResult struct {
	Guest       *domain.Guest
	AccessToken string
}

func NewService(guests GuestRepository, jwt jwtService) *Service {
	return &Service{guests: guests, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Guest, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.guests.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	guest := &domain.Guest{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.RoleGuest,
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, err
	}

	guest.PasswordHash = ""
	return guest, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	guest, err := s.guests.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guest.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(guest.ID, string(guest.Role))
	if err != nil {
		return nil, err
	}

	guest.PasswordHash = ""
	return &LoginResult{Guest: guest, AccessToken: token}, nil
}
