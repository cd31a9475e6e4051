package payment

import (
	"context"

	"hotelbooking/internal/domain"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	// GetCurrentByBookingID returns the booking's live payment, skipping
	// superseded failed attempts. gorm.ErrRecordNotFound when none exists.
	GetCurrentByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
	// UpdateStatus is a compare-and-swap on the prior status;
	// domain.ErrStaleStatus when a concurrent transition got there first.
	UpdateStatus(ctx context.Context, id int64, from, to domain.PaymentStatus, refundReason string) error
}

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type bookingWriter interface {
	UpdateStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error
	CancelWithReason(ctx context.Context, bookingID int64, from domain.BookingStatus, reason string) error
}
