package payment

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	payments paymentRepo
	bookings bookingReader
	writer   bookingWriter
}

func NewService(payments paymentRepo, bookings bookingReader, writer bookingWriter) *Service {
	return &Service{payments: payments, bookings: bookings, writer: writer}
}

// Create records a pending payment for a booking. One live payment per
// booking: a prior FAILED attempt may be superseded (the failed row stays
// as an audit record), anything else is a duplicate. The amount must match
// the booking total computed at creation time.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	method := domain.PaymentMethod(req.Method)
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !amountEqual(req.Amount, b.TotalPrice) {
		return nil, ErrAmountMismatch
	}

	existing, err := s.payments.GetCurrentByBookingID(ctx, req.BookingID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status != domain.PaymentFailed {
		return nil, ErrDuplicatePayment
	}

	p := &domain.Payment{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  currency,
		Method:    method,
		Status:    domain.PaymentPending,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// TransitionStatus applies the payment state machine and cascades the
// linked booking: a completed payment confirms a pending booking, a refund
// cancels an active one. A booking already cancelled stays cancelled; a
// cancelled booking with a completed payment is a valid state awaiting
// refund processing.
func (s *Service) TransitionStatus(ctx context.Context, paymentID int64, newStatus domain.PaymentStatus, refundReason string) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !p.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidStatusTransition
	}
	if newStatus == domain.PaymentRefunded && strings.TrimSpace(refundReason) == "" {
		return nil, ErrMissingRefundReason
	}

	if err := s.payments.UpdateStatus(ctx, paymentID, p.Status, newStatus, refundReason); err != nil {
		if errors.Is(err, domain.ErrStaleStatus) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}

	switch newStatus {
	case domain.PaymentCompleted:
		s.cascadeConfirm(ctx, p.BookingID)
	case domain.PaymentRefunded:
		s.cascadeCancel(ctx, p.BookingID, refundReason)
	}

	return s.payments.GetByID(ctx, paymentID)
}

func (s *Service) GetByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetForBooking(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	p, err := s.payments.GetCurrentByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) cascadeConfirm(ctx context.Context, bookingID int64) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("payment_cascade status=confirm booking_id=%d err=%v", bookingID, err)
		return
	}
	if !b.Status.CanTransitionTo(domain.BookingConfirmed) {
		return
	}
	if err := s.writer.UpdateStatus(ctx, bookingID, b.Status, domain.BookingConfirmed); err != nil {
		log.Printf("payment_cascade status=confirm booking_id=%d err=%v", bookingID, err)
	}
}

func (s *Service) cascadeCancel(ctx context.Context, bookingID int64, reason string) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("payment_cascade status=cancel booking_id=%d err=%v", bookingID, err)
		return
	}
	if !b.Status.IsActive() {
		return
	}
	if err := s.writer.CancelWithReason(ctx, bookingID, b.Status, reason); err != nil {
		log.Printf("payment_cascade status=cancel booking_id=%d err=%v", bookingID, err)
	}
}

func amountEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
