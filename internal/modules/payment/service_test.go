package payment

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// memStore backs paymentRepo, bookingReader and bookingWriter for the
// service tests, close enough to the real repositories to exercise the
// cascades.
type memStore struct {
	payments []*domain.Payment
	bookings map[int64]*domain.Booking
	nextID   int64
}

func newMemStore(bookings ...*domain.Booking) *memStore {
	m := &memStore{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *memStore) Create(ctx context.Context, p *domain.Payment) error {
	m.nextID++
	p.ID = m.nextID
	m.payments = append(m.payments, p)
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	for _, p := range m.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetCurrentByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	for i := len(m.payments) - 1; i >= 0; i-- {
		p := m.payments[i]
		if p.BookingID == bookingID && p.Status != domain.PaymentFailed {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) UpdateStatus(ctx context.Context, id int64, from, to domain.PaymentStatus, refundReason string) error {
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status != from {
		return domain.ErrStaleStatus
	}
	now := time.Now()
	p.Status = to
	switch to {
	case domain.PaymentCompleted:
		p.PaidAt = &now
	case domain.PaymentRefunded:
		p.RefundReason = refundReason
		p.RefundedAt = &now
	}
	return nil
}

type bookingStore struct{ m *memStore }

func (s bookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (s bookingStore) UpdateStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error {
	b, ok := s.m.bookings[bookingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if b.Status != from {
		return domain.ErrStaleStatus
	}
	b.Status = to
	return nil
}

func (s bookingStore) CancelWithReason(ctx context.Context, bookingID int64, from domain.BookingStatus, reason string) error {
	b, ok := s.m.bookings[bookingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if b.Status != from {
		return domain.ErrStaleStatus
	}
	b.Status = domain.BookingCancelled
	b.CancellationReason = reason
	return nil
}

func newTestService(bookings ...*domain.Booking) (*Service, *memStore) {
	store := newMemStore(bookings...)
	bs := bookingStore{m: store}
	return NewService(store, bs, bs), store
}

func pendingBooking(id int64, total float64) *domain.Booking {
	return &domain.Booking{ID: id, RoomID: 1, GuestID: 1, TotalPrice: total, Status: domain.BookingPending}
}

func TestCreate_Success(t *testing.T) {
	svc, _ := newTestService(pendingBooking(1, 300))

	p, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID: 1, Amount: 300, Currency: "usd", Method: "credit_card",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, domain.MethodCreditCard, p.Method)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(pendingBooking(1, 300))

	_, err := svc.Create(context.Background(), CreatePaymentRequest{BookingID: 1, Amount: 0, Currency: "USD", Method: "cash"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create(context.Background(), CreatePaymentRequest{BookingID: 1, Amount: 300, Currency: "dollars", Method: "cash"})
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	_, err = svc.Create(context.Background(), CreatePaymentRequest{BookingID: 1, Amount: 300, Currency: "USD", Method: "crypto"})
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestCreate_BookingNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID: 9, Amount: 300, Currency: "USD", Method: "cash",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreate_AmountMismatch(t *testing.T) {
	svc, _ := newTestService(pendingBooking(1, 300))

	_, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID: 1, Amount: 250, Currency: "USD", Method: "cash",
	})
	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestCreate_DuplicatePayment(t *testing.T) {
	svc, _ := newTestService(pendingBooking(1, 300))

	req := CreatePaymentRequest{BookingID: 1, Amount: 300, Currency: "USD", Method: "cash"}
	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicatePayment)
}

func TestCreate_RetryAfterFailed(t *testing.T) {
	svc, store := newTestService(pendingBooking(1, 300))

	req := CreatePaymentRequest{BookingID: 1, Amount: 300, Currency: "USD", Method: "cash"}
	first, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.TransitionStatus(context.Background(), first.ID, domain.PaymentFailed, "")
	assert.NoError(t, err)

	second, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// the failed attempt stays behind as an audit record
	failed, err := store.GetByID(context.Background(), first.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, failed.Status)
}

func TestTransition_CompletedConfirmsBooking(t *testing.T) {
	b := pendingBooking(1, 300)
	svc, _ := newTestService(b)

	p, err := svc.Create(context.Background(), CreatePaymentRequest{BookingID: 1, Amount: 300, Currency: "USD", Method: "credit_card"})
	assert.NoError(t, err)

	p, err = svc.TransitionStatus(context.Background(), p.ID, domain.PaymentCompleted, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, p.Status)
	assert.NotNil(t, p.PaidAt)
	assert.Equal(t, domain.BookingConfirmed, b.Status)

	// completed is terminal for that edge
	_, err = svc.TransitionStatus(context.Background(), p.ID, domain.PaymentCompleted, "")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestTransition_RefundRequiresReason(t *testing.T) {
	b := pendingBooking(1, 300)
	svc, _ := newTestService(b)

	p, _ := svc.Create(context.Background(), CreatePaymentRequest{BookingID: 1, Amount: 300, Currency: "USD", Method: "credit_card"})
	_, err := svc.TransitionStatus(context.Background(), p.ID, domain.PaymentCompleted, "")
	assert.NoError(t, err)

	_, err = svc.TransitionStatus(context.Background(), p.ID, domain.PaymentRefunded, "")
	assert.ErrorIs(t, err, ErrMissingRefundReason)
	// reason of whitespace only is still missing
	_, err = svc.TransitionStatus(context.Background(), p.ID, domain.PaymentRefunded, "   ")
	assert.ErrorIs(t, err, ErrMissingRefundReason)

	p, err = svc.TransitionStatus(context.Background(), p.ID, domain.PaymentRefunded, "guest request")
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, p.Status)
	assert.Equal(t, "guest request", p.RefundReason)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.Equal(t, "guest request", b.CancellationReason)
}

func TestTransition_RefundBeforeCompletionRejected(t *testing.T) {
	svc, _ := newTestService(pendingBooking(1, 300))

	p, _ := svc.Create(context.Background(), CreatePaymentRequest{BookingID: 1, Amount: 300, Currency: "USD", Method: "cash"})
	_, err := svc.TransitionStatus(context.Background(), p.ID, domain.PaymentRefunded, "too early")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestTransition_RefundOnCancelledBookingKeepsItCancelled(t *testing.T) {
	b := pendingBooking(1, 300)
	svc, _ := newTestService(b)

	p, _ := svc.Create(context.Background(), CreatePaymentRequest{BookingID: 1, Amount: 300, Currency: "USD", Method: "cash"})
	_, err := svc.TransitionStatus(context.Background(), p.ID, domain.PaymentCompleted, "")
	assert.NoError(t, err)

	// guest cancels, refund arrives later
	b.Status = domain.BookingCancelled
	b.CancellationReason = "guest cancelled"

	p, err = svc.TransitionStatus(context.Background(), p.ID, domain.PaymentRefunded, "refund after cancellation")
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, p.Status)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	// the original cancellation reason is not overwritten
	assert.Equal(t, "guest cancelled", b.CancellationReason)
}

// stalePayments simulates a concurrent operator winning the write race
// between the service's read and its status update.
type stalePayments struct{ *memStore }

func (s stalePayments) UpdateStatus(ctx context.Context, id int64, from, to domain.PaymentStatus, refundReason string) error {
	return domain.ErrStaleStatus
}

func TestTransition_LostRaceRejected(t *testing.T) {
	b := pendingBooking(1, 300)
	store := newMemStore(b)
	bs := bookingStore{m: store}
	svc := NewService(stalePayments{store}, bs, bs)

	p := &domain.Payment{BookingID: 1, Amount: 300, Currency: "USD", Method: domain.MethodCash, Status: domain.PaymentPending}
	assert.NoError(t, store.Create(context.Background(), p))

	_, err := svc.TransitionStatus(context.Background(), p.ID, domain.PaymentCompleted, "")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	// losing the race must not cascade onto the booking
	assert.Equal(t, domain.BookingPending, b.Status)
}

func TestTransition_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.TransitionStatus(context.Background(), 404, domain.PaymentCompleted, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Full lifecycle from the booking side: pay, confirm, refund, cancel.
func TestLifecycleScenario(t *testing.T) {
	// Room at $100/night, 3-night stay
	b := pendingBooking(1, 300)
	svc, _ := newTestService(b)

	p, err := svc.Create(context.Background(), CreatePaymentRequest{
		BookingID: 1, Amount: 300, Currency: "USD", Method: "credit_card",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Equal(t, domain.BookingPending, b.Status) // creation alone changes nothing

	p, err = svc.TransitionStatus(context.Background(), p.ID, domain.PaymentCompleted, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)

	p, err = svc.TransitionStatus(context.Background(), p.ID, domain.PaymentRefunded, "guest request")
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, p.Status)
	assert.Equal(t, "guest request", p.RefundReason)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}
