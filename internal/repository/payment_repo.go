package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	BookingID    int64      `gorm:"column:booking_id;index"`
	Amount       float64    `gorm:"column:amount"`
	Currency     string     `gorm:"column:currency;size:3"`
	Method       string     `gorm:"column:method;size:20"`
	Status       string     `gorm:"column:status;size:20;index"`
	RefundReason *string    `gorm:"column:refund_reason"`
	PaidAt       *time.Time `gorm:"column:paid_at"`
	RefundedAt   *time.Time `gorm:"column:refunded_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	p := &domain.Payment{
		ID:         m.ID,
		BookingID:  m.BookingID,
		Amount:     m.Amount,
		Currency:   m.Currency,
		Method:     domain.PaymentMethod(m.Method),
		Status:     domain.PaymentStatus(m.Status),
		PaidAt:     m.PaidAt,
		RefundedAt: m.RefundedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.RefundReason != nil {
		p.RefundReason = *m.RefundReason
	}
	return p
}

func toPaymentModel(p *domain.Payment) paymentModel {
	m := paymentModel{
		ID:         p.ID,
		BookingID:  p.BookingID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Method:     string(p.Method),
		Status:     string(p.Status),
		PaidAt:     p.PaidAt,
		RefundedAt: p.RefundedAt,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.RefundReason != "" {
		v := p.RefundReason
		m.RefundReason = &v
	}
	return m
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

// GetCurrentByBookingID returns the booking's live payment. Failed attempts
// are superseded rows and stay behind as audit records.
func (r *PaymentRepository) GetCurrentByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ? AND status <> ?", bookingID, string(domain.PaymentFailed)).
		Order("id DESC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

// UpdateStatus moves the payment from one status to another. The write is a
// compare-and-swap on the prior status so two racing transitions cannot both
// apply; the loser gets domain.ErrStaleStatus.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.PaymentStatus, refundReason string) error {
	now := time.Now().UTC()
	updates := map[string]any{"status": string(to)}
	switch to {
	case domain.PaymentCompleted:
		updates["paid_at"] = now
	case domain.PaymentRefunded:
		updates["refunded_at"] = now
		updates["refund_reason"] = refundReason
	}
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrStaleStatus
	}
	return nil
}
