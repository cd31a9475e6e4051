package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	ReferenceCode      string     `gorm:"column:reference_code;uniqueIndex"`
	RoomID             int64      `gorm:"column:room_id;index"`
	GuestID            int64      `gorm:"column:guest_id;index"`
	CheckIn            time.Time  `gorm:"column:check_in"`
	CheckOut           time.Time  `gorm:"column:check_out"`
	GuestCount         int        `gorm:"column:guest_count"`
	TotalPrice         float64    `gorm:"column:total_price"`
	Status             string     `gorm:"column:status;index"`
	SpecialRequests    *string    `gorm:"column:special_requests"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:            m.ID,
		ReferenceCode: m.ReferenceCode,
		RoomID:        m.RoomID,
		GuestID:       m.GuestID,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		GuestCount:    m.GuestCount,
		TotalPrice:    m.TotalPrice,
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
	if m.SpecialRequests != nil {
		b.SpecialRequests = *m.SpecialRequests
	}
	if m.CancellationReason != nil {
		b.CancellationReason = *m.CancellationReason
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:            b.ID,
		ReferenceCode: b.ReferenceCode,
		RoomID:        b.RoomID,
		GuestID:       b.GuestID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		GuestCount:    b.GuestCount,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		m.SpecialRequests = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		m.CancellationReason = &v
	}
	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// FindActiveForRoom returns the pending and confirmed bookings for a room,
// the candidate set the availability checker decides over.
func (r *BookingRepository) FindActiveForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND status IN ?", roomID, []string{
			string(domain.BookingPending),
			string(domain.BookingConfirmed),
		}).
		Order("check_in").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListForGuest(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("check_in DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// UpdateStatus moves the booking from one status to another. Compare-and-swap
// on the prior status: a writer working from a stale read gets
// domain.ErrStaleStatus instead of clobbering a concurrent transition.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", bookingID, string(from)).
		Update("status", string(to))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrStaleStatus
	}
	return nil
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID int64, from domain.BookingStatus, reason string) error {
	now := time.Now().UTC()
	updates := map[string]any{
		"status":       string(domain.BookingCancelled),
		"cancelled_at": now,
	}
	if reason != "" {
		updates["cancellation_reason"] = reason
	}
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", bookingID, string(from)).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrStaleStatus
	}
	return nil
}

// CompleteExpired flips confirmed bookings whose checkout has passed to
// completed. Returns the number of rows affected.
func (r *BookingRepository) CompleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ? AND check_out <= ?", string(domain.BookingConfirmed), before).
		Update("status", string(domain.BookingCompleted))
	return tx.RowsAffected, tx.Error
}
