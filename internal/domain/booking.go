package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// bookingTransitions is the only place booking status rules live.
// Cancelled and completed are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled, BookingCompleted},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive reports whether the booking blocks availability for its nights.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID              int64         `json:"id"`
	ReferenceCode   string        `json:"reference_code"`
	RoomID          int64         `json:"room_id" validate:"required"`
	GuestID         int64         `json:"guest_id" validate:"required"`
	CheckIn         time.Time     `json:"check_in" validate:"required"`
	CheckOut        time.Time     `json:"check_out" validate:"required"`
	GuestCount      int           `json:"guest_count" validate:"required,gt=0"`
	TotalPrice      float64       `json:"total_price" validate:"gte=0"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty" gorm:"type:text"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty" gorm:"type:text"`

	Guest *Guest `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	Room  *Room  `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (b *Booking) DateRange() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}
