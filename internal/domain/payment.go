package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
)

// paymentTransitions is the only place payment status rules live.
// Failed and refunded are terminal for a payment record.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentCompleted, PaymentFailed},
	PaymentCompleted: {PaymentRefunded},
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodCash:
		return true
	}
	return false
}

// Payment is the financial record tied 1:1 to a booking. Rows are never
// deleted; a failed payment may be superseded but stays as an audit record.
type Payment struct {
	ID           int64         `json:"id"`
	BookingID    int64         `json:"booking_id" validate:"required"`
	Amount       float64       `json:"amount" validate:"required,gt=0"`
	Currency     string        `json:"currency" validate:"required,len=3"`
	Method       PaymentMethod `json:"method" validate:"required"`
	Status       PaymentStatus `json:"status"`
	RefundReason string        `json:"refund_reason,omitempty" gorm:"type:text"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
	RefundedAt   *time.Time    `json:"refunded_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
