package payment

import "errors"

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrNotFound                = errors.New("payment not found")
	ErrDuplicatePayment        = errors.New("booking already has a payment")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrAmountMismatch          = errors.New("amount does not match booking total")
	ErrInvalidCurrency         = errors.New("currency must be a 3-letter code")
	ErrInvalidMethod           = errors.New("unknown payment method")
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
	ErrMissingRefundReason     = errors.New("refund requires a reason")
)
