package payment

type CreatePaymentRequest struct {
	BookingID int64   `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Currency  string  `json:"currency" binding:"required"`
	Method    string  `json:"method" binding:"required"`
}

type TransitionStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	RefundReason string `json:"refund_reason"`
}
