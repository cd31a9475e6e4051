package booking

import "time"

type CreateBookingRequest struct {
	RoomID          int64     `json:"room_id" binding:"required"`
	GuestID         int64     `json:"-"`
	CheckIn         time.Time `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut        time.Time `json:"check_out" binding:"required" time_format:"2006-01-02"`
	GuestCount      int       `json:"guest_count" binding:"required"`
	SpecialRequests string    `json:"special_requests"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}
