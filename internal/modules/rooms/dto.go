package rooms

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number" validate:"required"`
	Capacity      int     `json:"capacity" validate:"required,gte=1"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Description   string  `json:"description"`
}

type UpdateRoomRequest struct {
	Capacity      *int     `json:"capacity"`
	PricePerNight *float64 `json:"price_per_night"`
	Description   *string  `json:"description"`
	IsActive      *bool    `json:"is_active"`
}
