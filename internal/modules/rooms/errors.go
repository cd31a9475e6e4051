package rooms

import "errors"

var (
	ErrNotFound            = errors.New("room not found")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrValidation          = errors.New("validation error")
)
