package availability

import "errors"

var ErrRoomNotFound = errors.New("room not found")
