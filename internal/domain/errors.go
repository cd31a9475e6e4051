package domain

import "errors"

// ErrStaleStatus reports a status write that lost a race: the row's status
// no longer matches what the caller read when it decided the transition.
var ErrStaleStatus = errors.New("status changed concurrently")
