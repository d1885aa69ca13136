package errors

import "fmt"

var (
	ErrAuthentication     = fmt.Errorf("authentication failed")
	ErrInvalidRoomRequest = fmt.Errorf("invalid room request")
	ErrUnknownEventType   = fmt.Errorf("unknown event type")
	ErrUnknownSession     = fmt.Errorf("unknown session")
)
