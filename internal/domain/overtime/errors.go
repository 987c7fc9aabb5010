package overtime

import "errors"

var (
	ErrOvertimeInProgress = errors.New("an overtime session is already in progress today")
	ErrNoActiveOvertime   = errors.New("no active overtime session to end")
	ErrSessionNotFound    = errors.New("overtime session not found")
)
