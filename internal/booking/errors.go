package booking

import (
	"fmt"
	"time"
)

// ValidationError is a precondition failure detected against local state.
// It is surfaced immediately and never reaches the remote booking service.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// SuspendedError rejects an action because the user holds an active
// suspension. It carries the reinstatement date so the caller can render it.
type SuspendedError struct {
	UserID string
	Until  time.Time
}

func (e *SuspendedError) Error() string {
	return fmt.Sprintf("player %s is suspended until %s", e.UserID, e.Until.Format("2006-01-02"))
}

// RemoteError means the booking service rejected the operation or was
// unreachable. The message is passed through verbatim; local state is
// guaranteed untouched.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}
