package session

import "errors"

// Errors returned by the session package.
var (
	ErrCanceled      = errors.New("session: operation canceled")
	ErrSessionClosed = errors.New("session: session closed")
)

// Error is raised by the blocking forms SendSync and BroadcastSync. It wraps
// either the failure of the underlying operation or the cancellation of the
// waiting context; no other condition produces it.
type Error struct {
	msg   string
	cause error
}

func newInterruptedError(op string, cause error) *Error {
	return &Error{msg: op + " interrupted", cause: cause}
}

func newFailureError(op string, cause error) *Error {
	return &Error{msg: op + " failure: " + cause.Error(), cause: cause}
}

func (e *Error) Error() string {
	return "session: " + e.msg
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}
