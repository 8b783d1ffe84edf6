package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrSessionExpired    = errors.New("session expired")
	ErrProfileIncomplete = errors.New("profile incomplete")
	ErrBusy              = errors.New("operation already in progress")
)

// ServerError is a backend rejection (4xx/5xx with ok=false). Msg is the
// server-provided message when present, a generic fallback otherwise,
// and is safe to surface to the user.
type ServerError struct {
	StatusCode int
	Msg        string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Msg)
}

// Rejected builds a ServerError.
func Rejected(status int, msg string) *ServerError {
	return &ServerError{StatusCode: status, Msg: msg}
}

// UserMessage returns the displayable message for err: the server's own
// message for rejections, the sentinel text for session expiry, and a
// generic network message for everything else.
func UserMessage(err error) string {
	var srv *ServerError
	if errors.As(err, &srv) {
		return srv.Msg
	}
	if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrUnauthorized) {
		return "Your session has expired. Please log in again."
	}
	return "A network error has occurred."
}
