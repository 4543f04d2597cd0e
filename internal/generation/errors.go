package generation

import (
	"fmt"
	"net/http"
	"strings"
)

type ErrorKind string

const (
	KindRateLimit ErrorKind = "rate_limit"
	KindAuth      ErrorKind = "auth"
	KindInvalid   ErrorKind = "invalid"
	KindUnknown   ErrorKind = "unknown"
)

// Error is the single failure type crossing the generation boundary. When a
// generation call fails, no session state may be created: the active slot
// stays in its prior state.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("generation failed (%s): %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// classifyStatus maps a provider HTTP response to an error kind.
func classifyStatus(status int, body string) *Error {
	msg := strings.TrimSpace(body)
	if len(msg) > 300 {
		msg = msg[:300]
	}
	switch {
	case status == http.StatusTooManyRequests:
		return newError(KindRateLimit, "provider rate limit (status %d): %s", status, msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return newError(KindAuth, "provider auth error (status %d): %s", status, msg)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return newError(KindInvalid, "provider rejected request (status %d): %s", status, msg)
	case strings.Contains(strings.ToLower(msg), "rate limit") || strings.Contains(strings.ToLower(msg), "quota"):
		return newError(KindRateLimit, "provider quota exhausted (status %d): %s", status, msg)
	default:
		return newError(KindUnknown, "provider error (status %d): %s", status, msg)
	}
}
