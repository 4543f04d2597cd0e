package handlers

import (
	"errors"
	"net/http"

	"study-service/internal/generation"
)

// generationStatus maps a generation failure to the HTTP status and message
// shown to the client. Rate limits and auth problems are the provider's
// condition, not the user's, so they surface as 429/503.
func generationStatus(err error) (int, string) {
	var genErr *generation.Error
	if errors.As(err, &genErr) {
		switch genErr.Kind {
		case generation.KindRateLimit:
			return http.StatusTooManyRequests, "API rate limit reached. Please try again in a moment."
		case generation.KindAuth:
			return http.StatusServiceUnavailable, "Service configuration error. Please contact support."
		case generation.KindInvalid:
			return http.StatusBadGateway, "The generated content was invalid. Please try again."
		}
	}
	return http.StatusInternalServerError, "Failed to generate content. Please try again."
}
