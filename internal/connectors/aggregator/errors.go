package aggregator

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// ErrBaseURLRequired indicates the client was created without an endpoint.
var ErrBaseURLRequired = errors.New("aggregator: base URL is required")

// APIError represents a non-2xx response from the provider.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("aggregator: API error %d (URL: %s)", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("aggregator: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap maps well-known status codes onto domain errors so callers
// can use errors.Is without knowing about HTTP.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAuthRequired
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return nil
	}
}
