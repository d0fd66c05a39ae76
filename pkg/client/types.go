package client

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"
)

// DateLayout is the date format used in query parameters (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// FormatDate renders the calendar date of t as DD/MM/YYYY, zero-padded.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// APIError represents a non-2xx response from the banking API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ING API error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("ING API error %d: %s", e.StatusCode, e.Message)
}

// ErrHTMLResponse is returned when a successful response carries an HTML page
// instead of JSON, which is how the bank serves its login page to a session
// that has expired.
var ErrHTMLResponse = errors.New("response is an HTML page, not JSON")

// ErrTrailingData is returned when a response body holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level JSON value")

// IsUnauthorized reports whether err was caused by an expired or rejected
// session.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrHTMLResponse) {
		return true
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// errorResponse is the JSON structure for API errors.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (r errorResponse) message() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}

// isHTML reports whether a Content-Type header value names an HTML document.
func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
