package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/usestring/ing-mcp/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeBankAPIError = "BANK_API_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeTimeout      = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapBankError converts a client error to a coded error.
func WrapBankError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded
	}
	coded = classify(err)

	slog.Warn("ING API error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)
	return coded
}

func classify(err error) *CodedError {
	if errors.Is(err, client.ErrHTMLResponse) {
		return &CodedError{
			Code:    ErrCodeUnauthorized,
			Message: "bank answered with its login page; copy a fresh Cookie header from the browser and restart",
			Cause:   err,
		}
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		switch {
		case client.IsUnauthorized(err):
			return &CodedError{
				Code:    ErrCodeUnauthorized,
				Message: "session rejected; copy a fresh Cookie header from the browser and restart",
				Cause:   err,
			}
		case apiErr.StatusCode == http.StatusNotFound:
			return &CodedError{Code: ErrCodeNotFound, Message: apiErr.Message, Cause: err}
		default:
			return &CodedError{Code: ErrCodeBankAPIError, Message: apiErr.Message, Cause: err}
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}

	return &CodedError{Code: ErrCodeBankAPIError, Message: err.Error(), Cause: err}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
