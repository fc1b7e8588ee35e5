package api

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

const rateLimitTitle = "Too Many Requests"

// APIError represents a failed backend call, carrying the HTTP status and
// the first upstream error when the platform API returned an errors array
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	switch {
	case e.Detail != "" && e.Title != "":
		return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Title, e.Detail)
	case e.Detail != "":
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Detail)
	case e.Title != "":
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Title)
	default:
		return fmt.Sprintf("[%d] request failed", e.StatusCode)
	}
}

// FromUpstream converts a non-empty upstream errors array into an APIError
func FromUpstream(statusCode int, errs []UpstreamError) error {
	if len(errs) == 0 {
		return &APIError{StatusCode: statusCode}
	}
	first := errs[0]
	if first.Status != 0 {
		statusCode = first.Status
	}
	return &APIError{
		StatusCode: statusCode,
		Title:      first.Title,
		Detail:     first.Detail,
	}
}

// ParseError parses an error response body from the backend
func ParseError(resp *resty.Response) error {
	var envelope struct {
		Errors []UpstreamError `json:"errors"`
		Detail string          `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil {
		if len(envelope.Errors) > 0 {
			return FromUpstream(resp.StatusCode(), envelope.Errors)
		}
		if envelope.Detail != "" {
			return &APIError{StatusCode: resp.StatusCode(), Detail: envelope.Detail}
		}
	}
	return &APIError{StatusCode: resp.StatusCode(), Detail: string(resp.Body())}
}

// IsRateLimited checks if error is an upstream rate-limit rejection
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.Title == rateLimitTitle
	}
	return false
}

// IsNotFound checks if error is due to resource not found
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsServerError checks if error is due to backend error (5xx)
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}

// Detail returns the upstream detail string when present, else the empty
// string, so callers can fall back to a generic message
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
