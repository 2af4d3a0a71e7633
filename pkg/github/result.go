package github

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Result is the outcome of converting one RawResponse. The set of
// implementations is closed: *Success[T], *Empty, *ClientError,
// *ValidationError and *ServerError. OK is true exactly for the success
// variants. Results are immutable.
type Result interface {
	OK() bool
	StatusCode() int
	// Message is the API supplied message, empty when there is none.
	Message() string
	// Header returns a response header, ignoring case.
	Header(name string) string

	result()
}

// APIError is implemented by the error variants, which also satisfy error.
type APIError interface {
	Result
	error
}

var (
	_ Result   = (*Success[any])(nil)
	_ Result   = (*Empty)(nil)
	_ APIError = (*ClientError)(nil)
	_ APIError = (*ValidationError)(nil)
	_ APIError = (*ServerError)(nil)
)

type envelope struct {
	statusCode int
	headers    http.Header
	message    string
}

func (e *envelope) StatusCode() int { return e.statusCode }
func (e *envelope) Message() string { return e.message }

func (e *envelope) Header(name string) string {
	if e.headers == nil {
		return ""
	}
	return e.headers.Get(name)
}

func (*envelope) result() {}

func newEnvelope(raw *RawResponse, message string) envelope {
	return envelope{
		statusCode: raw.StatusCode,
		headers:    raw.Headers.Clone(),
		message:    message,
	}
}

// Success carries the decoded body of a 2xx response.
type Success[T any] struct {
	envelope
	data T
}

func (*Success[T]) OK() bool { return true }

// Data returns the decoded body.
func (s *Success[T]) Data() T { return s.data }

func (s *Success[T]) payload() any { return s.data }

// Empty is a 2xx response without a body, or one whose body the caller did
// not ask to decode.
type Empty struct {
	envelope
}

func (*Empty) OK() bool { return true }

// ClientError is a 4xx response other than a validation failure.
type ClientError struct {
	envelope
	documentationURL string
}

func (*ClientError) OK() bool { return false }

// DocumentationURL points to the API documentation for the failed call.
func (e *ClientError) DocumentationURL() string { return e.documentationURL }

func (e *ClientError) Error() string {
	return fmt.Sprintf("github: HTTP %d: %s", e.statusCode, e.message)
}

// ValidationErrorDetail describes one field-level failure of a 422 response.
type ValidationErrorDetail struct {
	Resource string `json:"resource,omitempty"`
	Field    string `json:"field,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
	Index    *int64 `json:"index,omitempty"`
	// Value is the raw JSON of the rejected value, if the API echoed it.
	Value string `json:"value,omitempty"`
}

// ValidationError is a 4xx response whose body lists field-level errors.
type ValidationError struct {
	envelope
	documentationURL string
	errors           []ValidationErrorDetail
}

func (*ValidationError) OK() bool { return false }

func (e *ValidationError) DocumentationURL() string { return e.documentationURL }

// Errors returns a copy of the field-level details.
func (e *ValidationError) Errors() []ValidationErrorDetail {
	out := make([]ValidationErrorDetail, len(e.errors))
	copy(out, e.errors)
	return out
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "github: HTTP %d: %s", e.statusCode, e.message)
	for _, d := range e.errors {
		reason := d.Message
		if reason == "" {
			reason = d.Code
		}

		switch {
		case d.Resource != "" || d.Field != "":
			fmt.Fprintf(&b, "; %s.%s: %s", d.Resource, d.Field, reason)
		default:
			fmt.Fprintf(&b, "; %s", reason)
		}
	}

	return b.String()
}

// ServerError is a 5xx response.
type ServerError struct {
	envelope
}

func (*ServerError) OK() bool { return false }

func (e *ServerError) Error() string {
	return fmt.Sprintf("github: HTTP %d: %s", e.statusCode, e.message)
}

// Err returns the error variant of r as an error, or nil for success.
func Err(r Result) error {
	if ae, ok := r.(APIError); ok {
		return ae
	}

	return nil
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether err is a 409 response.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsValidationFailed reports whether err is a response with field-level
// validation errors.
func IsValidationFailed(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRateLimited reports whether err is a rate limit response. The API uses
// 429 for secondary limits and 403 for the primary one.
func IsRateLimited(err error) bool {
	var ae APIError
	if !errors.As(err, &ae) {
		return false
	}

	switch ae.StatusCode() {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		if ae.Header("X-RateLimit-Remaining") == "0" {
			return true
		}
		msg := strings.ToLower(ae.Message())
		return strings.Contains(msg, "rate limit") || strings.Contains(msg, "abuse detection")
	}

	return false
}

func hasStatus(err error, code int) bool {
	var ae APIError
	return errors.As(err, &ae) && ae.StatusCode() == code
}

// DataOf returns the decoded body of r when r is a *Success[D].
func DataOf[D any](r Result) (D, bool) {
	if s, ok := r.(*Success[D]); ok {
		return s.data, true
	}

	var zero D
	return zero, false
}

// Payload returns the decoded body of a Success of any data type.
func Payload(r Result) (any, bool) {
	if p, ok := r.(interface{ payload() any }); ok {
		return p.payload(), true
	}

	return nil, false
}
