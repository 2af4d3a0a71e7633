package github

import (
	"fmt"

	"github.com/pkg/errors"
)

// Reasons carried by a DecodeError. Match them with errors.Is.
var (
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrMalformedTimestamp    = errors.New("malformed timestamp")
	ErrUnknownEnumValue      = errors.New("unknown enum value")
	ErrRenameCollision       = errors.New("unexpected rename collision")
	ErrUnexpectedType        = errors.New("unexpected json type")
	ErrInvalidJSON           = errors.New("invalid json body")
	ErrUnexpectedContentType = errors.New("unexpected content type")
	ErrUnexpectedStatus      = errors.New("unexpected status code")
)

// DecodeError reports that a payload did not match the shape the SDK was
// built against. It is never produced for an error response sent by the
// API; those are ClientError, ValidationError and ServerError results.
type DecodeError struct {
	// Shape is the name of the shape being decoded, e.g. "SimpleUser".
	Shape string
	// Field is the dotted path of the offending field, relative to the
	// root of the response. Empty when the failure concerns the whole body.
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("github: decoding %s: %v", e.Shape, e.Err)
	}

	return fmt.Sprintf("github: decoding %s field %q: %v", e.Shape, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause from github.com/pkg/errors see through the
// decode error to the underlying reason.
func (e *DecodeError) Cause() error {
	return e.Err
}

// IsDecodeError reports whether err is, or wraps, a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

func newDecodeError(shape, field string, err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}

	return &DecodeError{Shape: shape, Field: field, Err: err}
}
