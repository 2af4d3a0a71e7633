package github

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// maxFallbackMessage bounds how much of a non-JSON error body ends up in a
// result message.
const maxFallbackMessage = 512

// FromRawResponse converts raw into a Result whose success variant carries
// a *T decoded from a JSON object body.
//
// Error statuses never produce a Go error: they become ClientError,
// ValidationError or ServerError results. The returned error is always a
// *DecodeError and means the payload did not match T.
func FromRawResponse[T any, P shapePtr[T]](raw *RawResponse) (Result, error) {
	return fromRawResponse(raw, shapeName[T](), func(raw *RawResponse) (*T, error) {
		body, err := parseJSONBody(raw)
		if err != nil {
			return nil, err
		}
		return decodeShape[T, P](body, "")
	})
}

// FromRawListResponse is FromRawResponse for endpoints answering with a JSON
// array. Null entries are kept as nil.
func FromRawListResponse[T any, P shapePtr[T]](raw *RawResponse) (Result, error) {
	return fromRawResponse(raw, shapeName[T](), func(raw *RawResponse) ([]*T, error) {
		body, err := parseJSONBody(raw)
		if err != nil {
			return nil, err
		}
		return decodeShapeList[T, P](body, "")
	})
}

// FromRawEnvelope classifies raw without decoding a success body. A 2xx
// response always yields *Empty.
func FromRawEnvelope(raw *RawResponse) (Result, error) {
	return fromRawResponse[struct{}](raw, "", nil)
}

// fromRawResponse classifies raw by status and hands 2xx bodies to decode.
func fromRawResponse[D any](raw *RawResponse, shape string, decode func(*RawResponse) (D, error)) (Result, error) {
	switch {
	case raw.StatusCode >= 400 && raw.StatusCode < 600:
		return newErrorResult(raw), nil
	case !raw.OK():
		return nil, &DecodeError{Shape: shape, Err: errors.Wrapf(ErrUnexpectedStatus, "%d", raw.StatusCode)}
	}

	if decode == nil || isBodyless(raw.StatusCode) || !raw.hasBody() {
		return &Empty{newEnvelope(raw, "")}, nil
	}

	data, err := decode(raw)
	if err != nil {
		return nil, newDecodeError(shape, "", err)
	}

	return &Success[D]{envelope: newEnvelope(raw, ""), data: data}, nil
}

func isBodyless(status int) bool {
	return status == http.StatusNoContent || status == http.StatusResetContent
}

// parseJSONBody checks the media type and syntax of a success body. A
// missing Content-Type is tolerated as long as the body is valid JSON.
func parseJSONBody(raw *RawResponse) (gjson.Result, error) {
	if raw.Header(ContentTypeHeader) != "" && !raw.IsJSON() {
		return gjson.Result{}, errors.Wrapf(ErrUnexpectedContentType, "%q", raw.Header(ContentTypeHeader))
	}
	if !gjson.ValidBytes(raw.Body) {
		return gjson.Result{}, ErrInvalidJSON
	}

	return gjson.ParseBytes(raw.Body), nil
}

// newErrorResult builds the error variant for a 4xx or 5xx response. Bodies
// that are not a JSON object still produce a result, with the message taken
// from the body text or the status line.
func newErrorResult(raw *RawResponse) Result {
	var body gjson.Result
	if gjson.ValidBytes(raw.Body) {
		body = gjson.ParseBytes(raw.Body)
	}
	if !body.IsObject() {
		body = gjson.Result{}
	}

	message := body.Get("message").String()
	if message == "" {
		message = fallbackMessage(raw)
	}
	env := newEnvelope(raw, message)

	if raw.StatusCode >= 500 {
		return &ServerError{env}
	}

	docURL := body.Get("documentation_url").String()
	if errs := body.Get("errors"); errs.IsArray() {
		return &ValidationError{
			envelope:         env,
			documentationURL: docURL,
			errors:           parseValidationDetails(errs),
		}
	}

	return &ClientError{envelope: env, documentationURL: docURL}
}

func parseValidationDetails(errs gjson.Result) []ValidationErrorDetail {
	details := []ValidationErrorDetail{}
	errs.ForEach(func(_, e gjson.Result) bool {
		switch {
		case e.Type == gjson.String:
			details = append(details, ValidationErrorDetail{Message: e.Str})
		case e.IsObject():
			d := ValidationErrorDetail{
				Resource: e.Get("resource").String(),
				Field:    e.Get("field").String(),
				Code:     e.Get("code").String(),
				Message:  e.Get("message").String(),
			}
			if idx := e.Get("index"); idx.Type == gjson.Number {
				i := idx.Int()
				d.Index = &i
			}
			if v := e.Get("value"); v.Exists() {
				d.Value = v.Raw
			}
			details = append(details, d)
		}
		return true
	})

	return details
}

func fallbackMessage(raw *RawResponse) string {
	text := strings.TrimSpace(string(raw.Body))
	if text == "" || gjson.ValidBytes(raw.Body) {
		return http.StatusText(raw.StatusCode)
	}
	if len(text) > maxFallbackMessage {
		text = text[:maxFallbackMessage]
	}

	return text
}
