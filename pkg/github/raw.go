package github

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Common headers and media types.
const (
	AcceptHeader       = "Accept"
	AcceptHeaderValue  = "application/vnd.github+json"
	VersionHeader      = "X-GitHub-Api-Version"
	VersionHeaderValue = "2022-11-28"
	ContentTypeHeader  = "Content-Type"
	ContentTypeJSON    = "application/json"
	MediaTypeDiff      = "application/vnd.github.diff"
)

// RawResponse is a completed HTTP exchange handed over by the transport.
// The decoding functions only read it.
type RawResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// NewRawResponse builds a RawResponse from a plain header map. Header names
// are canonicalized so lookups are case-insensitive.
func NewRawResponse(statusCode int, headers map[string]string, body []byte) *RawResponse {
	h := make(http.Header, len(headers))
	for k, v := range headers {
		h.Set(k, v)
	}

	return &RawResponse{
		StatusCode: statusCode,
		Headers:    h,
		Body:       body,
	}
}

// RawResponseFromResty adapts a response received through resty.
func RawResponseFromResty(r *resty.Response) *RawResponse {
	return &RawResponse{
		StatusCode: r.StatusCode(),
		Headers:    r.Header(),
		Body:       r.Body(),
	}
}

// OK reports whether the status code is in the 2xx class.
func (r *RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Header returns the first value of the named header, ignoring case.
func (r *RawResponse) Header(name string) string {
	if r.Headers == nil {
		return ""
	}

	return r.Headers.Get(name)
}

// mediaType is the Content-Type without parameters, lowercased.
func (r *RawResponse) mediaType() string {
	ct := r.Header(ContentTypeHeader)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}

	return strings.ToLower(strings.TrimSpace(ct))
}

// IsJSON reports whether the Content-Type announces a JSON body, including
// the vendor media types the API answers with.
func (r *RawResponse) IsJSON() bool {
	mt := r.mediaType()
	return strings.HasPrefix(mt, ContentTypeJSON) ||
		(strings.HasPrefix(mt, "application/vnd.github") && strings.HasSuffix(mt, "+json"))
}

func (r *RawResponse) hasBody() bool {
	return len(strings.TrimSpace(string(r.Body))) > 0
}
