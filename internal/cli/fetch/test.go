package fetch

import (
	"context"
	"net/url"

	"ghsdk/pkg/github"
)

type mockRequester struct {
	Response *github.RawResponse
	Err      error

	Path   string
	Query  url.Values
	Accept string
}

func (m *mockRequester) Do(ctx context.Context, method, path string, query url.Values) (*github.RawResponse, error) {
	return m.DoAccept(ctx, method, path, query, "")
}

func (m *mockRequester) DoAccept(_ context.Context, _, path string, query url.Values, mediaType string) (*github.RawResponse, error) {
	m.Path = path
	m.Query = query
	m.Accept = mediaType

	return m.Response, m.Err
}
