package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method  string
	path    string
	query   url.Values
	headers http.Header
}

// newTestServer answers every request with status and body and records the
// last request it saw.
func newTestServer(t *testing.T, status int, contentType string, body []byte) (*Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.query = r.URL.Query()
		rec.headers = r.Header.Clone()

		if contentType != "" {
			w.Header().Set(ContentTypeHeader, contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	return New(&ClientOptions{BaseURL: srv.URL + "/", Token: "t0ken"}), rec
}

func Test_Client_Do(t *testing.T) {
	t.Run("sends the api headers", func(t *testing.T) {
		c, rec := newTestServer(t, 200, "application/json", []byte(`{}`))

		raw, err := c.Do(context.Background(), http.MethodGet, "/rate_limit", url.Values{"a": []string{"b"}})
		require.NoError(t, err)

		assert.Equal(t, 200, raw.StatusCode)
		assert.Equal(t, "/rate_limit", rec.path)
		assert.Equal(t, "b", rec.query.Get("a"))
		assert.Equal(t, AcceptHeaderValue, rec.headers.Get(AcceptHeader))
		assert.Equal(t, VersionHeaderValue, rec.headers.Get(VersionHeader))
		assert.Equal(t, "Bearer t0ken", rec.headers.Get("Authorization"))
	})

	t.Run("returns error statuses as responses", func(t *testing.T) {
		c, _ := newTestServer(t, 500, "application/json", []byte(`{"message": "boom"}`))

		raw, err := c.Do(context.Background(), http.MethodGet, "/", nil)
		require.NoError(t, err)
		assert.Equal(t, 500, raw.StatusCode)
		assert.JSONEq(t, `{"message": "boom"}`, string(raw.Body))
	})

	t.Run("fails when the request is cancelled", func(t *testing.T) {
		c, _ := newTestServer(t, 200, "", nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Do(ctx, http.MethodGet, "/user", nil)
		assert.Error(t, err)
	})

	t.Run("omits the token when none is set", func(t *testing.T) {
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c := New(&ClientOptions{BaseURL: srv.URL, APIVersion: "2026-03-10"})
		raw, err := c.Do(context.Background(), http.MethodGet, "/octocat", nil)
		require.NoError(t, err)
		assert.Equal(t, "", auth)
		assert.Equal(t, 204, raw.StatusCode)
	})
}

func Test_Client_DoAccept(t *testing.T) {
	c, rec := newTestServer(t, 200, "text/plain", []byte(""))

	_, err := c.DoAccept(context.Background(), http.MethodGet, "/repos/o/r/pulls/1", nil, MediaTypeDiff)
	require.NoError(t, err)
	assert.Equal(t, MediaTypeDiff, rec.headers.Get(AcceptHeader))
	assert.Equal(t, VersionHeaderValue, rec.headers.Get(VersionHeader))
}

func Test_Client_endpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("gets the authenticated user", func(t *testing.T) {
		c, rec := newTestServer(t, 200, "application/json", loadFixture(t, "private_user.json"))

		r, err := c.GetAuthenticatedUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/user", rec.path)
		u, ok := DataOf[*PrivateUser](r)
		require.True(t, ok)
		assert.Equal(t, "octocat", u.Login)
	})

	t.Run("escapes path segments", func(t *testing.T) {
		c, rec := newTestServer(t, 404, "application/json", loadFixture(t, "not_found.json"))

		r, err := c.GetUser(ctx, "no/body")
		require.NoError(t, err)
		assert.Equal(t, "/users/no%2Fbody", rec.path)
		assert.True(t, IsNotFound(Err(r)))
	})

	t.Run("gets a repository", func(t *testing.T) {
		c, rec := newTestServer(t, 200, "application/json", loadFixture(t, "repository.json"))

		r, err := c.GetRepository(ctx, "octocat", "Hello-World")
		require.NoError(t, err)
		assert.Equal(t, "/repos/octocat/Hello-World", rec.path)
		repo, _ := DataOf[*Repository](r)
		assert.Equal(t, "octocat/Hello-World", repo.FullName)
	})

	t.Run("lists issues by state", func(t *testing.T) {
		c, rec := newTestServer(t, 200, "application/json", loadFixture(t, "issues.json"))

		r, err := c.ListIssues(ctx, "octocat", "Hello-World", IssueStateClosed)
		require.NoError(t, err)
		assert.Equal(t, "/repos/octocat/Hello-World/issues", rec.path)
		assert.Equal(t, "closed", rec.query.Get("state"))
		issues, _ := DataOf[[]*Issue](r)
		assert.Len(t, issues, 3)
	})

	t.Run("lists issues without a state", func(t *testing.T) {
		c, rec := newTestServer(t, 200, "application/json", []byte(`[]`))

		_, err := c.ListIssues(ctx, "octocat", "Hello-World", "")
		require.NoError(t, err)
		assert.NotContains(t, rec.query, "state")
	})

	t.Run("gets a pull request", func(t *testing.T) {
		c, rec := newTestServer(t, 200, "application/json", loadFixture(t, "pull_request.json"))

		r, err := c.GetPullRequest(ctx, "octocat", "Hello-World", 1347)
		require.NoError(t, err)
		assert.Equal(t, "/repos/octocat/Hello-World/pulls/1347", rec.path)
		pr, _ := DataOf[*PullRequest](r)
		assert.Equal(t, int64(1347), pr.Number)
	})

	t.Run("gets a pull request diff", func(t *testing.T) {
		c, rec := newTestServer(t, 200, "text/plain; charset=utf-8", loadFixture(t, "pull_request.diff"))

		r, err := c.GetPullRequestDiff(ctx, "octocat", "Hello-World", 1347)
		require.NoError(t, err)
		assert.Equal(t, MediaTypeDiff, rec.headers.Get(AcceptHeader))
		d, ok := DataOf[*Diff](r)
		require.True(t, ok)
		assert.Len(t, d.Files, 3)
	})

	t.Run("gets management console settings", func(t *testing.T) {
		c, rec := newTestServer(t, 200, "application/json", loadFixture(t, "management_console_settings.json"))

		r, err := c.GetManagementConsoleSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/setup/api/settings", rec.path)
		assert.True(t, r.OK())
	})

	t.Run("surfaces schema drift as a decode error", func(t *testing.T) {
		c, _ := newTestServer(t, 200, "application/json", []byte(`{"login": "octocat"}`))

		r, err := Fetch[SimpleUser](ctx, c, "/users/octocat", nil)
		assert.Nil(t, r)
		requireDecodeError(t, err, ErrMissingRequiredField)
	})
}

func Test_DefaultClient(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("builds a client from configuration", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer from-config", r.Header.Get("Authorization"))
			assert.Equal(t, "2022-11-28", r.Header.Get(VersionHeader))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		viper.Set("github.base_url", srv.URL)
		viper.Set("github.token", "from-config")

		c, err := DefaultClient()
		require.NoError(t, err)
		_, err = c.Do(context.Background(), http.MethodGet, "/", nil)
		require.NoError(t, err)
	})

	t.Run("rejects an invalid base url", func(t *testing.T) {
		viper.Set("github.base_url", "not a url")

		c, err := DefaultClient()
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidBaseURL)
	})

	t.Run("defaults the base url", func(t *testing.T) {
		viper.Reset()

		config, err := getDefaultConfiguration()
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, config.baseURL)
		assert.Equal(t, "", config.token)
	})
}
