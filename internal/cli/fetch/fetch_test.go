package fetch

import (
	"bytes"
	"context"
	"net/url"
	"testing"

	"ghsdk/internal/cli/paramutils"
	"ghsdk/internal/errcodes"
	"ghsdk/pkg/github"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func jsonResponse(status int, body string) *github.RawResponse {
	return github.NewRawResponse(status, map[string]string{
		github.ContentTypeHeader: github.ContentTypeJSON,
	}, []byte(body))
}

func Test_parseArgs(t *testing.T) {
	t.Run("prefixes the path with a slash", func(t *testing.T) {
		assert.Equal(t, "/user", parseArgs([]string{"user"}).Path)
		assert.Equal(t, "/user", parseArgs([]string{"/user"}).Path)
	})

	t.Run("sets the path as empty string if args are missing", func(t *testing.T) {
		assert.Equal(t, "", parseArgs(nil).Path)
	})
}

func Test_fillFlagParams(t *testing.T) {
	t.Run("fills with flag parameters", func(t *testing.T) {
		params := &cmdParams{}
		err := fillFlagParams(&paramutils.MockFlagSet{Values: map[string]interface{}{
			"shape":  "IssueList",
			"accept": "application/vnd.github.raw+json",
			"query":  []string{"state=closed", "per_page=5"},
		}}, params)

		assert.Equal(t, nil, err)
		assert.Equal(t, "IssueList", params.Shape)
		assert.Equal(t, "application/vnd.github.raw+json", params.Accept)
		assert.Equal(t, url.Values{"state": {"closed"}, "per_page": {"5"}}, params.Query)
	})

	t.Run("leaves the query nil without parameters", func(t *testing.T) {
		params := &cmdParams{}
		err := fillFlagParams(&paramutils.MockFlagSet{}, params)
		assert.Equal(t, nil, err)
		assert.Nil(t, params.Query)
	})

	t.Run("fails for a malformed query parameter", func(t *testing.T) {
		err := fillFlagParams(&paramutils.MockFlagSet{Values: map[string]interface{}{
			"query": []string{"state"},
		}}, &cmdParams{})
		assert.True(t, errors.Is(err, errcodes.ErrQueryMustBeKV))
	})
}

func Test_validateParams(t *testing.T) {
	assert.Equal(t, errcodes.ErrMissingPath, validateParams(&cmdArgs{}))
	assert.Equal(t, nil, validateParams(&cmdArgs{Path: "/user"}))
}

func Test_execute(t *testing.T) {
	ctx := context.Background()

	t.Run("prints the decoded response", func(t *testing.T) {
		c := &mockRequester{Response: jsonResponse(200, `{"href": "https://example.com"}`)}
		query := url.Values{"a": {"b"}}

		out := &bytes.Buffer{}
		err := execute(ctx, out, c, &cmdArgs{Path: "/link"}, &cmdParams{Shape: "Link", Query: query})
		assert.Equal(t, nil, err)
		assert.Equal(t, "/link", c.Path)
		assert.Equal(t, query, c.Query)
		assert.Equal(t, "", c.Accept)
		assert.Contains(t, out.String(), `"href": "https://example.com"`)
	})

	t.Run("requests the diff media type for diffs", func(t *testing.T) {
		c := &mockRequester{Response: github.NewRawResponse(200, map[string]string{
			github.ContentTypeHeader: "text/plain",
		}, []byte("diff --git a/x b/x\n--- a/x\n+++ b/x\n@@ -1 +1 @@\n-a\n+b\n"))}

		out := &bytes.Buffer{}
		err := execute(ctx, out, c, &cmdArgs{Path: "/repos/o/r/pulls/1"}, &cmdParams{Shape: "Diff"})
		assert.Equal(t, nil, err)
		assert.Equal(t, github.MediaTypeDiff, c.Accept)
	})

	t.Run("keeps an explicit accept type", func(t *testing.T) {
		c := &mockRequester{Response: jsonResponse(204, ``)}

		err := execute(ctx, &bytes.Buffer{}, c, &cmdArgs{Path: "/x"}, &cmdParams{Shape: "Diff", Accept: "text/x-patch"})
		assert.Equal(t, nil, err)
		assert.Equal(t, "text/x-patch", c.Accept)
	})

	t.Run("returns api errors after printing them", func(t *testing.T) {
		c := &mockRequester{Response: jsonResponse(404, `{"message": "Not Found"}`)}

		out := &bytes.Buffer{}
		err := execute(ctx, out, c, &cmdArgs{Path: "/users/nobody"}, &cmdParams{Shape: "SimpleUser"})
		assert.True(t, github.IsNotFound(err))
		assert.Contains(t, out.String(), "Not Found")
	})

	t.Run("returns decode errors", func(t *testing.T) {
		c := &mockRequester{Response: jsonResponse(200, `{"login": "octocat"}`)}

		err := execute(ctx, &bytes.Buffer{}, c, &cmdArgs{Path: "/users/octocat"}, &cmdParams{Shape: "SimpleUser"})
		assert.True(t, github.IsDecodeError(err))
	})

	t.Run("returns transport errors", func(t *testing.T) {
		vErr := errors.New("connection refused")
		c := &mockRequester{Err: vErr}

		err := execute(ctx, &bytes.Buffer{}, c, &cmdArgs{Path: "/user"}, &cmdParams{Shape: "PrivateUser"})
		assert.Equal(t, vErr, err)
	})

	t.Run("fails for an unknown shape", func(t *testing.T) {
		err := execute(ctx, &bytes.Buffer{}, &mockRequester{}, &cmdArgs{Path: "/user"}, &cmdParams{Shape: "User"})
		assert.True(t, errors.Is(err, errcodes.ErrUnknownShape))
	})

	t.Run("prompts for the shape when none is given", func(t *testing.T) {
		old := promptShape
		defer func() { promptShape = old }()
		promptShape = func([]string) (string, error) { return "Link", nil }

		c := &mockRequester{Response: jsonResponse(200, `{"href": "h"}`)}
		params := &cmdParams{}
		err := execute(ctx, &bytes.Buffer{}, c, &cmdArgs{Path: "/link"}, params)
		assert.Equal(t, nil, err)
		assert.Equal(t, "Link", params.Shape)
	})
}
