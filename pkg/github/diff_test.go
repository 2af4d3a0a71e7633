package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffResponse(status int, contentType string, body []byte) *RawResponse {
	headers := map[string]string{}
	if contentType != "" {
		headers[ContentTypeHeader] = contentType
	}
	return NewRawResponse(status, headers, body)
}

func Test_FromDiffResponse(t *testing.T) {
	t.Run("parses a multi file diff", func(t *testing.T) {
		r, err := FromDiffResponse(diffResponse(200, "application/vnd.github.diff; charset=utf-8", loadFixture(t, "pull_request.diff")))
		require.NoError(t, err)

		d, ok := DataOf[*Diff](r)
		require.True(t, ok)
		require.Len(t, d.Files, 3)

		assert.Equal(t, "README.md", d.Files[0].Path)
		assert.Equal(t, DiffFileTypeUpdated, d.Files[0].Type)
		assert.Equal(t, 1, d.Files[0].Added)
		assert.Equal(t, 0, d.Files[0].Deleted)

		assert.Equal(t, "docs/new.md", d.Files[1].Path)
		assert.Equal(t, DiffFileTypeAdded, d.Files[1].Type)

		assert.Equal(t, "old.txt", d.Files[2].Path)
		assert.Equal(t, DiffFileTypeRemoved, d.Files[2].Type)

		added, deleted := d.Stat()
		assert.Equal(t, 3, added)
		assert.Equal(t, 1, deleted)
	})

	t.Run("accepts text/plain and a missing content type", func(t *testing.T) {
		for _, ct := range []string{"text/plain; charset=utf-8", "text/x-diff", ""} {
			r, err := FromDiffResponse(diffResponse(200, ct, loadFixture(t, "pull_request.diff")))
			require.NoError(t, err, ct)
			assert.True(t, r.OK())
		}
	})

	t.Run("rejects a json body", func(t *testing.T) {
		_, err := FromDiffResponse(jsonResponse(200, []byte(`{}`)))
		de := requireDecodeError(t, err, ErrUnexpectedContentType)
		assert.Equal(t, "Diff", de.Shape)
	})

	t.Run("reports a malformed hunk as a decode error", func(t *testing.T) {
		body := []byte("diff --git a/a.txt b/a.txt\n--- a/a.txt\n+++ b/a.txt\n@@ -x +y @@\n-a\n+b\n")
		_, err := FromDiffResponse(diffResponse(200, MediaTypeDiff, body))
		assert.True(t, IsDecodeError(err))
	})

	t.Run("classifies error statuses", func(t *testing.T) {
		r, err := FromDiffResponse(jsonResponse(404, loadFixture(t, "not_found.json")))
		require.NoError(t, err)
		assert.IsType(t, &ClientError{}, r)
		assert.Equal(t, "Not Found", r.Message())
	})

	t.Run("an empty body is empty", func(t *testing.T) {
		r, err := FromDiffResponse(diffResponse(200, MediaTypeDiff, nil))
		require.NoError(t, err)
		assert.IsType(t, &Empty{}, r)
	})
}
