package decode

import (
	"bytes"
	"testing"

	"ghsdk/internal/errcodes"
	"ghsdk/mocks"
	"ghsdk/pkg/github"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func withBody(t *testing.T, body string, err error) {
	t.Helper()

	old := filesystem
	filesystem = mocks.FS{Data: []byte(body), Err: err}
	t.Cleanup(func() { filesystem = old })
}

func Test_execute(t *testing.T) {
	jsonHeaders := map[string]string{"Content-Type": "application/json"}

	t.Run("prints the decoded body", func(t *testing.T) {
		withBody(t, `{"name": "bug", "id": 1, "node_id": "n", "url": "u", "description": null, "color": "f00", "default": true}`, nil)

		out := &bytes.Buffer{}
		err := execute(out, &cmdArgs{File: "label.json"}, &cmdParams{Shape: "Label", Status: 200, Headers: jsonHeaders})
		assert.Equal(t, nil, err)
		assert.Contains(t, out.String(), `"name": "bug"`)
	})

	t.Run("prints error results without failing", func(t *testing.T) {
		withBody(t, `{"message": "Not Found"}`, nil)

		out := &bytes.Buffer{}
		err := execute(out, &cmdArgs{File: "nf.json"}, &cmdParams{Shape: "Label", Status: 404, Headers: jsonHeaders})
		assert.Equal(t, nil, err)
		assert.Contains(t, out.String(), "Not Found")
	})

	t.Run("returns decode errors", func(t *testing.T) {
		withBody(t, `{"name": "bug"}`, nil)

		err := execute(&bytes.Buffer{}, &cmdArgs{File: "label.json"}, &cmdParams{Shape: "Label", Status: 200})
		assert.True(t, github.IsDecodeError(err))
	})

	t.Run("fails for an unknown shape", func(t *testing.T) {
		err := execute(&bytes.Buffer{}, &cmdArgs{File: "f"}, &cmdParams{Shape: "Nope", Status: 200})
		assert.True(t, errors.Is(err, errcodes.ErrUnknownShape))
	})

	t.Run("fails when the file cannot be read", func(t *testing.T) {
		vErr := errors.New("no such file")
		withBody(t, "", vErr)

		err := execute(&bytes.Buffer{}, &cmdArgs{File: "f"}, &cmdParams{Shape: "Label", Status: 200})
		assert.True(t, errors.Is(err, vErr))
	})

	t.Run("prompts for the shape when none is given", func(t *testing.T) {
		old := promptShape
		defer func() { promptShape = old }()

		var offered []string
		promptShape = func(names []string) (string, error) {
			offered = names
			return "Link", nil
		}
		withBody(t, `{"href": "https://example.com"}`, nil)

		params := &cmdParams{Status: 200}
		out := &bytes.Buffer{}
		err := execute(out, &cmdArgs{File: "f"}, params)
		assert.Equal(t, nil, err)
		assert.Equal(t, "Link", params.Shape)
		assert.Contains(t, offered, "Link")
		assert.Contains(t, offered, "IssueList")
		assert.Contains(t, out.String(), "https://example.com")
	})

	t.Run("fails when the prompt fails", func(t *testing.T) {
		old := promptShape
		defer func() { promptShape = old }()

		vErr := errors.New("interrupt")
		promptShape = func([]string) (string, error) { return "", vErr }

		err := execute(&bytes.Buffer{}, &cmdArgs{File: "f"}, &cmdParams{Status: 200})
		assert.Equal(t, vErr, err)
	})

	t.Run("decodes diffs", func(t *testing.T) {
		withBody(t, "diff --git a/x b/x\n--- a/x\n+++ b/x\n@@ -1 +1 @@\n-a\n+b\n", nil)

		out := &bytes.Buffer{}
		err := execute(out, &cmdArgs{File: "pr.diff"}, &cmdParams{
			Shape:   "Diff",
			Status:  200,
			Headers: map[string]string{"Content-Type": "text/plain"},
		})
		assert.Equal(t, nil, err)
		assert.Contains(t, out.String(), `"path": "x"`)
	})
}
