package utils

import (
	"bytes"
	"testing"

	"ghsdk/internal/systemcodes"
	"ghsdk/pkg/github"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, shape string, status int, body string) github.Result {
	t.Helper()

	info, ok := github.LookupShape(shape)
	require.True(t, ok)
	r, err := info.Decode(github.NewRawResponse(status, map[string]string{
		github.ContentTypeHeader: github.ContentTypeJSON,
	}, []byte(body)))
	require.NoError(t, err)
	return r
}

func Test_PrintResult(t *testing.T) {
	t.Run("prints the envelope and the data", func(t *testing.T) {
		r := decode(t, "Link", 200, `{"href": "https://example.com", "rel": "self"}`)

		out := &bytes.Buffer{}
		err := PrintResult(out, "Link", r)
		assert.Equal(t, nil, err)
		assert.Contains(t, out.String(), "SHAPE")
		assert.Contains(t, out.String(), "200")
		assert.Contains(t, out.String(), `"href": "https://example.com"`)
		assert.Contains(t, out.String(), `"rel"`)
	})

	t.Run("prints validation details", func(t *testing.T) {
		r := decode(t, "Issue", 422, `{
			"message": "Validation Failed",
			"documentation_url": "https://docs.github.com/rest",
			"errors": [{"resource": "Issue", "field": "title", "code": "missing_field"}, "bad label"]
		}`)

		out := &bytes.Buffer{}
		err := PrintResult(out, "Issue", r)
		assert.Equal(t, nil, err)
		assert.Contains(t, out.String(), "Validation Failed")
		assert.Contains(t, out.String(), "https://docs.github.com/rest")
		assert.Contains(t, out.String(), "Issue.title: missing_field")
		assert.Contains(t, out.String(), "bad label")
		assert.NotContains(t, out.String(), "{")
	})

	t.Run("prints nothing after the table for empty results", func(t *testing.T) {
		r := decode(t, "Issue", 204, ``)

		out := &bytes.Buffer{}
		err := PrintResult(out, "Issue", r)
		assert.Equal(t, nil, err)
		assert.Contains(t, out.String(), "204")
		assert.NotContains(t, out.String(), "{")
	})
}

func Test_PromptShapeSelect(t *testing.T) {
	old := askOne
	defer func() { askOne = old }()

	t.Run("returns the selected shape", func(t *testing.T) {
		var options []string
		askOne = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
			options = p.(*survey.Select).Options
			*response.(*string) = "Issue"
			return nil
		}

		shape, err := PromptShapeSelect([]string{"Issue", "Label"})
		assert.Equal(t, nil, err)
		assert.Equal(t, "Issue", shape)
		assert.Equal(t, []string{"Issue", "Label"}, options)
	})

	t.Run("fails when the prompt fails", func(t *testing.T) {
		vErr := errors.New("not a terminal")
		askOne = func(survey.Prompt, interface{}, ...survey.AskOpt) error { return vErr }

		_, err := PromptShapeSelect([]string{"Issue"})
		assert.True(t, errors.Is(err, vErr))
	})
}

func Test_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"decode error", &github.DecodeError{Shape: "Issue", Err: github.ErrInvalidJSON}, systemcodes.ErrorCodeDecode},
		{"wrapped decode error", errors.Wrap(&github.DecodeError{Shape: "Issue", Err: github.ErrInvalidJSON}, "ctx"), systemcodes.ErrorCodeDecode},
		{"plain error", errors.New("boom"), systemcodes.ErrorCodeGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}

	t.Run("api error", func(t *testing.T) {
		r := decode(t, "Issue", 404, `{"message": "Not Found"}`)
		assert.Equal(t, systemcodes.ErrorCodeAPI, ExitCode(github.Err(r)))
	})
}

func Test_RunCommandWrapper(t *testing.T) {
	old := exit
	defer func() { exit = old }()

	code := -1
	exit = func(c int) { code = c }

	t.Run("does not exit on success", func(t *testing.T) {
		code = -1
		RunCommandWrapper(func(*cobra.Command, []string) error { return nil })(&cobra.Command{}, nil)
		assert.Equal(t, -1, code)
	})

	t.Run("prints the error and exits", func(t *testing.T) {
		code = -1
		errOut := &bytes.Buffer{}
		cmd := &cobra.Command{}
		cmd.SetErr(errOut)

		RunCommandWrapper(func(*cobra.Command, []string) error { return errors.New("boom") })(cmd, nil)
		assert.Equal(t, systemcodes.ErrorCodeGeneric, code)
		assert.Equal(t, "boom\n", errOut.String())
	})
}
