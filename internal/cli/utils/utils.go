package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"ghsdk/internal/systemcodes"
	"ghsdk/pkg/github"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var askOne = survey.AskOne

// PromptShapeSelect asks the user to pick one of names.
func PromptShapeSelect(names []string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message:  "Decode as shape",
		Options:  names,
		PageSize: 10,
	}
	err := askOne(prompt, &answer)
	if err != nil {
		return "", errors.Wrap(err, "selecting shape")
	}

	return answer, nil
}

// PrintResult writes the envelope of r as a table followed by the decoded
// data, if any, as indented JSON.
func PrintResult(w io.Writer, shape string, r github.Result) error {
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true

	table.AddRow("SHAPE", shape)
	table.AddRow("STATUS", strconv.Itoa(r.StatusCode()))
	table.AddRow("OK", strconv.FormatBool(r.OK()))
	if r.Message() != "" {
		table.AddRow("MESSAGE", r.Message())
	}

	switch e := r.(type) {
	case *github.ClientError:
		if e.DocumentationURL() != "" {
			table.AddRow("DOCS", e.DocumentationURL())
		}
	case *github.ValidationError:
		if e.DocumentationURL() != "" {
			table.AddRow("DOCS", e.DocumentationURL())
		}
		for _, d := range e.Errors() {
			table.AddRow("ERROR", describeDetail(d))
		}
	}

	fmt.Fprintln(w, table.String())

	data, ok := github.Payload(r)
	if !ok {
		return nil
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding decoded data")
	}
	fmt.Fprintln(w, string(b))

	return nil
}

func describeDetail(d github.ValidationErrorDetail) string {
	switch {
	case d.Resource != "" && d.Field != "":
		return fmt.Sprintf("%s.%s: %s", d.Resource, d.Field, d.Code)
	case d.Code != "":
		return d.Code
	default:
		return d.Message
	}
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	var apiErr github.APIError
	switch {
	case github.IsDecodeError(err):
		return systemcodes.ErrorCodeDecode
	case errors.As(err, &apiErr):
		return systemcodes.ErrorCodeAPI
	default:
		return systemcodes.ErrorCodeGeneric
	}
}

var exit = os.Exit

type runCommandError func(*cobra.Command, []string) error
type runCommandNoError func(*cobra.Command, []string)

func RunCommandWrapper(fn runCommandError) runCommandNoError {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			exit(ExitCode(err))
		}
	}
}
