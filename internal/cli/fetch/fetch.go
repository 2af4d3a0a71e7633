package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"ghsdk/internal/cli/paramutils"
	"ghsdk/internal/cli/utils"
	"ghsdk/internal/errcodes"
	"ghsdk/pkg/github"

	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type requester interface {
	Do(ctx context.Context, method, path string, query url.Values) (*github.RawResponse, error)
	DoAccept(ctx context.Context, method, path string, query url.Values, mediaType string) (*github.RawResponse, error)
}

var newClient = func() (requester, error) {
	return github.DefaultClient()
}

var promptShape = utils.PromptShapeSelect

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch PATH",
		Short: "Fetch an API path and decode the response",
		Long: `Sends a GET request for PATH to the configured GitHub or GitHub Enterprise
Server API and decodes the response as one of the registered shapes.`,
		Args: cobra.MaximumNArgs(1),
		Run:  utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().StringP("shape", "s", "", "shape to decode the response as, see 'ghsdk shapes'")
	cmd.Flags().StringSliceP("query", "q", nil, "query parameter in the form of name=value")
	cmd.Flags().String("accept", "", "Accept media type, defaults to the one the shape needs")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	cmdArgs := parseArgs(args)
	params := &cmdParams{}

	err := fillFlagParams(paramutils.NewFlagRepo(cmd.Flags()), params)
	if err != nil {
		return err
	}

	err = validateParams(cmdArgs)
	if err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	return execute(cmd.Context(), cmd.OutOrStdout(), c, cmdArgs, params)
}

func execute(
	ctx context.Context,
	w io.Writer,
	c requester,
	args *cmdArgs,
	params *cmdParams,
) error {
	if params.Shape == "" {
		shape, err := promptShape(github.ShapeNames())
		if err != nil {
			return err
		}
		params.Shape = shape
	}

	info, ok := github.LookupShape(params.Shape)
	if !ok {
		return errors.Wrapf(errcodes.ErrUnknownShape, "%q", params.Shape)
	}

	accept := params.Accept
	if accept == "" && info.Name == "Diff" {
		accept = github.MediaTypeDiff
	}

	writer := uilive.New()
	writer.Out = w
	writer.Start()
	defer writer.Stop()

	fmt.Fprintf(writer, "Fetching %s ...\n", args.Path)

	var raw *github.RawResponse
	var err error
	if accept != "" {
		raw, err = c.DoAccept(ctx, http.MethodGet, args.Path, params.Query, accept)
	} else {
		raw, err = c.Do(ctx, http.MethodGet, args.Path, params.Query)
	}
	if err != nil {
		return err
	}

	log.Debug().
		Str("path", args.Path).
		Int("status", raw.StatusCode).
		Msg("decoding response")

	r, err := info.Decode(raw)
	if err != nil {
		return err
	}

	out := &bytes.Buffer{}
	err = utils.PrintResult(out, info.Name, r)
	if err != nil {
		return err
	}
	fmt.Fprint(writer, out.String())

	return github.Err(r)
}
