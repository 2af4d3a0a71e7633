package decode

import (
	"io"

	"ghsdk/internal/cli/paramutils"
	"ghsdk/internal/cli/utils"
	"ghsdk/internal/errcodes"
	"ghsdk/internal/pkg/fs"
	"ghsdk/pkg/github"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var filesystem fs.Filesystem = fs.OS{}

var promptShape = utils.PromptShapeSelect

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode a recorded response body",
		Long: `Decodes a recorded response body as one of the registered shapes and
prints the classified result. Without --shape the shape is picked
interactively.`,
		Args: cobra.MaximumNArgs(1),
		Run:  utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().StringP("shape", "s", "", "shape to decode the body as, see 'ghsdk shapes'")
	cmd.Flags().IntP("status", "c", 200, "HTTP status code of the recorded response")
	cmd.Flags().StringSliceP("header", "H", nil, "response header in the form of Name=value")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	cmdArgs := parseArgs(args)
	params := &cmdParams{}

	err := fillFlagParams(paramutils.NewFlagRepo(cmd.Flags()), params)
	if err != nil {
		return err
	}

	err = validateParams(cmdArgs, params)
	if err != nil {
		return err
	}

	return execute(cmd.OutOrStdout(), cmdArgs, params)
}

func execute(w io.Writer, args *cmdArgs, params *cmdParams) error {
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

	body, err := filesystem.ReadFile(args.File)
	if err != nil {
		return errors.Wrapf(err, "reading %s", args.File)
	}

	log.Debug().
		Str("shape", info.Name).
		Int("status", params.Status).
		Int("bytes", len(body)).
		Msg("decoding recorded response")

	r, err := info.Decode(github.NewRawResponse(params.Status, params.Headers, body))
	if err != nil {
		return err
	}

	return utils.PrintResult(w, info.Name, r)
}
