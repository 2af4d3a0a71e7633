package decode

import (
	"net/http"

	"ghsdk/internal/cli/paramutils"
	"ghsdk/internal/errcodes"
)

type cmdArgs struct {
	File string
}

type cmdParams struct {
	Shape   string
	Status  int
	Headers map[string]string
}

func parseArgs(args []string) *cmdArgs {
	return &cmdArgs{File: paramutils.ParseFirstArg(args)}
}

func fillFlagParams(flags paramutils.FlagRepo, params *cmdParams) error {
	headers, err := paramutils.ParseKeyValues(
		flags.GetStringSliceOrDefault("header", nil),
		errcodes.ErrHeaderMustBeKV,
	)
	if err != nil {
		return err
	}

	params.Shape = flags.GetStringOrDefault("shape", params.Shape)
	params.Status = flags.GetIntOrDefault("status", http.StatusOK)
	params.Headers = headers

	return nil
}

func validateParams(args *cmdArgs, params *cmdParams) error {
	if args.File == "" {
		return errcodes.ErrMissingFile
	}

	if params.Status < 100 || params.Status > 599 {
		return errcodes.ErrInvalidStatus
	}

	return nil
}
