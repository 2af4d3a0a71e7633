package fetch

import (
	"net/url"
	"strings"

	"ghsdk/internal/cli/paramutils"
	"ghsdk/internal/errcodes"
)

type cmdArgs struct {
	Path string
}

type cmdParams struct {
	Shape  string
	Accept string
	Query  url.Values
}

func parseArgs(args []string) *cmdArgs {
	path := paramutils.ParseFirstArg(args)
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return &cmdArgs{Path: path}
}

func fillFlagParams(flags paramutils.FlagRepo, params *cmdParams) error {
	kv, err := paramutils.ParseKeyValues(
		flags.GetStringSliceOrDefault("query", nil),
		errcodes.ErrQueryMustBeKV,
	)
	if err != nil {
		return err
	}

	var query url.Values
	if len(kv) > 0 {
		query = url.Values{}
		for k, v := range kv {
			query.Set(k, v)
		}
	}

	params.Shape = flags.GetStringOrDefault("shape", params.Shape)
	params.Accept = flags.GetStringOrDefault("accept", params.Accept)
	params.Query = query

	return nil
}

func validateParams(args *cmdArgs) error {
	if args.Path == "" {
		return errcodes.ErrMissingPath
	}

	return nil
}
