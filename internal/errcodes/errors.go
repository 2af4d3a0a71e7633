package errcodes

import "github.com/pkg/errors"

var (
	ErrMissingFile     = errors.New("body file is missing")
	ErrMissingPath     = errors.New("request path is missing")
	ErrMissingShape    = errors.New("shape is missing")
	ErrUnknownShape    = errors.New("shape is unknown, run 'ghsdk shapes' for the list")
	ErrInvalidStatus   = errors.New("status must be between 100 and 599")
	ErrHeaderMustBeKV  = errors.New("header must be in the form of 'Name=value'")
	ErrQueryMustBeKV   = errors.New("query parameter must be in the form of 'name=value'")
	ErrUnknownLogLevel = errors.New("log level is unknown, values - (debug, info, warn, error)")
)
