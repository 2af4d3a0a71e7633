package paramutils

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type FlagRepo interface {
	GetStringOrDefault(flag, d string) string
	GetBoolOrDefault(flag string, d bool) bool
	GetIntOrDefault(flag string, d int) int
	GetStringSliceOrDefault(flag string, d []string) []string
}

func NewFlagRepo(flags *pflag.FlagSet) FlagRepo {
	return &PFlagSetWrapper{Flags: flags}
}

type PFlagSetWrapper struct {
	Flags *pflag.FlagSet
}

func (fs *PFlagSetWrapper) GetStringOrDefault(flag, d string) string {
	s, err := fs.Flags.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetBoolOrDefault(flag string, d bool) bool {
	s, err := fs.Flags.GetBool(flag)
	if err != nil {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetIntOrDefault(flag string, d int) int {
	i, err := fs.Flags.GetInt(flag)
	if err != nil || !fs.Flags.Changed(flag) {
		return d
	}

	return i
}

func (fs *PFlagSetWrapper) GetStringSliceOrDefault(flag string, d []string) []string {
	s, err := fs.Flags.GetStringSlice(flag)
	if err != nil || len(s) == 0 {
		return d
	}

	return s
}

// ParseKeyValues splits each "key=value" pair at the first '='. The key
// must not be empty; the value may be.
func ParseKeyValues(pairs []string, errInvalid error) (map[string]string, error) {
	kv := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, errors.Wrapf(errInvalid, "%q", p)
		}
		kv[k] = v
	}

	return kv, nil
}

func ParseFirstArg(args []string) string {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	return arg
}
