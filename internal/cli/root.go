package cli

import (
	"context"
	"fmt"
	"os"

	decodecmd "ghsdk/internal/cli/decode"
	fetchcmd "ghsdk/internal/cli/fetch"
	"ghsdk/internal/cli/paramutils"
	shapescmd "ghsdk/internal/cli/shapes"
	"ghsdk/internal/configutils"
	"ghsdk/internal/errcodes"
	"ghsdk/internal/systemcodes"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logLevels = []string{"debug", "info", "warn", "error"}

var (
	loadConfig = configutils.LoadGlobal
	exit       = os.Exit
)

// setupLogging points both loggers at stderr with the same level.
func setupLogging(level string) error {
	if !slices.Contains(logLevels, level) {
		return errors.Wrapf(errcodes.ErrUnknownLogLevel, "%q", level)
	}

	zl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(zl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(ll)

	return nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ghsdk",
		Short:   "ghsdk decodes GitHub REST API responses",
		Long:    `Command-line front end for the typed GitHub and GitHub Enterprise Server response decoders.`,
		Version: fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flags := paramutils.NewFlagRepo(cmd.Flags())

			err := loadConfig(flags.GetStringOrDefault("config", ""))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				exit(systemcodes.ErrorCodeConfig)
				return
			}

			level := flags.GetStringOrDefault("log-level", viper.GetString(configutils.KeyLogLevel))
			err = setupLogging(level)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				exit(systemcodes.ErrorCodeConfig)
			}
		},
	}

	cmd.PersistentFlags().String("config", "", "config path")
	cmd.PersistentFlags().String("log-level", "", "log level, values - (debug, info, warn, error)")

	cmd.AddCommand(
		decodecmd.New(),
		fetchcmd.New(),
		shapescmd.New(),
	)

	return cmd
}

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}
