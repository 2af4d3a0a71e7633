package configutils

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ghsdk/internal/pkg/fs"
	"ghsdk/pkg/github"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	LocalConfigFile = ".ghsdkcfg"

	KeyBaseURL    = "github.base_url"
	KeyToken      = "github.token"
	KeyAPIVersion = "github.api_version"
	KeyLogLevel   = "log.level"

	DefaultLogLevel = "warn"
)

var configFileTypes = []string{"yaml", "json", "toml"}

type configMerger interface {
	MergeConfig(io.Reader) error
}

var (
	ErrHomeDirNotFound = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir = errors.New("configuration file is a directory")
)

var filesystem fs.Filesystem = fs.OS{}

var mergeConfig = func(in io.Reader, cm configMerger) error {
	err := cm.MergeConfig(in)
	if err != nil {
		return err
	}

	return nil
}

var fileExists = func(filename string, fs fs.Filesystem) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, fs fs.Filesystem) (io.Reader, error) {
	err := fileExists(filename, fs)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}

	return f, nil
}

var loadConfig = func(filename string, v *viper.Viper) error {
	f, err := loadFile(filename, filesystem)
	if err != nil {
		return err
	}
	if c, ok := f.(io.Closer); ok {
		defer c.Close()
	}

	return mergeConfig(f, v)
}

var getGlobalConfigDir = func() (string, error) {
	return homedir.Expand("~/.config/ghsdk")
}

// SetDefaults registers the value of every key the SDK reads.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBaseURL, github.DefaultBaseURL)
	v.SetDefault(KeyAPIVersion, github.VersionHeaderValue)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// mergeAnyType merges filename into v, trying each of types until one
// parses.
func mergeAnyType(v *viper.Viper, filename string, types []string) error {
	var err error
	for _, ft := range types {
		v.SetConfigType(ft)
		err = loadConfig(filename, v)
		if err == nil {
			log.Debug().Str("file", filename).Str("type", ft).Msg("config loaded")
			return nil
		}
		log.Debug().
			Err(err).
			Msgf("config loading failed for type %s, skipping to next filetype", ft)
	}

	return err
}

// MergeLocalConfig merges the .ghsdkcfg file found in path, if any.
func MergeLocalConfig(v *viper.Viper, path string) error {
	f := filepath.Join(path, LocalConfigFile)
	if _, err := filesystem.Stat(f); err != nil {
		return nil
	}

	err := mergeAnyType(v, f, configFileTypes)
	if err != nil {
		return errors.Wrapf(err, "could not load %s", f)
	}

	return nil
}

// MergeGlobalConfig merges the first of ~/.config/ghsdk/config.{yaml,json,toml}
// that loads. Having none of them is not an error.
func MergeGlobalConfig(v *viper.Viper) error {
	cfgDir, err := getGlobalConfigDir()
	if err != nil {
		return ErrHomeDirNotFound
	}

	for _, ft := range configFileTypes {
		f := filepath.Join(cfgDir, fmt.Sprintf("config.%s", ft))
		v.SetConfigType(ft)
		err = loadConfig(f, v)
		if err == nil {
			return nil
		}
		log.Debug().
			Msgf("config loading failed for type %s, skipping to next filetype", ft)
	}

	return nil
}

// MergeConfigFile merges an explicitly named file. Its extension picks the
// format; an unknown extension tries every supported one.
func MergeConfigFile(v *viper.Viper, path string) error {
	types := configFileTypes
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if slices.Contains(configFileTypes, ext) {
		types = []string{ext}
	}

	err := mergeAnyType(v, path, types)
	if err != nil {
		return errors.Wrapf(err, "could not load config %s", path)
	}

	return nil
}

// Load fills v with defaults, then the global (or explicit) config file,
// then the local override in wd.
func Load(v *viper.Viper, path, wd string) error {
	SetDefaults(v)

	var err error
	if path != "" {
		err = MergeConfigFile(v, path)
	} else {
		err = MergeGlobalConfig(v)
	}
	if err != nil {
		return err
	}

	if wd == "" {
		return nil
	}

	return MergeLocalConfig(v, wd)
}

// LoadGlobal loads configuration into the global viper instance read by
// github.DefaultClient.
func LoadGlobal(path string) error {
	wd, err := filesystem.Getwd()
	if err != nil {
		log.Debug().Err(err).Msg("no working directory, skipping local config")
		wd = ""
	}

	return Load(viper.GetViper(), path, wd)
}
