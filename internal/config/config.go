// Package config loads pikescope settings from flags, the environment and an
// optional .pikescope.yaml file.
//
// Example .pikescope.yaml:
//
//	root: .
//	max-files: 256
//	ext: [.pike, .pmod, .h]
//	parallel: 4
//	format: text
//	verbose: false
//	index-dir: .pikescope-index
//
// Every key can also be set through a PIKESCOPE_ variable, with dashes
// written as underscores (PIKESCOPE_MAX_FILES=64).
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Keys shared by viper, the config file and the persistent CLI flags.
const (
	KeyRoot     = "root"
	KeyMaxFiles = "max-files"
	KeyExt      = "ext"
	KeyParallel = "parallel"
	KeyFormat   = "format"
	KeyVerbose  = "verbose"
	KeyIndexDir = "index-dir"
)

const (
	fileName  = ".pikescope"
	envPrefix = "PIKESCOPE"
)

// Defaults.
const (
	DefaultRoot     = "."
	DefaultMaxFiles = 256
	DefaultParallel = 1
	DefaultFormat   = "text"
	DefaultIndexDir = ".pikescope-index"
)

// DefaultExtensions are the file extensions treated as sources.
var DefaultExtensions = []string{".pike", ".pmod", ".h"}

var formats = []string{"text", "yaml", "json"}

// Config is the resolved configuration of one CLI invocation.
type Config struct {
	Root       string   `mapstructure:"root"`
	MaxFiles   int      `mapstructure:"max-files"`
	Extensions []string `mapstructure:"ext"`
	Parallel   int      `mapstructure:"parallel"`
	Format     string   `mapstructure:"format"`
	Verbose    bool     `mapstructure:"verbose"`
	IndexDir   string   `mapstructure:"index-dir"`
}

// New returns a viper instance with defaults, environment binding and the
// config file search path set up. dir is searched for .pikescope.yaml.
func New(dir string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyRoot, DefaultRoot)
	v.SetDefault(KeyMaxFiles, DefaultMaxFiles)
	v.SetDefault(KeyExt, DefaultExtensions)
	v.SetDefault(KeyParallel, DefaultParallel)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyIndexDir, DefaultIndexDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	return v
}

// Load reads the config file if there is one and returns the validated
// configuration.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Root == "" {
		return errors.New("root must not be empty")
	}

	if c.MaxFiles < 1 {
		return fmt.Errorf("max-files must be at least 1, got %d", c.MaxFiles)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	valid := false

	for _, f := range formats {
		if c.Format == f {
			valid = true
		}
	}

	if !valid {
		return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(formats, ", "))
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}

	return nil
}

// Logger returns a text logger writing to w, at debug level when verbose.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
