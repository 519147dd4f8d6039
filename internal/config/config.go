// Package config provides configuration management for matter using Viper.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/matter/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "matter"

// EnvPrefix is the prefix for environment variable overrides, e.g. MATTER_OUTPUT.
const EnvPrefix = "MATTER"

// Default values.
const (
	DefaultOutput       = "json"
	DefaultIndent       = 2
	DefaultStyle        = "yaml"
	DefaultMaxFileSize  = int64(1 << 20)
	configDirEnvVarName = EnvPrefix + "_CONFIG_DIR"
)

// Config represents the top-level configuration structure.
type Config struct {
	// Output is the encoding used by "matter parse": json or yaml.
	Output string `mapstructure:"output" yaml:"output"`

	// Indent is the number of spaces used when printing structured output.
	Indent int `mapstructure:"indent" yaml:"indent"`

	// Style is the delimiter style "matter convert" targets when --to is absent.
	Style string `mapstructure:"style" yaml:"style"`

	// MaxFileSize caps how many bytes are read from a single input file.
	MaxFileSize int64 `mapstructure:"max_file_size" yaml:"max_file_size"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Any state from a previous Init or Load is discarded.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	if dir := os.Getenv(configDirEnvVarName); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("output", DefaultOutput)
	viper.SetDefault("indent", DefaultIndent)
	viper.SetDefault("style", DefaultStyle)
	viper.SetDefault("max_file_size", DefaultMaxFileSize)
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Output:      DefaultOutput,
		Indent:      DefaultIndent,
		Style:       DefaultStyle,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	if path != "" {
		expanded, err := paths.ExpandHome(path)
		if err != nil {
			return nil, errors.Wrap(err, "resolving config path")
		}
		viper.SetConfigFile(expanded)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load: defaults apply.
		case errors.As(err, &notFound) || os.IsNotExist(errors.UnwrapAll(err)):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "validating config")
	}

	return &cfg, nil
}
