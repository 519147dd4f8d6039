// Package commands implements the CLI commands for matter.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/cmd"
	"github.com/thoreinstein/matter/internal/config"
	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// cfg is the loaded configuration, set before any subcommand runs.
var cfg = config.Default()

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or ~/.config/matter/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("matter version {{.Version}}\n")

	// Errors are printed by main so the exit code can follow them
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "matter",
	Short: "Split documents into front matter and content",
	Long: `matter reads documents that open with a front-matter block and
separates the metadata from the body.

The block format is detected from its opening delimiter:

  ---   YAML (TOML is tried first, so a TOML block between dashes works too)
  +++   TOML (or YAML)
  {     JSON (or TOML, or YAML), closed by a later }

Every later occurrence of the closing delimiter is tried in turn, even in
the middle of a line, so delimiters that appear inside quoted values do not
end the block early. Content starts on the line after the closing delimiter.`,
	Example: `  # Show the front matter and content of a post
  matter parse post.md

  # Read from standard input and print YAML
  cat post.md | matter parse -o yaml

  # Rewrite a post's front matter as TOML in place
  matter convert post.md --to toml --write

  # Check that every post has parseable front matter
  matter check content/*.md`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return loadConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence over MATTER_DEBUG
		if v == 0 {
			if val, ok := os.LookupEnv("MATTER_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: logging.ReplaceLevelName}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// loadConfig reads the config file, skipping it for help and version.
func loadConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	config.Init()
	loaded, err := config.Load(configFile)
	if err != nil {
		return errors.NewConfigError(err)
	}
	cfg = loaded

	logging.FromContext(cmd.Context()).Debug("config loaded",
		"output", cfg.Output, "style", cfg.Style, "max_file_size", cfg.MaxFileSize)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
