package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/logging"
	"github.com/thoreinstein/matter/internal/paths"
	"github.com/thoreinstein/matter/internal/translate"
	"github.com/thoreinstein/matter/pkg/fileutil"
	"github.com/thoreinstein/matter/pkg/frontmatter"
)

var (
	convertTo    string
	convertWrite bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "",
		"target format: yaml, toml, json (default from config)")
	convertCmd.Flags().BoolVarP(&convertWrite, "write", "w", false,
		"rewrite the file in place instead of printing")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Rewrite a document's front matter in another format",
	Long: `Convert parses a document and writes it back with its front matter
encoded as YAML (between --- lines), TOML (between +++ lines) or JSON.
The content after the block is kept byte for byte.

TOML cannot hold null values; converting such front matter to TOML fails.
With --write the file is replaced atomically and keeps its permissions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) == 1 {
		name = args[0]
	}
	if convertWrite && (name == "" || name == stdinName) {
		return errors.NewUserError(errors.New("--write needs a file argument"),
			"Pass the file to rewrite, or drop --write to print the result")
	}

	target := convertTo
	if target == "" {
		target = cfg.Style
	}
	style, err := translate.StyleFromName(target)
	if err != nil {
		return errors.NewUserError(err, "Use --to yaml, --to toml or --to json")
	}

	text, err := readInput(cmd, name)
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context()).With("path", displayName(name))
	out, err := translate.Convert(text, style, frontmatter.WithLogger(logger))
	switch {
	case err == nil:
	case errors.Is(err, errors.ErrNoFrontMatter):
		return errors.NewUserError(errors.Wrapf(err, "%s", displayName(name)),
			"Only documents that open with ---, +++ or { can be converted")
	case errors.Is(err, frontmatter.ErrUnparsableFrontMatter):
		return errors.NewUserError(errors.Wrapf(err, "%s", displayName(name)),
			"Run with -vv to see each delimiter candidate that was tried")
	default:
		return errors.NewUserError(errors.Wrapf(err, "%s", displayName(name)), "")
	}

	if !convertWrite {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	path, err := paths.ExpandHome(name)
	if err != nil {
		return errors.NewUserError(err, "Check the file path")
	}
	if err := fileutil.ReplaceFile(path, out); err != nil {
		return errors.NewSystemError(err, "The original file was left unchanged")
	}
	logging.FromContext(cmd.Context()).Info("rewrote front matter",
		"path", path, "to", target)
	return nil
}
