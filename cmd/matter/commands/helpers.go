package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/logging"
	"github.com/thoreinstein/matter/internal/paths"
	"github.com/thoreinstein/matter/pkg/fileutil"
	"github.com/thoreinstein/matter/pkg/frontmatter"
)

// stdinName is the path argument that selects standard input.
const stdinName = "-"

// readInput reads the named file, or standard input for "" and "-",
// within the configured size limit.
func readInput(cmd *cobra.Command, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "" || name == stdinName {
		data, err = fileutil.ReadAllWithLimit(cmd.InOrStdin(), cfg.MaxFileSize)
	} else {
		var path string
		path, err = paths.ExpandHome(name)
		if err == nil {
			data, err = fileutil.ReadFileWithLimit(path, cfg.MaxFileSize)
		}
	}

	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, errors.ErrNotFound):
		return "", errors.NewUserError(err, "Check the file path")
	case errors.Is(err, fileutil.ErrFileTooLarge):
		return "", errors.NewUserError(err, "Raise max_file_size in the config file or MATTER_MAX_FILE_SIZE")
	default:
		return "", errors.NewSystemError(err, "")
	}
}

// parseInput reads and splits one input, logging through the command's logger.
func parseInput(cmd *cobra.Command, name string) (*frontmatter.Document, error) {
	text, err := readInput(cmd, name)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(cmd.Context()).With("path", displayName(name))
	doc, err := frontmatter.ParseDocument(text, frontmatter.WithLogger(logger))
	if err != nil {
		return nil, errors.NewUserError(errors.Wrapf(err, "%s", displayName(name)),
			"Run with -vv to see each delimiter candidate that was tried")
	}

	logger.Info("parsed document", "style", doc.Style, "format", doc.Format)
	return doc, nil
}

func displayName(name string) string {
	if name == "" || name == stdinName {
		return "<stdin>"
	}
	return name
}
