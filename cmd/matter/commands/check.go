package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/logging"
)

var checkRequire bool

func init() {
	checkCmd.Flags().BoolVar(&checkRequire, "require", false,
		"treat documents without front matter as failures")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check file...",
	Short: "Report whether each document's front matter parses",
	Long: `Check parses every file given and prints one line per file with the
detected delimiter style and format. It exits non-zero when any file
fails to parse (or, with --require, has no front matter at all).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !logging.SupportsColor(out) {
		prev := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = prev }()
	}

	var failed int
	for _, name := range args {
		doc, err := parseInput(cmd, name)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", color.RedString("✗"), name, errors.UnwrapAll(err))
		case doc.Format == "":
			if checkRequire {
				failed++
				fmt.Fprintf(out, "%s %s: no front matter\n", color.RedString("✗"), name)
			} else {
				fmt.Fprintf(out, "%s %s: no front matter\n", color.YellowString("-"), name)
			}
		default:
			fmt.Fprintf(out, "%s %s: %s (%s)\n", color.GreenString("✓"), name, doc.Format, doc.Style)
		}
	}

	if failed > 0 {
		return errors.NewUserError(errors.Newf("%d of %d file(s) failed", failed, len(args)), "")
	}
	return nil
}
