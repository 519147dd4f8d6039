package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/translate"
)

var (
	parseOutput string
	parseIndent int
	parseOnly   string
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "",
		"output encoding: json, yaml (default from config)")
	parseCmd.Flags().IntVar(&parseIndent, "indent", -1,
		"spaces per indentation level (default from config)")
	parseCmd.Flags().StringVar(&parseOnly, "only", "",
		"print a single part: front-matter, content")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Split a document and print its front matter and content",
	Long: `Parse reads a document (standard input when no file or "-" is given),
splits off its front matter and prints the result.

The default output holds four fields: front_matter, content, style (the
opening delimiter) and format (the grammar that accepted the block). A
document without front matter has null front_matter and style "none".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) == 1 {
		name = args[0]
	}

	doc, err := parseInput(cmd, name)
	if err != nil {
		return err
	}

	output := parseOutput
	if output == "" {
		output = cfg.Output
	}
	indent := parseIndent
	if indent < 0 {
		indent = cfg.Indent
	}

	result := translate.NewResult(doc)
	out := cmd.OutOrStdout()

	switch parseOnly {
	case "":
		data, err := translate.Encode(result, output, indent)
		if err != nil {
			return errors.NewUserError(err, "Use --output json or --output yaml")
		}
		_, err = out.Write(data)
		return err
	case "content":
		_, err := out.Write([]byte(doc.Content))
		return err
	case "front-matter":
		data, err := translate.EncodeValue(result.FrontMatter, output, indent)
		if err != nil {
			return errors.NewUserError(err, "Use --output json or --output yaml")
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.NewUserError(errors.Newf("invalid --only value %q", parseOnly),
			"Use --only front-matter or --only content")
	}
}
