// Package translate converts parsed documents between front-matter styles
// and encodes parse results for display.
package translate

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/pkg/frontmatter"
	"github.com/thoreinstein/matter/pkg/value"
)

// StyleFromName maps a format name or delimiter to the style that renders it.
// Accepted names are yaml, toml and json (case-insensitive) and the literal
// delimiters "---", "+++" and "{}".
func StyleFromName(name string) (frontmatter.Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml", "---":
		return frontmatter.StyleDashes, nil
	case "toml", "+++":
		return frontmatter.StylePluses, nil
	case "json", "{}", "{":
		return frontmatter.StyleBraces, nil
	default:
		return frontmatter.StyleNone, errors.Wrapf(errors.ErrUnknownFormat, "%q", name)
	}
}

// Convert parses text and re-renders its front matter in the target style.
// The content after the block is carried over unchanged. Documents without
// front matter yield ErrNoFrontMatter.
func Convert(text string, to frontmatter.Style, opts ...frontmatter.Option) ([]byte, error) {
	doc, err := frontmatter.ParseDocument(text, opts...)
	if err != nil {
		return nil, err
	}

	obj, ok := doc.FrontMatter.(*value.Object)
	if doc.Style == frontmatter.StyleNone || !ok {
		return nil, errors.ErrNoFrontMatter
	}

	return frontmatter.Render(obj, to, doc.Content)
}

// Result is the displayable form of a parsed document.
type Result struct {
	FrontMatter value.Value `json:"front_matter"`
	Content     string      `json:"content"`
	Style       string      `json:"style"`
	Format      string      `json:"format"`
}

// NewResult describes doc for display.
func NewResult(doc *frontmatter.Document) Result {
	fm := doc.FrontMatter
	if fm == nil {
		fm = value.Null{}
	}
	return Result{
		FrontMatter: fm,
		Content:     doc.Content,
		Style:       doc.Style.String(),
		Format:      string(doc.Format),
	}
}

// Encode writes r as json or yaml using indent spaces per level.
// Front-matter keys keep their document order in both encodings.
func Encode(r Result, output string, indent int) ([]byte, error) {
	return encode(r, resultNode(r), output, indent)
}

// EncodeValue writes a single value as json or yaml.
func EncodeValue(v value.Value, output string, indent int) ([]byte, error) {
	if v == nil {
		v = value.Null{}
	}
	return encode(v, frontmatter.YAMLNode(v), output, indent)
}

func encode(v any, node *yaml.Node, output string, indent int) ([]byte, error) {
	switch output {
	case "json":
		out, err := json.MarshalIndent(v, "", strings.Repeat(" ", indent))
		if err != nil {
			return nil, errors.Wrap(err, "marshaling json")
		}
		return append(out, '\n'), nil
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(indent)
		if err := enc.Encode(node); err != nil {
			return nil, errors.Wrap(err, "marshaling yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "marshaling yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "output %q", output)
	}
}

func resultNode(r Result) *yaml.Node {
	str := func(s string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			str("front_matter"), frontmatter.YAMLNode(r.FrontMatter),
			str("content"), str(r.Content),
			str("style"), str(r.Style),
			str("format"), str(r.Format),
		},
	}
}
