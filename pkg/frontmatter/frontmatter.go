package frontmatter

import (
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/matter/pkg/value"
)

// Style is the delimiter convention that opens a front-matter block.
type Style int

const (
	// StyleNone means the document has no front matter.
	StyleNone Style = iota
	// StyleDashes is a block between "---" lines.
	StyleDashes
	// StylePluses is a block between "+++" lines.
	StylePluses
	// StyleBraces is a block that is itself a JSON object.
	StyleBraces
)

func (s Style) String() string {
	switch s {
	case StyleDashes:
		return "---"
	case StylePluses:
		return "+++"
	case StyleBraces:
		return "{}"
	default:
		return "none"
	}
}

// closing returns the marker searched for to end the block.
func (s Style) closing() string {
	switch s {
	case StyleDashes:
		return "---"
	case StylePluses:
		return "+++"
	case StyleBraces:
		return "}"
	default:
		return ""
	}
}

// Format names the grammar that accepted a front-matter block.
type Format string

// Supported formats.
const (
	FormatNone Format = ""
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Document is a parsed document. Content is always a suffix of the input
// text and shares its memory.
type Document struct {
	// FrontMatter is value.Null{} when the document has no front matter,
	// and a non-empty *value.Object otherwise.
	FrontMatter value.Value
	Content     string
	Style       Style
	Format      Format
}

// Option configures ParseDocument.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger makes the splitter log every candidate it probes at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Parse reads r to the end and splits it with ParseDocument.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}
	return ParseDocument(string(data), opts...)
}

// ParseDocument splits text into front matter and content, detecting the
// front-matter format from its opening delimiter.
//
// Every occurrence of the closing marker after the opening one is tried in
// turn, so a delimiter that appears inside a string value does not cut the
// block short. At each candidate the block is tried as TOML and then as
// YAML (brace blocks are tried as JSON first); the first grammar to produce
// a non-empty object wins. Documents without a recognised opening
// delimiter have null front matter and the whole text as content.
func ParseDocument(text string, opts ...Option) (*Document, error) {
	o := options{logger: discard}
	for _, opt := range opts {
		opt(&o)
	}

	start := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return noFrontMatter(text), nil
	}

	style := detectStyle(text[start:])
	if style == StyleNone {
		return noFrontMatter(text), nil
	}

	marker := style.closing()
	fmStart := start
	if style != StyleBraces {
		fmStart += len(marker)
	}

	// Non-overlapping matches over the whole text; anything at or before
	// fmStart belongs to the opening marker.
	for off := 0; off <= len(text); {
		i := strings.Index(text[off:], marker)
		if i < 0 {
			break
		}
		preEnd := off + i
		postEnd := preEnd + len(marker)
		off = postEnd
		if preEnd <= fmStart {
			continue
		}

		candidate := text[fmStart:preEnd]
		if style == StyleBraces {
			candidate = text[fmStart:postEnd]
		}

		fm, format, err := probe(candidate, style, o.logger.With("offset", preEnd))
		if err != nil {
			return nil, err
		}
		if format == FormatNone {
			continue
		}

		return &Document{
			FrontMatter: fm,
			Content:     text[contentStart(text, postEnd):],
			Style:       style,
			Format:      format,
		}, nil
	}

	return nil, ErrUnparsableFrontMatter
}

// ParseString is ParseDocument returning the parts directly.
func ParseString(text string) (value.Value, string, error) {
	doc, err := ParseDocument(text)
	if err != nil {
		return nil, "", err
	}
	return doc.FrontMatter, doc.Content, nil
}

func noFrontMatter(text string) *Document {
	return &Document{
		FrontMatter: value.Null{},
		Content:     text,
		Style:       StyleNone,
	}
}

func detectStyle(s string) Style {
	switch {
	case strings.HasPrefix(s, "---"):
		return StyleDashes
	case strings.HasPrefix(s, "+++"):
		return StylePluses
	case strings.HasPrefix(s, "{"):
		return StyleBraces
	default:
		return StyleNone
	}
}

// contentStart returns the offset just past the first newline at or after
// from, or the end of text when there is none.
func contentStart(text string, from int) int {
	nl := strings.IndexByte(text[from:], '\n')
	if nl < 0 {
		return len(text)
	}
	return min(from+nl+1, len(text))
}

// probe tries each grammar on a candidate block. A grammar error only means
// the candidate is rejected; once YAML has produced a non-empty mapping,
// any failure to normalize it is returned to the caller.
func probe(candidate string, style Style, logger *slog.Logger) (value.Value, Format, error) {
	if style == StyleBraces {
		if v, err := ParseJSON(candidate); accept(v, err, FormatJSON, logger) {
			return v, FormatJSON, nil
		}
	}

	if v, err := ParseTOML(candidate); accept(v, err, FormatTOML, logger) {
		return v, FormatTOML, nil
	}

	root, err := loadYAML(candidate)
	if err != nil {
		if isProbeError(err) {
			logger.Debug("candidate rejected", "format", FormatYAML, "error", err)
			return nil, FormatNone, nil
		}
		return nil, FormatNone, err
	}
	if root == nil {
		logger.Debug("candidate rejected", "format", FormatYAML, "reason", "empty")
		return nil, FormatNone, nil
	}
	if n := documentRoot(root); n.Kind != yaml.MappingNode || len(n.Content) == 0 {
		logger.Debug("candidate rejected", "format", FormatYAML, "reason", "not a mapping")
		return nil, FormatNone, nil
	}

	v, err := fromYAML(root)
	if err != nil {
		return nil, FormatNone, errors.Wrap(err, "converting YAML front matter")
	}
	logger.Debug("candidate accepted", "format", FormatYAML)
	return v, FormatYAML, nil
}

func accept(v value.Value, err error, format Format, logger *slog.Logger) bool {
	switch {
	case err != nil:
		logger.Debug("candidate rejected", "format", format, "error", err)
		return false
	case value.IsEmptyObject(v):
		logger.Debug("candidate rejected", "format", format, "reason", "not a non-empty object")
		return false
	default:
		logger.Debug("candidate accepted", "format", format)
		return true
	}
}
