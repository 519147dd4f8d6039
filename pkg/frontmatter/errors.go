package frontmatter

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by the parsers. Use [errors.Is] to test for them.
var (
	// ErrUnparsableFrontMatter means an opening delimiter was found but no
	// closing delimiter produced a non-empty object.
	ErrUnparsableFrontMatter = errors.New("failed to parse document")

	// ErrMultipleDocuments means a YAML block held more than one non-null document.
	ErrMultipleDocuments = errors.New("multiple YAML documents are unsupported")

	// ErrBadKey means a YAML mapping key could not be reduced to a string.
	ErrBadKey = errors.New("bad YAML key")

	// ErrUnresolvedAlias means a YAML alias was encountered. Aliases are not expanded.
	ErrUnresolvedAlias = errors.New("unresolved YAML alias")

	// ErrMalformedNode means the YAML tree held a node that has no canonical form.
	ErrMalformedNode = errors.New("malformed YAML node")

	// ErrInvalidJSON wraps grammar errors from the JSON parser.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrInvalidTOML wraps grammar errors from the TOML parser.
	ErrInvalidTOML = errors.New("invalid TOML")

	// ErrInvalidYAML wraps grammar errors from the YAML parser.
	ErrInvalidYAML = errors.New("invalid YAML")
)

// KeyError reports a YAML mapping key that is neither a string nor a
// number. It matches [ErrBadKey].
type KeyError struct {
	Key  string // source text of the key, or its node kind for collections
	Line int
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v %q at line %d", ErrBadKey, e.Key, e.Line)
}

// Is reports whether target is ErrBadKey.
func (e *KeyError) Is(target error) bool {
	return target == ErrBadKey
}

// SyntaxError wraps a grammar error from one of the underlying parsers. It
// matches the sentinel for its format: [ErrInvalidJSON], [ErrInvalidTOML]
// or [ErrInvalidYAML].
type SyntaxError struct {
	Format Format
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %v", e.sentinel(), e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Format.
func (e *SyntaxError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *SyntaxError) sentinel() error {
	switch e.Format {
	case FormatJSON:
		return ErrInvalidJSON
	case FormatTOML:
		return ErrInvalidTOML
	default:
		return ErrInvalidYAML
	}
}

// isProbeError reports whether err is a grammar failure that the splitter
// treats as "try the next delimiter".
func isProbeError(err error) bool {
	return errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrInvalidTOML) ||
		errors.Is(err, ErrInvalidYAML)
}
