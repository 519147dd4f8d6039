package frontmatter

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/matter/pkg/value"
)

// ParseYAML parses a YAML stream holding at most one non-null document.
// Mapping keys keep the order of their last assignment and a repeated key
// keeps its last value. Aliases are rejected rather than expanded.
func ParseYAML(text string) (value.Value, error) {
	root, err := loadYAML(text)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return value.Null{}, nil
	}
	return fromYAML(root)
}

// loadYAML decodes every document in text, drops the null ones and returns
// the remaining document node, or nil when nothing is left.
func loadYAML(text string) (*yaml.Node, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var docs []*yaml.Node
	for {
		doc := new(yaml.Node)
		err := dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &SyntaxError{Format: FormatYAML, Err: err}
		}
		if isNullDocument(doc) {
			continue
		}
		docs = append(docs, doc)
	}

	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		return docs[0], nil
	default:
		return nil, errors.Wrapf(ErrMultipleDocuments, "found %d documents", len(docs))
	}
}

func isNullDocument(doc *yaml.Node) bool {
	if doc.Kind != yaml.DocumentNode {
		return false
	}
	if len(doc.Content) == 0 {
		return true
	}
	root := doc.Content[0]
	return root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null"
}

// documentRoot unwraps a document node to its single child.
func documentRoot(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

func fromYAML(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null{}, nil
		}
		return fromYAML(n.Content[0])
	case yaml.ScalarNode:
		return yamlScalar(n)
	case yaml.SequenceNode:
		arr := make(value.Array, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.AliasNode:
		return nil, errors.Wrapf(ErrUnresolvedAlias, "*%s at line %d", n.Value, n.Line)
	default:
		return nil, errors.Wrapf(ErrMalformedNode, "node kind %d at line %d", n.Kind, n.Line)
	}
}

func yamlMapping(n *yaml.Node) (value.Value, error) {
	if len(n.Content)%2 != 0 {
		return nil, errors.Wrapf(ErrMalformedNode, "mapping with odd entry count at line %d", n.Line)
	}

	obj := value.NewObject()
	for i := 0; i < len(n.Content); i += 2 {
		key, err := yamlKey(n.Content[i])
		if err != nil {
			return nil, err
		}
		v, err := fromYAML(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	return obj, nil
}

// yamlKey reduces a mapping key to a string. Integers are written in
// decimal and floats keep their source text.
func yamlKey(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return "", errors.Wrapf(ErrUnresolvedAlias, "*%s used as key at line %d", n.Value, n.Line)
	case yaml.ScalarNode:
	default:
		return "", &KeyError{Key: nodeKindName(n.Kind), Line: n.Line}
	}

	switch n.ShortTag() {
	case "!!int":
		v, err := yamlInt(n)
		if err != nil {
			return "", err
		}
		return string(v), nil
	case "!!bool", "!!null":
		return "", &KeyError{Key: n.Value, Line: n.Line}
	default:
		return n.Value, nil
	}
}

func yamlScalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, malformed(n, err)
		}
		return value.Bool(b), nil
	case "!!int":
		return yamlInt(n)
	case "!!float":
		if isJSONNumber(n.Value) && !value.Number(n.Value).IsInteger() {
			return value.Number(n.Value), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, malformed(n, err)
		}
		if num, ok := value.Float(f); ok {
			return num, nil
		}
		// .nan and .inf have no canonical number.
		return value.Null{}, nil
	default:
		// !!str, !!timestamp, !!binary and application tags keep their text.
		return value.String(n.Value), nil
	}
}

// isJSONNumber reports whether s is already a valid JSON number literal.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

func yamlInt(n *yaml.Node) (value.Number, error) {
	var i int64
	err := n.Decode(&i)
	if err == nil {
		return value.Int(i), nil
	}
	var u uint64
	if n.Decode(&u) == nil {
		return value.Uint(u), nil
	}
	return "", malformed(n, err)
}

func malformed(n *yaml.Node, err error) error {
	return errors.Wrapf(ErrMalformedNode, "%s %q at line %d: %v", n.ShortTag(), n.Value, n.Line, err)
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
