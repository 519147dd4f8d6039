package frontmatter

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/matter/pkg/value"
)

// Render writes fm as a front-matter block in the given style followed by
// body. YAML and JSON keep the object's key order; TOML tables are written
// with sorted keys and cannot hold nulls.
func Render(fm *value.Object, style Style, body string) ([]byte, error) {
	if fm == nil {
		fm = value.NewObject()
	}

	var buf bytes.Buffer
	switch style {
	case StyleDashes:
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(YAMLNode(fm)); err != nil {
			return nil, errors.Wrap(err, "encoding YAML front matter")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding YAML front matter")
		}
		buf.WriteString("---\n")
	case StylePluses:
		if path, ok := findNull(fm, ""); ok {
			return nil, errors.Newf("encoding TOML front matter: TOML has no null (at %q)", path)
		}
		out, err := toml.Marshal(value.ToAny(fm))
		if err != nil {
			return nil, errors.Wrap(err, "encoding TOML front matter")
		}
		buf.WriteString("+++\n")
		buf.Write(out)
		buf.WriteString("+++\n")
	case StyleBraces:
		out, err := json.MarshalIndent(fm, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encoding JSON front matter")
		}
		buf.Write(out)
		buf.WriteByte('\n')
	default:
		return nil, errors.Newf("cannot render front matter in style %s", style)
	}

	buf.WriteString(body)
	return buf.Bytes(), nil
}

// YAMLNode converts v into a yaml.v3 node tree with explicit tags, so that
// encoding preserves object key order and never reinterprets strings.
func YAMLNode(v value.Value) *yaml.Node {
	switch t := v.(type) {
	case value.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(t))}
	case value.Number:
		tag := "!!float"
		if t.IsInteger() {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(t)}
	case value.String:
		return yamlString(string(t))
	case value.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			n.Content = append(n.Content, YAMLNode(item))
		}
		return n
	case *value.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, item := range t.All() {
			n.Content = append(n.Content,
				yamlString(k),
				YAMLNode(item))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// yamlString double-quotes strings holding the closing delimiter, which
// would otherwise end the block when written plain or as a literal.
func yamlString(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.Contains(s, "---") {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

// findNull returns the dotted path of the first null inside v.
func findNull(v value.Value, path string) (string, bool) {
	switch t := v.(type) {
	case value.Null:
		return path, true
	case value.Array:
		for i, item := range t {
			if p, ok := findNull(item, path+"["+strconv.Itoa(i)+"]"); ok {
				return p, true
			}
		}
	case *value.Object:
		for k, item := range t.All() {
			p := k
			if path != "" {
				p = path + "." + k
			}
			if found, ok := findNull(item, p); ok {
				return found, true
			}
		}
	}
	return "", false
}
