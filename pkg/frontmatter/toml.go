package frontmatter

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/thoreinstein/matter/pkg/value"
)

// ParseTOML parses a TOML document. Tables keep the order in which their
// keys were first declared. Dates and times become strings.
func ParseTOML(text string) (value.Value, error) {
	var data map[string]any
	if err := toml.Unmarshal([]byte(text), &data); err != nil {
		return nil, &SyntaxError{Format: FormatTOML, Err: err}
	}
	if data == nil {
		data = map[string]any{}
	}

	order, err := tomlKeyOrder([]byte(text))
	if err != nil {
		return nil, &SyntaxError{Format: FormatTOML, Err: err}
	}

	return fromTOML(data, nil, order)
}

// keyOrder maps an encoded table path to the keys declared in that table.
type keyOrder map[string][]string

func pathKey(path []string) string {
	return strings.Join(path, "\x00")
}

func indexSegment(i int) string {
	return "\x01" + strconv.Itoa(i)
}

func (o keyOrder) add(path []string, key string) {
	pk := pathKey(path)
	if !slices.Contains(o[pk], key) {
		o[pk] = append(o[pk], key)
	}
}

// tomlKeyOrder walks the expression stream and records declaration order
// for every table, including array-of-tables elements and inline tables.
func tomlKeyOrder(src []byte) (keyOrder, error) {
	order := keyOrder{}
	arrays := map[string]int{}

	var p unstable.Parser
	p.Reset(src)

	var current []string
	for p.NextExpression() {
		n := p.Expression()
		switch n.Kind {
		case unstable.Table, unstable.ArrayTable:
			current = resolveTable(order, arrays, keyParts(n), n.Kind == unstable.ArrayTable)
		case unstable.KeyValue:
			recordKeyValue(order, current, n)
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return order, nil
}

func keyParts(n *unstable.Node) []string {
	var parts []string
	it := n.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// resolveTable turns a header such as [a.b] or [[a.b]] into a concrete
// path, routing through the latest element of any array of tables.
func resolveTable(order keyOrder, arrays map[string]int, keys []string, newElem bool) []string {
	var path []string
	for i, k := range keys {
		order.add(path, k)
		path = append(path, k)

		pk := pathKey(path)
		count, isArray := arrays[pk]
		last := i == len(keys)-1
		switch {
		case last && newElem:
			arrays[pk] = count + 1
			path = append(path, indexSegment(count))
		case isArray:
			path = append(path, indexSegment(count-1))
		}
	}
	return path
}

func recordKeyValue(order keyOrder, table []string, n *unstable.Node) {
	path := slices.Clone(table)
	keys := keyParts(n)
	for _, k := range keys {
		order.add(path, k)
		path = append(path, k)
	}
	recordValue(order, path, n.Value())
}

func recordValue(order keyOrder, path []string, n *unstable.Node) {
	switch n.Kind {
	case unstable.InlineTable:
		it := n.Children()
		for it.Next() {
			recordKeyValue(order, path, it.Node())
		}
	case unstable.Array:
		it := n.Children()
		for i := 0; it.Next(); i++ {
			recordValue(order, append(slices.Clone(path), indexSegment(i)), it.Node())
		}
	}
}

func fromTOML(v any, path []string, order keyOrder) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.Null{}, nil
	case map[string]any:
		obj := value.NewObject()
		for _, k := range order[pathKey(path)] {
			if x, ok := t[k]; ok {
				cv, err := fromTOML(x, append(slices.Clone(path), k), order)
				if err != nil {
					return nil, err
				}
				obj.Set(k, cv)
			}
		}
		var rest []string
		for k := range t {
			if _, ok := obj.Get(k); !ok {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		for _, k := range rest {
			cv, err := fromTOML(t[k], append(slices.Clone(path), k), order)
			if err != nil {
				return nil, err
			}
			obj.Set(k, cv)
		}
		return obj, nil
	case []any:
		arr := make(value.Array, 0, len(t))
		for i, x := range t {
			cv, err := fromTOML(x, append(slices.Clone(path), indexSegment(i)), order)
			if err != nil {
				return nil, err
			}
			arr = append(arr, cv)
		}
		return arr, nil
	case string:
		return value.String(t), nil
	case bool:
		return value.Bool(t), nil
	case int64:
		return value.Int(t), nil
	case uint64:
		return value.Uint(t), nil
	case float64:
		if n, ok := value.Float(t); ok {
			return n, nil
		}
		return value.Null{}, nil
	case time.Time:
		return value.String(t.Format(time.RFC3339Nano)), nil
	case toml.LocalDate:
		return value.String(t.String()), nil
	case toml.LocalTime:
		return value.String(t.String()), nil
	case toml.LocalDateTime:
		return value.String(t.String()), nil
	default:
		return nil, errors.Newf("unsupported TOML value of type %T", v)
	}
}
