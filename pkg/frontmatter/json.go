package frontmatter

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/pkg/value"
)

// ParseJSON parses a single JSON value. Object keys keep their source order;
// a repeated key keeps the last value.
func ParseJSON(text string) (value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeJSON(dec)
	if err != nil {
		return nil, &SyntaxError{Format: FormatJSON, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &SyntaxError{Format: FormatJSON, Err: err}
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case nil:
		return value.Null{}, nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case json.Number:
		return value.Number(t), nil
	case json.Delim:
		switch t {
		case '{':
			obj := value.NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, errors.Newf("unexpected object key %v", kt)
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := value.Array{}
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
	}
	return nil, errors.Newf("unexpected token %v", tok)
}
