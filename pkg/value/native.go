package value

import "strconv"

// ToAny converts v into plain Go values: nil, bool, int64, uint64,
// float64, string, []any and map[string]any. Key order is lost.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		if t.IsInteger() {
			if i, err := t.Int64(); err == nil {
				return i
			}
			if u, err := strconv.ParseUint(string(t), 10, 64); err == nil {
				return u
			}
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return string(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = ToAny(item)
		}
		return out
	case *Object:
		out := make(map[string]any, t.Len())
		for k, item := range t.All() {
			out[k] = ToAny(item)
		}
		return out
	default:
		return nil
	}
}
