package value

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// Object is a string-keyed mapping that remembers the order in which keys
// were last assigned. The zero value is an empty object ready to use.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Get returns the value bound to key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.values == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set binds key to v. If key already exists it is moved to the end, so the
// key order always reflects the most recent assignment.
func (o *Object) Set(key string, v Value) {
	if v == nil {
		v = Null{}
	}
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; ok {
		o.removeKey(key)
	}
	o.keys = append(o.keys, key)
	o.values[key] = v
}

// Append binds key to v only if key is not yet present, keeping its first
// position otherwise. It reports whether the key was added.
func (o *Object) Append(key string, v Value) bool {
	if _, ok := o.Get(key); ok {
		return false
	}
	o.Set(key, v)
	return true
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.Get(key); !ok {
		return false
	}
	o.removeKey(key)
	delete(o.values, key)
	return true
}

func (o *Object) removeKey(key string) {
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
}

// Keys returns a copy of the keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// All iterates over the entries in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON implements json.Marshaler, emitting keys in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for i, k := range o.keys {
		if other.keys[i] != k {
			return false
		}
		if !Equal(o.values[k], other.values[k]) {
			return false
		}
	}
	return true
}
