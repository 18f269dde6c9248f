// Package ordered provides the insertion-order-preserving key/value container
// backing namedstruct instances. Equality is content-based and holds against
// any ordered mapping, not just another *Map.
package ordered

import "reflect"

// Mapping is the minimal read surface an external container must expose for
// content comparison. *Map satisfies it, as does namedstruct.Struct.
type Mapping interface {
	Len() int
	Range(fn func(key string, value any) bool)
}

// Map is a string-keyed map that iterates in insertion order.
// The zero value is not ready for use; call New.
type Map struct {
	keys   []string
	values map[string]any
}

// New returns an empty Map.
func New() *Map {
	return &Map{values: map[string]any{}}
}

// Set stores value under key. A new key is appended at the end of the
// iteration order; an existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored keys.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Range calls fn for each key/value pair in insertion order until fn returns
// false.
func (m *Map) Range(fn func(key string, value any) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns an independent copy sharing no storage with m. Values are
// copied shallowly.
func (m *Map) Clone() *Map {
	out := &Map{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]any, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Equal reports content equality against another ordered mapping. Supported
// shapes: *Map, plain map[string]any, and any Mapping implementation.
// Key order does not participate in equality; values are compared with
// reflect.DeepEqual.
func (m *Map) Equal(other any) bool {
	switch o := other.(type) {
	case *Map:
		if o == nil {
			return false
		}
		return m.equalFunc(o.Len(), o.Get)
	case map[string]any:
		return m.equalFunc(len(o), func(k string) (any, bool) { v, ok := o[k]; return v, ok })
	case Mapping:
		if o == nil {
			return false
		}
		got := make(map[string]any, o.Len())
		o.Range(func(k string, v any) bool {
			got[k] = v
			return true
		})
		return m.Equal(got)
	default:
		return false
	}
}

func (m *Map) equalFunc(n int, get func(key string) (any, bool)) bool {
	if len(m.keys) != n {
		return false
	}
	for _, k := range m.keys {
		ov, ok := get(k)
		if !ok || !reflect.DeepEqual(m.values[k], ov) {
			return false
		}
	}
	return true
}
