package ordered

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
)

// MarshalJSON emits the map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := j.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := j.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map, preserving the key order
// of the input at every nesting level. Numbers are decoded as json.Number.
// Existing entries are kept; decoded keys overwrite or append per Set.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return fmt.Errorf("ordered: expected JSON object, got %v", tok)
	}
	if m.values == nil {
		m.values = map[string]any{}
	}
	return m.decodeMembers(dec)
}

// decodeMembers consumes key/value pairs up to and including the closing brace.
func (m *Map) decodeMembers(dec *j.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ordered: expected object key, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return err
		}
		m.Set(key, v)
	}
	_, err := dec.Token() // closing '}'
	return err
}

// decodeValue decodes the next JSON value. Objects become *Map so that nested
// key order survives; arrays become []any.
func decodeValue(dec *j.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			child := New()
			if err := child.decodeMembers(dec); err != nil {
				return nil, err
			}
			return child, nil
		case '[':
			var arr []any
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("ordered: unexpected delimiter %v", t)
		}
	default:
		return tok, nil
	}
}
