package namedstruct

import (
	"gopkg.in/yaml.v3"

	"github.com/TriOptima/named-struct/ordered"
)

// ParseJSON constructs an instance from a JSON object. Decoding preserves the
// input key order; the decoded members then go through the regular binder, so
// keys outside the schema fail with unknown_keyword and omitted fields
// receive their defaults. Non-object input fails with parse_error.
func (t *Type) ParseJSON(data []byte) (*Struct, error) {
	m := ordered.New()
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, Issues{Issue{Type: t.name, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return t.NewFrom(m)
}

// ParseYAML constructs an instance from a YAML mapping, under the same
// binding rules as ParseJSON.
func (t *Type) ParseYAML(data []byte) (*Struct, error) {
	m := ordered.New()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, Issues{Issue{Type: t.name, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return t.NewFrom(m)
}

// MarshalJSON emits the instance as a JSON object in schema order.
func (s *Struct) MarshalJSON() ([]byte, error) { return s.values.MarshalJSON() }

// MarshalYAML emits the instance as a YAML mapping in schema order.
func (s *Struct) MarshalYAML() (any, error) { return s.values.MarshalYAML() }
