package namedstruct

import (
	"fmt"
	"strings"

	"github.com/TriOptima/named-struct/ordered"
)

// Struct is an instance of a Type: an ordered name->value mapping whose key
// set is always exactly the type's schema key set. Both access styles run the
// same schema membership check and differ only in the issue code they surface.
// A Struct is owned by the holder of the reference; no internal locking.
type Struct struct {
	typ    *Type
	values *ordered.Map
	frozen bool
}

// Type returns the struct's type.
func (s *Struct) Type() *Type { return s.typ }

// Len returns the number of fields.
func (s *Struct) Len() int { return s.values.Len() }

// Keys returns the field names in schema order.
func (s *Struct) Keys() []string { return s.values.Keys() }

// Range calls fn for each field in schema order until fn returns false.
func (s *Struct) Range(fn func(name string, value any) bool) { s.values.Range(fn) }

// IsFrozen reports whether writes are rejected.
func (s *Struct) IsFrozen() bool { return s.frozen }

// Get reads a field key-style. Undeclared names fail with unknown_field.
func (s *Struct) Get(name string) (any, error) {
	if !s.typ.schema.Has(name) {
		return nil, Issues{issueAt(s.typ.name, name, CodeUnknownField, nil)}
	}
	v, _ := s.values.Get(name)
	return v, nil
}

// Set writes a field key-style. A frozen instance rejects the write outright
// (frozen_write) before the name is even checked; on a mutable instance an
// undeclared name fails with unknown_field.
func (s *Struct) Set(name string, value any) error {
	if s.frozen {
		return Issues{issueAt(s.typ.name, name, CodeFrozenWrite, nil)}
	}
	if !s.typ.schema.Has(name) {
		return Issues{issueAt(s.typ.name, name, CodeUnknownField, nil)}
	}
	s.values.Set(name, value)
	return nil
}

// Attr reads a field attribute-style. Same membership check as Get, surfaced
// as unknown_attribute.
func (s *Struct) Attr(name string) (any, error) {
	if !s.typ.schema.Has(name) {
		return nil, Issues{issueAt(s.typ.name, name, CodeUnknownAttribute, nil)}
	}
	v, _ := s.values.Get(name)
	return v, nil
}

// SetAttr writes a field attribute-style. Frozen instances reject the write
// regardless of name validity; otherwise undeclared names fail with
// unknown_attribute.
func (s *Struct) SetAttr(name string, value any) error {
	if s.frozen {
		return Issues{issueAt(s.typ.name, name, CodeFrozenWrite, nil)}
	}
	if !s.typ.schema.Has(name) {
		return Issues{issueAt(s.typ.name, name, CodeUnknownAttribute, nil)}
	}
	s.values.Set(name, value)
	return nil
}

// MustGet is like Get but panics on undeclared names. Intended for tests.
func (s *Struct) MustGet(name string) any {
	v, err := s.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Equal reports content equality against any ordered mapping with the same
// key/value pairs: another *Struct, an *ordered.Map, a plain map[string]any,
// or Values. The declared type does not participate in equality.
func (s *Struct) Equal(other any) bool {
	switch o := other.(type) {
	case *Struct:
		if o == nil {
			return false
		}
		return s.values.Equal(o.values)
	case Values:
		return s.values.Equal(map[string]any(o))
	default:
		return s.values.Equal(other)
	}
}

// Freeze returns a frozen copy of s. The copy belongs to the frozen twin of
// s's type; s itself stays mutable and unchanged.
func (s *Struct) Freeze() *Struct {
	return &Struct{typ: s.typ.Frozen(), values: s.values.Clone(), frozen: true}
}

// Map returns a copy of the underlying ordered container.
func (s *Struct) Map() *ordered.Map { return s.values.Clone() }

// String renders the instance as TypeName(f1=v1, f2=v2, ...) in schema order.
func (s *Struct) String() string {
	b := &strings.Builder{}
	b.WriteString(s.typ.name)
	b.WriteByte('(')
	first := true
	s.values.Range(func(k string, v any) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(b, "%s=%v", k, v)
		return true
	})
	b.WriteByte(')')
	return b.String()
}
