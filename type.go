package namedstruct

import (
	"github.com/TriOptima/named-struct/ordered"
)

// Type is a struct type: a name bound to a composed schema. Types are
// immutable after Build and safe to share across goroutines. The zero value
// is not usable; obtain a Type from Define, Extend, or the ad-hoc factory.
type Type struct {
	name   string
	parent *Type
	frozen bool
	schema *Schema
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.name }

// Schema returns the composed schema. Callers must not mutate descriptors
// reachable from it.
func (t *Type) Schema() *Schema { return t.schema }

// IsFrozen reports whether instances of this type reject writes after
// construction.
func (t *Type) IsFrozen() bool { return t.frozen }

// Frozen returns a frozen twin of t: same name, same schema, writes rejected
// once construction completes. If t is already frozen, t itself is returned.
func (t *Type) Frozen() *Type {
	if t.frozen {
		return t
	}
	return &Type{name: t.name, parent: t, frozen: true, schema: t.schema}
}

// Extend starts a builder for a subtype of t. Fields declared on the builder
// are appended after every inherited field; re-declaring an inherited name
// replaces its descriptor but keeps its original position. A builder with no
// new fields yields a marker subtype sharing t's field set and order exactly.
func (t *Type) Extend(name string) *Builder {
	if name == "" {
		name = defaultTypeName
	}
	return &Builder{name: name, parent: t, frozen: t.frozen}
}

// New constructs an instance from positional values bound in schema order.
func (t *Type) New(pos ...any) (*Struct, error) {
	return t.NewArgs(pos, nil)
}

// NewKw constructs an instance from keyword values only.
func (t *Type) NewKw(kw Values) (*Struct, error) {
	return t.NewArgs(nil, kw)
}

// NewArgs constructs an instance from positional values plus keyword values,
// the general construction form. Positional values bind to fields in schema
// order; fields not covered by either receive their default (factory-produced
// when declared). Binding errors carry the type name and the offending field.
func (t *Type) NewArgs(pos []any, kw Values) (*Struct, error) {
	m, err := t.schema.bind(t.name, pos, kw)
	if err != nil {
		return nil, err
	}
	return &Struct{typ: t, values: m, frozen: t.frozen}, nil
}

// MustNew is like New but panics on error. Intended for tests and static
// initialization.
func (t *Type) MustNew(pos ...any) *Struct {
	s, err := t.New(pos...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewFrom constructs an instance by copying values from an existing
// struct-like mapping: *Struct, *ordered.Map, map[string]any, or Values.
// The copy goes through the regular binder, so undeclared names fail with
// unknown_keyword. This is the construction path for freezing a mutable
// struct into a frozen type.
func (t *Type) NewFrom(src any) (*Struct, error) {
	kw := Values{}
	switch o := src.(type) {
	case *Struct:
		o.Range(func(k string, v any) bool {
			kw[k] = v
			return true
		})
	case *ordered.Map:
		o.Range(func(k string, v any) bool {
			kw[k] = v
			return true
		})
	case Values:
		for k, v := range o {
			kw[k] = v
		}
	case map[string]any:
		for k, v := range o {
			kw[k] = v
		}
	default:
		return nil, Issues{issueAt(t.name, "", CodeParseError, map[string]any{"got": src})}
	}
	return t.NewArgs(nil, kw)
}
