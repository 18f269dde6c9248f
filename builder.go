package namedstruct

import "unicode"

const defaultTypeName = "NamedStruct"

// Builder accumulates the field declarations of one definition level and
// composes them with the parent's schema at Build time. Obtain one from
// Define (root type) or (*Type).Extend (subtype).
type Builder struct {
	name   string
	parent *Type
	frozen bool
	own    []ownField
	iss    Issues
}

type ownField struct {
	f          Field
	hasDefault bool
	hasFactory bool
}

// FieldStep scopes Default/Factory to the most recently declared field.
type FieldStep struct {
	b   *Builder
	idx int
}

// Define starts a builder for a new root type. An empty name defaults to
// "NamedStruct".
func Define(name string) *Builder {
	if name == "" {
		name = defaultTypeName
	}
	return &Builder{name: name}
}

// Field declares a field with a nil default. Declaring a name this level
// already declares replaces the earlier descriptor in place; the position of
// the first declaration is kept.
func (b *Builder) Field(name string) *FieldStep {
	if !isFieldName(name) {
		b.iss = AppendIssues(b.iss, issueAt(b.name, name, CodeBadFieldName, nil))
	}
	for i := range b.own {
		if b.own[i].f.Name == name {
			b.own[i] = ownField{f: Field{Name: name}}
			return &FieldStep{b: b, idx: i}
		}
	}
	b.own = append(b.own, ownField{f: Field{Name: name}})
	return &FieldStep{b: b, idx: len(b.own) - 1}
}

// Frozen marks the type under construction as frozen: instances permit
// construction but reject every subsequent write.
func (b *Builder) Frozen() *Builder {
	b.frozen = true
	return b
}

// Build validates the declarations, composes the schema with the parent's
// (base to derived, first declaration fixes position), and returns the Type.
// The schema is computed here exactly once; instantiation never re-derives it.
func (b *Builder) Build() (*Type, error) {
	iss := b.iss
	for _, of := range b.own {
		if of.hasDefault && of.hasFactory {
			iss = AppendIssues(iss, issueAt(b.name, of.f.Name, CodeInvalidField, nil))
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	own := make([]Field, len(b.own))
	for i, of := range b.own {
		own[i] = of.f
	}
	var parentSchema *Schema
	if b.parent != nil {
		parentSchema = b.parent.schema
	}
	return &Type{name: b.name, parent: b.parent, frozen: b.frozen, schema: compose(parentSchema, own)}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// Default sets a static default for the current field. The value is shared by
// every instance; use Factory for mutable defaults.
func (s *FieldStep) Default(v any) *Builder {
	s.b.own[s.idx].f.Default = v
	s.b.own[s.idx].hasDefault = true
	return s.b
}

// Factory sets a default factory for the current field, invoked freshly per
// construction.
func (s *FieldStep) Factory(fn func() any) *Builder {
	s.b.own[s.idx].f.Factory = fn
	s.b.own[s.idx].hasFactory = true
	return s.b
}

func (s *FieldStep) Field(name string) *FieldStep { return s.b.Field(name) }
func (s *FieldStep) Frozen() *Builder             { return s.b.Frozen() }
func (s *FieldStep) Build() (*Type, error)        { return s.b.Build() }
func (s *FieldStep) MustBuild() *Type             { return s.b.MustBuild() }

// isFieldName reports whether name is a valid field identifier: a letter or
// underscore followed by letters, digits, or underscores.
func isFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
