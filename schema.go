package namedstruct

// Schema is the ordered, immutable field mapping of a Type. It is composed
// exactly once, when the type is built, and shared by every instance; no
// mutation happens after composition, so a Schema is safe for concurrent use.
type Schema struct {
	fields []Field
	index  map[string]int // name -> position in fields
}

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Has reports whether name is a declared field. This is the single membership
// check behind both attribute-style and key-style access.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Field returns the descriptor for name and whether it is declared.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Fields returns the descriptors in declaration order. The slice is a copy.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Names returns the field names in declaration order. The slice is a copy.
func (s *Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// compose merges the declarations of one definition level into a parent
// schema. A name seen for the first time is appended at the end; a name the
// parent already declares has its descriptor replaced in place, keeping the
// position of the first declaration. parent may be nil.
func compose(parent *Schema, own []Field) *Schema {
	var base []Field
	if parent != nil {
		base = parent.fields
	}
	out := &Schema{
		fields: append([]Field(nil), base...),
		index:  make(map[string]int, len(base)+len(own)),
	}
	for i, f := range out.fields {
		out.index[f.Name] = i
	}
	for _, f := range own {
		if i, ok := out.index[f.Name]; ok {
			out.fields[i] = f
			continue
		}
		out.index[f.Name] = len(out.fields)
		out.fields = append(out.fields, f)
	}
	return out
}
