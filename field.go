package namedstruct

// Field describes one declared field of a struct type: its name, an optional
// static default, and an optional default factory. At most one of Default and
// Factory may be set; when neither is set the effective default is nil.
//
// A static default is shared by every instance and must be treated as
// immutable by callers; a factory is invoked freshly per construction, so
// mutable defaults are never shared across instances.
type Field struct {
	Name    string
	Default any
	Factory func() any
}
