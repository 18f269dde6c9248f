package namedstruct

import "strings"

// FromNames builds an ad-hoc Type from an ordered list of field names, each
// with a nil default. The caller-given order is the schema order. An empty
// name defaults to "NamedStruct". Invalid identifiers fail with
// bad_field_name; a name appearing twice fails with duplicate_declaration.
func FromNames(name string, names []string) (*Type, error) {
	b := Define(name)
	seen := make(map[string]struct{}, len(names))
	var iss Issues
	for _, n := range names {
		if _, dup := seen[n]; dup {
			iss = AppendIssues(iss, issueAt(b.name, n, CodeDuplicateDeclaration, nil))
			continue
		}
		seen[n] = struct{}{}
		b.Field(n)
	}
	if len(iss) > 0 {
		return nil, AppendIssues(iss, b.iss...)
	}
	return b.Build()
}

// FromSpec is FromNames for a single string of field names separated by
// commas and/or whitespace, e.g. "foo, bar" or "foo bar".
func FromSpec(name, spec string) (*Type, error) {
	return FromNames(name, splitSpec(spec))
}

// MustFromSpec is like FromSpec but panics on error.
func MustFromSpec(name, spec string) *Type {
	t, err := FromSpec(name, spec)
	if err != nil {
		panic(err)
	}
	return t
}

// MustFromNames is like FromNames but panics on error.
func MustFromNames(name string, names []string) *Type {
	t, err := FromNames(name, names)
	if err != nil {
		panic(err)
	}
	return t
}

func splitSpec(spec string) []string {
	return strings.Fields(strings.ReplaceAll(spec, ",", " "))
}
