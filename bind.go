package namedstruct

import (
	"sort"

	"github.com/TriOptima/named-struct/ordered"
)

// Values carries keyword arguments for construction.
type Values map[string]any

// bind produces the full name->value storage for a new instance from
// positional and keyword arguments. Checks run in a fixed order: positional
// overflow, duplicate positional/keyword values, unknown keywords, then
// default materialization. Factories are invoked freshly per call.
func (s *Schema) bind(typeName string, pos []any, kw Values) (*ordered.Map, error) {
	if len(pos) > s.Len() {
		return nil, Issues{issueAt(typeName, "", CodeTooManyArgs, map[string]any{"max": s.Len(), "got": len(pos)})}
	}

	byName := make(map[string]any, s.Len())
	positional := make(map[string]struct{}, len(pos))
	for i, v := range pos {
		name := s.fields[i].Name
		byName[name] = v
		positional[name] = struct{}{}
	}

	// keyword names in sorted order for deterministic error selection
	names := make([]string, 0, len(kw))
	for k := range kw {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if _, dup := positional[k]; dup {
			return nil, Issues{issueAt(typeName, k, CodeDuplicateField, nil)}
		}
		byName[k] = kw[k]
	}
	for _, k := range names {
		if !s.Has(k) {
			return nil, Issues{issueAt(typeName, k, CodeUnknownKeyword, nil)}
		}
	}

	out := ordered.New()
	for _, f := range s.fields {
		if v, ok := byName[f.Name]; ok {
			out.Set(f.Name, v)
			continue
		}
		if f.Factory != nil {
			out.Set(f.Name, f.Factory())
			continue
		}
		out.Set(f.Name, f.Default)
	}
	return out, nil
}
