package namedstruct

// Package namedstruct provides:
//
// - Schema-constrained record types: a fixed, ordered set of named fields per type
// - Declarative definition via Define/Extend builders, plus an ad-hoc factory from field-name lists
// - Uniform access control across attribute-style (Attr/SetAttr) and key-style (Get/Set) paths
// - Frozen variants that reject every write once construction completes
// - A stable error model via Issues (type name, field, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put the ordered container under ordered/,
//   localized messages under i18n/, and accessor generation under internal/gen + cmd/structgen.
// - Schemas are composed exactly once at type-definition time and are immutable afterwards.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  point := namedstruct.Define("Point").
//      Field("x").Default(0).
//      Field("y").Default(0).
//      MustBuild()
//
//  p, err := point.New(17, 42)
//  v, err := p.Attr("x")
//  err = p.Set("y", 7)
//
