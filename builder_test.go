package namedstruct_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	namedstruct "github.com/TriOptima/named-struct"
)

func TestBuilder_BadFieldName(t *testing.T) {
	_, err := namedstruct.Define("T").Field("9foo").Build()
	if !namedstruct.HasCode(err, namedstruct.CodeBadFieldName) {
		t.Fatalf("expected bad_field_name, got %v", err)
	}
	_, err = namedstruct.Define("T").Field("").Build()
	if !namedstruct.HasCode(err, namedstruct.CodeBadFieldName) {
		t.Fatalf("expected bad_field_name for empty name, got %v", err)
	}
	_, err = namedstruct.Define("T").Field("foo-bar").Build()
	if !namedstruct.HasCode(err, namedstruct.CodeBadFieldName) {
		t.Fatalf("expected bad_field_name for dash, got %v", err)
	}

	// underscore-led and digit-bearing names are fine
	if _, err := namedstruct.Define("T").Field("_x1").Build(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestBuilder_DefaultAndFactoryConflict(t *testing.T) {
	_, err := namedstruct.Define("T").
		Field("foo").Default(1).
		Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	b := namedstruct.Define("T")
	step := b.Field("foo")
	step.Default(1)
	step.Factory(func() any { return 2 })
	if _, err := b.Build(); !namedstruct.HasCode(err, namedstruct.CodeInvalidField) {
		t.Fatalf("expected invalid_field for default+factory, got %v", err)
	}
}

func TestBuilder_RedeclarationReplacesInPlace(t *testing.T) {
	ty := namedstruct.Define("T").
		Field("foo").Default(1).
		Field("bar").
		Field("foo").Default(2).
		MustBuild()

	if diff := cmp.Diff([]string{"foo", "bar"}, ty.Schema().Names()); diff != "" {
		t.Fatalf("redeclaration must keep position (-want +got):\n%s", diff)
	}
	if !ty.MustNew().Equal(map[string]any{"foo": 2, "bar": nil}) {
		t.Fatalf("redeclaration must replace descriptor: %v", ty.MustNew())
	}
}

func TestBuilder_EmptyNameDefaults(t *testing.T) {
	if got := namedstruct.Define("").MustBuild().Name(); got != "NamedStruct" {
		t.Fatalf("expected default name, got %q", got)
	}
}

func TestSchema_Accessors(t *testing.T) {
	ty := namedstruct.Define("T").
		Field("foo").Default(1).
		Field("bar").
		MustBuild()
	sc := ty.Schema()

	if sc.Len() != 2 || !sc.Has("foo") || sc.Has("baz") {
		t.Fatalf("schema membership mismatch")
	}
	f, ok := sc.Field("foo")
	if !ok || f.Default != 1 {
		t.Fatalf("descriptor lookup mismatch: %v ok=%v", f, ok)
	}
	if diff := cmp.Diff([]string{"foo", "bar"}, sc.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
	// Fields returns copies; mutating them must not affect the schema
	fs := sc.Fields()
	fs[0].Default = 99
	if f2, _ := sc.Field("foo"); f2.Default != 1 {
		t.Fatalf("schema descriptor mutated through Fields copy")
	}
}
