package gen

import (
	"strings"
	"testing"
)

func TestRenderFile_Accessors(t *testing.T) {
	src, err := RenderFile("geo", []TypeDef{{Name: "Point", Fields: []string{"x", "line_width"}}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	code := string(src)
	for _, want := range []string{
		"package geo",
		"type PointView struct",
		`func (v PointView) X() (any, error) { return v.S.Attr("x") }`,
		`func (v PointView) SetX(value any) error { return v.S.SetAttr("x", value) }`,
		`func (v PointView) LineWidth() (any, error) { return v.S.Attr("line_width") }`,
	} {
		if !strings.Contains(code, want) {
			t.Fatalf("generated code missing %q:\n%s", want, code)
		}
	}
}

func TestRenderFile_EmptyPackageDefaultsToMain(t *testing.T) {
	src, err := RenderFile("", []TypeDef{{Name: "T", Fields: []string{"a"}}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(string(src), "package main") {
		t.Fatalf("expected package main, got:\n%s", src)
	}
}

func TestRenderFile_RejectsEmptyTypeName(t *testing.T) {
	if _, err := RenderFile("geo", []TypeDef{{Name: ""}}); err == nil {
		t.Fatalf("expected error for empty type name")
	}
}
