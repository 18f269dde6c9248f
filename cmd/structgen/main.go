package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gen "github.com/TriOptima/named-struct/internal/gen"
)

func main() {
	fs := flag.NewFlagSet("structgen", flag.ExitOnError)
	var typeName string
	var fieldsCSV string
	var pkg string
	var out string
	fs.StringVar(&typeName, "type", "", "name of the dynamic type to wrap")
	fs.StringVar(&fieldsCSV, "fields", "", "comma-separated field names in schema order")
	fs.StringVar(&pkg, "pkg", "main", "package name of the generated file")
	fs.StringVar(&out, "o", "", "output filename")
	_ = fs.Parse(os.Args[1:])
	if typeName == "" || fieldsCSV == "" || out == "" {
		usage()
		os.Exit(2)
	}

	code, err := gen.RenderFile(pkg, []gen.TypeDef{{Name: typeName, Fields: splitCSV(fieldsCSV)}})
	if err != nil {
		fatalf("generate: %v", err)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "structgen\n\nUsage:\n  structgen -type Point -fields x,y -pkg geo -o point_gen.go\n\nNotes:\n  - Generates a typed accessor wrapper delegating to the dynamic struct.")
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
