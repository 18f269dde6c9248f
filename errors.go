package namedstruct

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TriOptima/named-struct/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Access-path violations.
	CodeUnknownField     = "unknown_field"     // key-style read/write of an undeclared name
	CodeUnknownAttribute = "unknown_attribute" // attribute-style read/write of an undeclared name
	CodeFrozenWrite      = "frozen_write"      // any write on a frozen instance

	// Construction-binding violations.
	CodeTooManyArgs    = "too_many_args"   // more positional values than declared fields
	CodeDuplicateField = "duplicate_field" // same field given positionally and by keyword
	CodeUnknownKeyword = "unknown_keyword" // keyword not present in the schema

	// Declaration-time violations.
	CodeBadFieldName         = "bad_field_name"        // name is not a valid field identifier
	CodeDuplicateDeclaration = "duplicate_declaration" // same name twice in one ad-hoc declaration
	CodeInvalidField         = "invalid_field"         // both a static default and a factory declared

	// Input decoding.
	CodeParseError = "parse_error"
)

// Issue represents a single schema violation.
type Issue struct {
	Type    string // Name of the struct type involved (for example: Point).
	Field   string // Offending field name; empty for type-level issues.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"max":2, "got":3})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of schema violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_keyword at Point.boink
		if it.Field != "" {
			fmt.Fprintf(b, "%s at %s.%s", it.Code, it.Type, it.Field)
		} else {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Type)
		}
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// issueAt creates an Issue for the given type/field with a localized message.
// This is a convenience helper to improve readability at call sites with many parameters.
func issueAt(typeName, field, code string, params map[string]any) Issue {
	var data map[string]string
	if len(params) > 0 {
		data = make(map[string]string, len(params))
		for k, v := range params {
			data[k] = fmt.Sprint(v)
		}
	}
	return Issue{Type: typeName, Field: field, Code: code, Message: i18n.T(code, data), Params: params}
}
