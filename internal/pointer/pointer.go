// Package pointer resolves RFC 6901-style JSON pointers against a parsed
// document.
package pointer

import (
	"fmt"
	"strconv"
	"strings"

	"jgrep/internal/jsonvalue"
)

// unescaper rewrites the RFC 6901 escapes: "~1" -> "/" and "~0" -> "~".
// A single left-to-right pass keeps "~01" unescaping to "~1".
var unescaper = strings.NewReplacer("~1", "/", "~0", "~")

// Pointer is a parsed path expression addressing a location inside a JSON
// document. The empty expression and "/" both address the document root.
//
// Parsing never fails: a malformed expression produces a Pointer whose
// Resolve always reports an Error, so malformed pointers surface as
// per-line diagnostics like any other failed navigation.
type Pointer struct {
	text     string
	segments []string
	invalid  bool
}

// Parse splits expr into unescaped segments.
func Parse(expr string) Pointer {
	p := Pointer{text: expr}
	switch {
	case expr == "" || expr == "/":
		// root
	case !strings.HasPrefix(expr, "/"):
		p.invalid = true
	default:
		for _, seg := range strings.Split(expr[1:], "/") {
			p.segments = append(p.segments, unescaper.Replace(seg))
		}
	}
	return p
}

// Text returns the original path expression.
func (p Pointer) Text() string { return p.text }

// IsRoot reports whether the pointer addresses the document root.
func (p Pointer) IsRoot() bool { return !p.invalid && len(p.segments) == 0 }

// Resolve walks root segment by segment: objects are indexed by key,
// arrays by non-negative base-10 index, and scalars have no children. It
// returns the addressed sub-value, which shares the lifetime of root.
func (p Pointer) Resolve(root jsonvalue.Value) (jsonvalue.Value, error) {
	if p.invalid {
		return nil, &Error{Pointer: p.text, Value: root}
	}
	current := root
	for _, seg := range p.segments {
		switch v := current.(type) {
		case jsonvalue.Object:
			next, ok := v.Get(seg)
			if !ok {
				return nil, &Error{Pointer: p.text, Value: root}
			}
			current = next
		case jsonvalue.Array:
			idx, err := strconv.ParseUint(seg, 10, 63)
			if err != nil || idx >= uint64(len(v)) {
				return nil, &Error{Pointer: p.text, Value: root}
			}
			current = v[idx]
		default:
			return nil, &Error{Pointer: p.text, Value: root}
		}
	}
	return current, nil
}

// Error reports a pointer that does not resolve against a document, either
// because the expression is malformed or because a navigation step failed.
type Error struct {
	Pointer string
	Value   jsonvalue.Value // the document being navigated
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid pointer (pointer: %q, value: %q)", e.Pointer, jsonvalue.JSON(e.Value))
}
