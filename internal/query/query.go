// Package query parses the declarative query description and evaluates the
// compiled query against parsed JSON documents.
package query

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"jgrep/internal/jsonvalue"
	"jgrep/internal/matcher"
	"jgrep/internal/pointer"
)

// ErrQuery is the sentinel error for malformed query configuration. It
// allows consistent error checks using errors.Is().
var ErrQuery = errors.New("invalid query")

// Query is the top-level executable filter. Raw is the only variant today;
// the indirection leaves room for future variants without changing the
// resolver or matcher contracts. A Query is immutable after construction
// and safe to share across any number of line evaluations.
type Query struct {
	Raw *Pair
}

// Pair binds a location in the document to a condition.
type Pair struct {
	Pointer pointer.Pointer
	Cond    Condition
}

// All returns a query without a condition; it accepts any valid JSON line.
func All() *Query {
	return &Query{}
}

// Parse deserializes a query description. Any structural or type error
// fails the whole run before line processing starts, so callers treat a
// Parse failure as fatal.
func Parse(text string) (*Query, error) {
	var raw rawDocument
	if err := yaml.UnmarshalWithOptions([]byte(text), &raw, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return compile(&raw)
}

// Eval reports whether the document satisfies the query.
func (q *Query) Eval(doc jsonvalue.Value) (bool, error) {
	if q == nil || q.Raw == nil {
		return true, nil
	}
	target, err := q.Raw.Pointer.Resolve(doc)
	if err != nil {
		return false, err
	}
	return q.Raw.Cond.Eval(target)
}

func compile(raw *rawDocument) (*Query, error) {
	if raw.Query == nil {
		return nil, fmt.Errorf("%w: missing query", ErrQuery)
	}
	if raw.Query.Type != "raw" {
		return nil, fmt.Errorf("%w: unknown query type %q", ErrQuery, raw.Query.Type)
	}
	if raw.Query.Pair == nil {
		return nil, fmt.Errorf("%w: raw query requires a pair", ErrQuery)
	}
	cond, err := compileCond(raw.Query.Pair.Cond)
	if err != nil {
		return nil, err
	}
	return &Query{Raw: &Pair{
		Pointer: pointer.Parse(raw.Query.Pair.P),
		Cond:    cond,
	}}, nil
}

func compileCond(raw *rawCond) (Condition, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: pair requires a cond", ErrQuery)
	}
	if raw.Value == nil {
		return nil, fmt.Errorf("%w: cond %q requires a value", ErrQuery, raw.Type)
	}
	operand := raw.Value.value

	switch raw.Type {
	case "match":
		switch raw.MType {
		case "exact":
			return &Match{Type: MatchExact, Operand: operand}, nil
		case "regex":
			// Compile eagerly so a bad pattern aborts the run instead of
			// erroring on every line.
			if pattern, ok := operand.(jsonvalue.String); ok {
				if err := matcher.Compile(string(pattern)); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrQuery, err)
				}
			}
			return &Match{Type: MatchRegex, Operand: operand}, nil
		case "contain":
			return &Match{Type: MatchContain, Operand: operand}, nil
		default:
			return nil, fmt.Errorf("%w: unknown match type %q", ErrQuery, raw.MType)
		}
	case "eq":
		return &Match{Type: MatchExact, Operand: operand}, nil
	case "gt":
		return &GreaterThan{Operand: operand}, nil
	case "lt":
		return &LessThan{Operand: operand}, nil
	default:
		return nil, fmt.Errorf("%w: unknown condition type %q", ErrQuery, raw.Type)
	}
}
