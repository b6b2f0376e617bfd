package query

import (
	"fmt"

	"jgrep/internal/jsonvalue"
	"jgrep/internal/matcher"
)

// Condition is the right-hand side of a comparison, evaluated against the
// value a pair's pointer resolved to.
type Condition interface {
	// Eval reports whether target satisfies the condition. Matching is
	// type-strict: incompatible operand/target types raise a *MatchError
	// instead of evaluating to false.
	Eval(target jsonvalue.Value) (bool, error)
	// String returns the canonical rendering of the condition, used as the
	// "by" field of diagnostics.
	String() string
}

// MatchType selects how a Match condition compares its operand with the
// target.
type MatchType int

const (
	// MatchExact requires structural equality with the operand.
	MatchExact MatchType = iota
	// MatchRegex treats the operand as a regular expression searched for
	// anywhere in a string target.
	MatchRegex
	// MatchContain treats the operand as a literal substring of a string
	// target.
	MatchContain
)

// String returns the matcher type name used in diagnostics.
func (t MatchType) String() string {
	switch t {
	case MatchExact:
		return "Exact"
	case MatchRegex:
		return "Regex"
	case MatchContain:
		return "Contain"
	default:
		return "Unknown"
	}
}

// MatchError reports a condition applied to a target of an incompatible
// type. By identifies the condition that failed; it becomes useful once
// queries can hold more than one condition.
type MatchError struct {
	MatcherType  string
	MatcherValue string
	Target       string
	By           string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("matcher type mismatch (matcher_type %q, matcher_value %s, target %s, by %s)",
		e.MatcherType, e.MatcherValue, e.Target, e.By)
}

// Match compares the target against a literal operand, either for
// structural equality or by pattern search.
type Match struct {
	Type    MatchType
	Operand jsonvalue.Value
}

func (c *Match) Eval(target jsonvalue.Value) (bool, error) {
	switch c.Type {
	case MatchRegex, MatchContain:
		pattern, ok := c.Operand.(jsonvalue.String)
		if !ok {
			return false, c.mismatch(target)
		}
		text, ok := target.(jsonvalue.String)
		if !ok {
			return false, c.mismatch(target)
		}
		kind := matcher.Regex
		if c.Type == MatchContain {
			kind = matcher.Contain
		}
		return matcher.New(kind, string(pattern)).Test(string(text))
	default: // MatchExact
		if c.Operand.Kind() != target.Kind() {
			return false, c.mismatch(target)
		}
		return jsonvalue.Equal(c.Operand, target), nil
	}
}

func (c *Match) String() string {
	return fmt.Sprintf("Match(%s, %s)", c.Type, c.Operand)
}

func (c *Match) mismatch(target jsonvalue.Value) *MatchError {
	return &MatchError{
		MatcherType:  c.Type.String(),
		MatcherValue: c.Operand.String(),
		Target:       target.String(),
		By:           c.String(),
	}
}

// GreaterThan matches when the target orders strictly after the operand.
// Defined for Bool (false < true), Int, Float and String targets of the
// same type tag as the operand.
type GreaterThan struct {
	Operand jsonvalue.Value
}

func (c *GreaterThan) Eval(target jsonvalue.Value) (bool, error) {
	after, comparable := ordersAfter(c.Operand, target)
	if !comparable {
		return false, &MatchError{
			MatcherType:  "GreaterThan",
			MatcherValue: c.Operand.String(),
			Target:       target.String(),
			By:           c.String(),
		}
	}
	return after, nil
}

func (c *GreaterThan) String() string {
	return fmt.Sprintf("GreaterThan(%s)", c.Operand)
}

// LessThan matches when the target orders strictly before the operand.
type LessThan struct {
	Operand jsonvalue.Value
}

func (c *LessThan) Eval(target jsonvalue.Value) (bool, error) {
	after, comparable := ordersAfter(target, c.Operand)
	if !comparable {
		return false, &MatchError{
			MatcherType:  "LessThan",
			MatcherValue: c.Operand.String(),
			Target:       target.String(),
			By:           c.String(),
		}
	}
	return after, nil
}

func (c *LessThan) String() string {
	return fmt.Sprintf("LessThan(%s)", c.Operand)
}

// ordersAfter reports whether right orders strictly after left. The second
// result is false when the values do not share an orderable type tag.
func ordersAfter(left, right jsonvalue.Value) (after, comparable bool) {
	switch l := left.(type) {
	case jsonvalue.Bool:
		if r, ok := right.(jsonvalue.Bool); ok {
			return !bool(l) && bool(r), true
		}
	case jsonvalue.Int:
		if r, ok := right.(jsonvalue.Int); ok {
			return r > l, true
		}
	case jsonvalue.Float:
		if r, ok := right.(jsonvalue.Float); ok {
			return r > l, true
		}
	case jsonvalue.String:
		if r, ok := right.(jsonvalue.String); ok {
			return r > l, true
		}
	}
	return false, false
}
