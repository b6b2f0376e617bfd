// Package jsonvalue models a parsed JSON document as a closed tagged union.
//
// Objects preserve member insertion order so diagnostics can render a
// document exactly as it appeared on the input line.
package jsonvalue

import (
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
)

// Kind identifies the type tag of a Value. The declaration order fixes the
// total order used when sorting values of different types:
// Null < Array < Object < Bool < Number < String, where Int and Float share
// the Number rank.
type Kind int

const (
	KindNull Kind = iota
	KindArray
	KindObject
	KindBool
	KindInt
	KindFloat
	KindString
)

// String returns the canonical type tag name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	default:
		return "Unknown"
	}
}

// rank collapses Int and Float into a single Number rank for ordering.
func (k Kind) rank() int {
	switch k {
	case KindFloat:
		return int(KindInt)
	case KindString:
		return int(KindFloat)
	default:
		return int(k)
	}
}

// Value is a single parsed JSON value. The implementations are exactly
// Null, Bool, Int, Float, String, Array and Object; the set is closed so
// type switches over Value can be exhaustive.
//
// Values are never mutated after construction.
type Value interface {
	Kind() Kind
	// String returns the canonical debug rendering, e.g. Int(1) or
	// String([sS]irius). All diagnostics render values through it.
	String() string

	appendJSON(dst []byte) []byte
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Int is a JSON number that fits an int64 without a fractional part.
type Int int64

// Float is any other JSON number.
type Float float64

// String is a JSON string.
type String string

// Array is a JSON array.
type Array []Value

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object with members in insertion order.
type Object []Member

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) String() string     { return "Null" }
func (v Bool) String() string   { return "Bool(" + strconv.FormatBool(bool(v)) + ")" }
func (v Int) String() string    { return "Int(" + strconv.FormatInt(int64(v), 10) + ")" }
func (v Float) String() string  { return "Float(" + strconv.FormatFloat(float64(v), 'g', -1, 64) + ")" }
func (v String) String() string { return "String(" + string(v) + ")" }
func (v Array) String() string  { return "Array(" + JSON(v) + ")" }
func (v Object) String() string { return "Object(" + JSON(v) + ")" }

// Get returns the value of the first member with the given key.
func (v Object) Get(key string) (Value, bool) {
	for _, m := range v {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// JSON returns the compact JSON rendering of v, preserving object member
// order.
func JSON(v Value) string {
	return string(v.appendJSON(nil))
}

func (Null) appendJSON(dst []byte) []byte {
	return append(dst, "null"...)
}

func (v Bool) appendJSON(dst []byte) []byte {
	return strconv.AppendBool(dst, bool(v))
}

func (v Int) appendJSON(dst []byte) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

func (v Float) appendJSON(dst []byte) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 64)
}

func (v String) appendJSON(dst []byte) []byte {
	dst, _ = jsontext.AppendQuote(dst, string(v))
	return dst
}

func (v Array) appendJSON(dst []byte) []byte {
	dst = append(dst, '[')
	for i, elem := range v {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = elem.appendJSON(dst)
	}
	return append(dst, ']')
}

func (v Object) appendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	for i, m := range v {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst, _ = jsontext.AppendQuote(dst, m.Key)
		dst = append(dst, ':')
		dst = m.Value.appendJSON(dst)
	}
	return append(dst, '}')
}

// Equal reports whether a and b are structurally equal: same type tag and
// same value. Arrays compare element-wise in order; objects compare by key
// set and per-key value, independent of insertion order. There is no
// numeric coercion: Int(1) never equals Float(1).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y, ok := b.(Object)
		if !ok || len(x) != len(y) {
			return false
		}
		for _, m := range x {
			other, found := y.Get(m.Key)
			if !found || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders a and b for sorting. Values of different ranks order as
// Null < Array < Object < Bool < Number < String. Within a rank, booleans
// order false before true, numbers numerically (Int and Float mixed) and
// strings lexicographically; arrays and objects tie regardless of their
// contents.
func Compare(a, b Value) int {
	ra, rb := a.Kind().rank(), b.Kind().rank()
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case Bool:
		y := b.(Bool)
		switch {
		case x == y:
			return 0
		case !bool(x):
			return -1
		default:
			return 1
		}
	case Int, Float:
		fa, fb := toFloat(a), toFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case String:
		y := b.(String)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	default:
		// Null, Array and Object tie within their rank.
		return 0
	}
}

func toFloat(v Value) float64 {
	switch n := v.(type) {
	case Int:
		return float64(n)
	case Float:
		return float64(n)
	default:
		return 0
	}
}
