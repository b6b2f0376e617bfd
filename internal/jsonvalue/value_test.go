package jsonvalue

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRendering(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "null", value: Null{}, want: "Null"},
		{name: "bool", value: Bool(true), want: "Bool(true)"},
		{name: "int", value: Int(1), want: "Int(1)"},
		{name: "float", value: Float(1.2), want: "Float(1.2)"},
		{name: "string", value: String("[sS]irius"), want: "String([sS]irius)"},
		{name: "array", value: Array{Int(1), String("a")}, want: `Array([1,"a"])`},
		{name: "object", value: Object{{Key: "a", Value: Array{}}}, want: `Object({"a":[]})`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestJSONRendering(t *testing.T) {
	v := Object{
		{Key: "s", Value: String(`say "hi"`)},
		{Key: "n", Value: Null{}},
		{Key: "a", Value: Array{Bool(false), Float(0.5)}},
	}
	assert.Equal(t, `{"s":"say \"hi\"","n":null,"a":[false,0.5]}`, JSON(v))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "null", a: Null{}, b: Null{}, want: true},
		{name: "bool", a: Bool(true), b: Bool(true), want: true},
		{name: "bool diff", a: Bool(true), b: Bool(false), want: false},
		{name: "int", a: Int(1), b: Int(1), want: true},
		{name: "int diff", a: Int(1), b: Int(2), want: false},
		{name: "string", a: String("black"), b: String("black"), want: true},
		{name: "string diff", a: String("black"), b: String("white"), want: false},
		{name: "no numeric coercion", a: Int(1), b: Float(1), want: false},
		{name: "no string coercion", a: Int(1), b: String("1"), want: false},
		{name: "array", a: Array{Int(1), Int(2)}, b: Array{Int(1), Int(2)}, want: true},
		{name: "array order sensitive", a: Array{Int(1), Int(2)}, b: Array{Int(2), Int(1)}, want: false},
		{name: "array length", a: Array{Int(1)}, b: Array{Int(1), Int(2)}, want: false},
		{
			name: "object key order independent",
			a:    Object{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}},
			b:    Object{{Key: "b", Value: Int(2)}, {Key: "a", Value: Int(1)}},
			want: true,
		},
		{
			name: "object value diff",
			a:    Object{{Key: "a", Value: Int(1)}},
			b:    Object{{Key: "a", Value: Int(2)}},
			want: false,
		},
		{
			name: "object key diff",
			a:    Object{{Key: "a", Value: Int(1)}},
			b:    Object{{Key: "b", Value: Int(1)}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestCompareTypeOrder(t *testing.T) {
	// null < array < object < bool < number < string
	ordered := []Value{
		Null{},
		Array{Null{}},
		Object{{Key: "x", Value: Null{}}},
		Bool(true),
		Int(1),
		String("moon"),
	}
	for i := 0; i < len(ordered); i++ {
		for j := 0; j < len(ordered); j++ {
			got := Compare(ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Negative(t, got, "%s vs %s", ordered[i], ordered[j])
			case i > j:
				assert.Positive(t, got, "%s vs %s", ordered[i], ordered[j])
			}
		}
	}
}

func TestCompareWithinType(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{name: "bools", a: Bool(false), b: Bool(true), want: -1},
		{name: "bools equal", a: Bool(true), b: Bool(true), want: 0},
		{name: "ints", a: Int(2), b: Int(3), want: -1},
		{name: "int and float mix", a: Float(1.2), b: Int(2), want: -1},
		{name: "floats equal", a: Float(1.5), b: Float(1.5), want: 0},
		{name: "strings", a: String("harbinger"), b: String("moon"), want: -1},
		{name: "arrays tie", a: Array{Int(9)}, b: Array{}, want: 0},
		{name: "objects tie", a: Object{{Key: "z", Value: Int(9)}}, b: Object{}, want: 0},
		{name: "nulls tie", a: Null{}, b: Null{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(Compare(tt.a, tt.b)))
			assert.Equal(t, -tt.want, sign(Compare(tt.b, tt.a)))
		})
	}
}

func TestCompareSortsMixedValues(t *testing.T) {
	// Mirror of the type-order property expressed as an actual sort.
	values := []Value{
		Int(1),
		Bool(true),
		Object{{Key: "x", Value: Null{}}},
		String("moon"),
		Array{Null{}},
		Null{},
	}
	indexes := []int{0, 1, 2, 3, 4, 5}
	sort.SliceStable(indexes, func(i, j int) bool {
		return Compare(values[indexes[i]], values[indexes[j]]) < 0
	})
	require.Equal(t, []int{5, 4, 2, 1, 0, 3}, indexes)
}

func TestObjectGet(t *testing.T) {
	obj := Object{
		{Key: "a", Value: Int(1)},
		{Key: "b", Value: Int(2)},
		{Key: "a", Value: Int(3)},
	}

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(1), v, "first occurrence wins")

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
