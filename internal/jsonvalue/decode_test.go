package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{name: "null", input: `null`, want: Null{}},
		{name: "true", input: `true`, want: Bool(true)},
		{name: "false", input: `false`, want: Bool(false)},
		{name: "int", input: `42`, want: Int(42)},
		{name: "negative int", input: `-7`, want: Int(-7)},
		{name: "zero", input: `0`, want: Int(0)},
		{name: "float", input: `1.25`, want: Float(1.25)},
		{name: "exponent is float", input: `1e3`, want: Float(1000)},
		{name: "negative float", input: `-0.5`, want: Float(-0.5)},
		{name: "string", input: `"sirius"`, want: String("sirius")},
		{name: "escaped string", input: `"a\"b"`, want: String(`a"b`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeIntOverflowBecomesFloat(t *testing.T) {
	got, err := Decode(`9223372036854775808`) // max int64 + 1
	require.NoError(t, err)
	assert.Equal(t, KindFloat, got.Kind())
}

func TestDecodeContainers(t *testing.T) {
	got, err := Decode(`{"s":"Sirius","i":0,"a":[1,2.5,null],"o":{"x":true}}`)
	require.NoError(t, err)

	obj, ok := got.(Object)
	require.True(t, ok)
	require.Len(t, obj, 4)

	assert.Equal(t, "s", obj[0].Key)
	assert.Equal(t, String("Sirius"), obj[0].Value)
	assert.Equal(t, "i", obj[1].Key)
	assert.Equal(t, Int(0), obj[1].Value)
	assert.Equal(t, Array{Int(1), Float(2.5), Null{}}, obj[2].Value)
	assert.Equal(t, Object{{Key: "x", Value: Bool(true)}}, obj[3].Value)
}

func TestDecodeEmptyContainers(t *testing.T) {
	got, err := Decode(`{"a":[],"o":{}}`)
	require.NoError(t, err)
	assert.Equal(t, Object{
		{Key: "a", Value: Array{}},
		{Key: "o", Value: Object{}},
	}, got)
}

func TestDecodeDuplicateKeys(t *testing.T) {
	got, err := Decode(`{"a":1,"a":2}`)
	require.NoError(t, err)

	obj, ok := got.(Object)
	require.True(t, ok)
	require.Len(t, obj, 2)

	// Both members are kept; lookups resolve to the first occurrence.
	v, found := obj.Get("a")
	require.True(t, found)
	assert.Equal(t, Int(1), v)
}

func TestDecodePreservesMemberOrder(t *testing.T) {
	got, err := Decode(`{"b":1,"a":2,"c":3}`)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2,"c":3}`, JSON(got))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: `not json`},
		{name: "empty", input: ``},
		{name: "truncated object", input: `{"a":`},
		{name: "truncated array", input: `[1,`},
		{name: "bare word", input: `sirius`},
		{name: "trailing data", input: `{"a":1} extra`},
		{name: "two documents", input: `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestDecodeIsOwnedPerCall(t *testing.T) {
	// Two decodes of the same text never share structure.
	first, err := Decode(`{"a":[1]}`)
	require.NoError(t, err)
	second, err := Decode(`{"a":[1]}`)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, Equal(first, second))
}
