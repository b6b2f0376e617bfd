package jsonvalue

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// Decode parses one line of text as a single JSON document. Numbers that
// are whole and fit an int64 decode as Int, everything else as Float.
// Decoder errors are returned as-is; any positions they mention refer to
// the line text itself, not the surrounding stream.
func Decode(text string) (Value, error) {
	// Duplicate names are legal input; Object.Get resolves them to the
	// first occurrence.
	dec := jsontext.NewDecoder(strings.NewReader(text), jsontext.AllowDuplicateNames(true))
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *jsontext.Decoder) (Value, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		switch tok.Kind() {
		case 'n':
			return Null{}, nil
		case 't', 'f':
			return Bool(tok.Bool()), nil
		case '"':
			return String(tok.String()), nil
		case '0':
			return decodeNumber(tok), nil
		default:
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
	}
}

// decodeNumber keeps the Int/Float distinction from the literal: integer
// literals that fit an int64 become Int, anything with a fraction or
// exponent (or out of int64 range) becomes Float.
func decodeNumber(tok jsontext.Token) Value {
	raw := tok.String()
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Int(i)
		}
	}
	return Float(tok.Float())
}

func decodeObject(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, err
	}
	obj := Object{}
	for dec.PeekKind() != '}' {
		key, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		// The token is voided by the next decoder call; take the key now.
		name := key.String()
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: name, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, err
	}
	arr := Array{}
	for dec.PeekKind() != ']' {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, err
	}
	return arr, nil
}
