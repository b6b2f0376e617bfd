package query

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"

	"jgrep/internal/jsonvalue"
)

// Wire shape of the declarative query description:
//
//	{"query":{"type":"raw","pair":{"p":"/s","cond":{"type":"match","mtype":"regex","value":{"type":"string","value":"[sS]irius"}}}}}
//
// The description is itself a JSON object; decoding goes through the YAML
// parser, which accepts the JSON form directly and allows YAML query files.

type rawDocument struct {
	Query *rawQueryCondition `yaml:"query"`
}

type rawQueryCondition struct {
	Type string   `yaml:"type"`
	Pair *rawPair `yaml:"pair"`
}

type rawPair struct {
	P    string   `yaml:"p"`
	Cond *rawCond `yaml:"cond"`
}

type rawCond struct {
	Type  string      `yaml:"type"`
	MType string      `yaml:"mtype"`
	Value *rawLiteral `yaml:"value"`
}

// rawLiteral is a typed literal such as {"type":"int","value":1}. It
// decodes directly into a jsonvalue.Value so conditions hold the same
// representation as parsed input lines.
type rawLiteral struct {
	value jsonvalue.Value
}

// UnmarshalYAML decodes the {"type":..., "value":...} shape. Unknown type
// tags and payloads of the wrong node type fail decoding.
func (l *rawLiteral) UnmarshalYAML(node ast.Node) error {
	pairs, err := mappingPairs(node)
	if err != nil {
		return fmt.Errorf("literal: %w", err)
	}

	var typeTag string
	var valueNode ast.Node
	for _, p := range pairs {
		key, ok := p.Key.(*ast.StringNode)
		if !ok {
			return errors.New("literal key must be a string")
		}
		switch key.Value {
		case "type":
			tagNode, ok := p.Value.(*ast.StringNode)
			if !ok {
				return errors.New("literal type must be a string")
			}
			typeTag = tagNode.Value
		case "value":
			valueNode = p.Value
		default:
			return fmt.Errorf("unsupported literal key %q: use 'type' and 'value'", key.Value)
		}
	}

	value, err := literalValue(typeTag, valueNode)
	if err != nil {
		return err
	}
	l.value = value
	return nil
}

func literalValue(typeTag string, node ast.Node) (jsonvalue.Value, error) {
	if typeTag == "" {
		return nil, errors.New("literal must specify a type")
	}
	if typeTag == "null" {
		if node != nil {
			if _, ok := node.(*ast.NullNode); !ok {
				return nil, fmt.Errorf("null literal must not carry a value, got %T", node)
			}
		}
		return jsonvalue.Null{}, nil
	}
	if node == nil {
		return nil, fmt.Errorf("%s literal requires a value", typeTag)
	}

	switch typeTag {
	case "bool":
		n, ok := node.(*ast.BoolNode)
		if !ok {
			return nil, fmt.Errorf("bool literal value must be a boolean, got %T", node)
		}
		return jsonvalue.Bool(n.Value), nil
	case "int":
		n, ok := node.(*ast.IntegerNode)
		if !ok {
			return nil, fmt.Errorf("int literal value must be an integer, got %T", node)
		}
		return integerValue(n)
	case "float":
		switch n := node.(type) {
		case *ast.FloatNode:
			return jsonvalue.Float(n.Value), nil
		case *ast.IntegerNode:
			// A whole number is a valid float literal.
			i, err := integerValue(n)
			if err != nil {
				return nil, err
			}
			return jsonvalue.Float(i.(jsonvalue.Int)), nil
		default:
			return nil, fmt.Errorf("float literal value must be a number, got %T", node)
		}
	case "string":
		n, ok := node.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("string literal value must be a string, got %T", node)
		}
		return jsonvalue.String(n.Value), nil
	case "array":
		if _, ok := node.(*ast.SequenceNode); !ok {
			return nil, fmt.Errorf("array literal value must be a sequence, got %T", node)
		}
		return nodeToValue(node)
	case "object":
		if _, err := mappingPairs(node); err != nil {
			return nil, fmt.Errorf("object literal value must be a mapping: %w", err)
		}
		return nodeToValue(node)
	default:
		return nil, fmt.Errorf("unknown literal type %q", typeTag)
	}
}

// nodeToValue converts an arbitrary YAML/JSON node into a jsonvalue.Value,
// preserving object member order.
func nodeToValue(node ast.Node) (jsonvalue.Value, error) {
	switch n := node.(type) {
	case *ast.NullNode:
		return jsonvalue.Null{}, nil
	case *ast.BoolNode:
		return jsonvalue.Bool(n.Value), nil
	case *ast.IntegerNode:
		return integerValue(n)
	case *ast.FloatNode:
		return jsonvalue.Float(n.Value), nil
	case *ast.StringNode:
		return jsonvalue.String(n.Value), nil
	case *ast.SequenceNode:
		arr := jsonvalue.Array{}
		for i, item := range n.Values {
			v, err := nodeToValue(item)
			if err != nil {
				return nil, fmt.Errorf("invalid value at index %d: %w", i, err)
			}
			arr = append(arr, v)
		}
		return arr, nil
	case *ast.MappingNode, *ast.MappingValueNode:
		pairs, err := mappingPairs(node)
		if err != nil {
			return nil, err
		}
		obj := jsonvalue.Object{}
		for _, p := range pairs {
			key, ok := p.Key.(*ast.StringNode)
			if !ok {
				return nil, errors.New("object key must be a string")
			}
			v, err := nodeToValue(p.Value)
			if err != nil {
				return nil, fmt.Errorf("invalid value for key %q: %w", key.Value, err)
			}
			obj = append(obj, jsonvalue.Member{Key: key.Value, Value: v})
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported node type: %T", node)
	}
}

// integerValue normalizes the parser's int64/uint64 representations.
func integerValue(n *ast.IntegerNode) (jsonvalue.Value, error) {
	switch v := n.Value.(type) {
	case int64:
		return jsonvalue.Int(v), nil
	case uint64:
		return jsonvalue.Int(int64(v)), nil
	default:
		return nil, fmt.Errorf("unexpected integer node value type: %T", n.Value)
	}
}

// mappingPairs returns the key/value entries of a mapping node. The parser
// represents single-entry mappings as a bare MappingValueNode.
func mappingPairs(node ast.Node) ([]*ast.MappingValueNode, error) {
	switch n := node.(type) {
	case *ast.MappingNode:
		return n.Values, nil
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}, nil
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", node)
	}
}
