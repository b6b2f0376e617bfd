// Package sorter reorders passing lines by values addressed with JSON
// pointers.
package sorter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"jgrep/internal/jsonvalue"
	"jgrep/internal/pointer"
)

// ErrSort is the sentinel error for malformed sort configuration.
var ErrSort = errors.New("invalid sort")

// Order is the direction of one sort key.
type Order int

const (
	Asc Order = iota
	Desc
)

// Key is one sort criterion: a pointer into each document and a direction.
type Key struct {
	Pointer pointer.Pointer
	Order   Order
}

// Wire shape: {"sort":[{"p":"/i","ord":"desc"}]}; ord defaults to asc.
type rawSort struct {
	Sort []rawKey `yaml:"sort"`
}

type rawKey struct {
	P   string `yaml:"p"`
	Ord string `yaml:"ord"`
}

// Parse deserializes a sort description. Like the query description, a
// malformed sort aborts the run before any line is processed.
func Parse(text string) (*Sorter, error) {
	var raw rawSort
	if err := yaml.UnmarshalWithOptions([]byte(text), &raw, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSort, err)
	}
	if len(raw.Sort) == 0 {
		return nil, fmt.Errorf("%w: no sort keys", ErrSort)
	}
	keys := make([]Key, 0, len(raw.Sort))
	for _, rk := range raw.Sort {
		var order Order
		switch rk.Ord {
		case "", "asc":
			order = Asc
		case "desc":
			order = Desc
		default:
			return nil, fmt.Errorf("%w: unknown order %q", ErrSort, rk.Ord)
		}
		keys = append(keys, Key{Pointer: pointer.Parse(rk.P), Order: order})
	}
	return New(keys...), nil
}

// Sorter buffers lines together with their extracted sort keys. Keys are
// immutable after construction; Add and Lines are not safe for concurrent
// use.
type Sorter struct {
	keys    []Key
	entries []entry
}

type entry struct {
	line string
	keys []jsonvalue.Value
}

// New returns a sorter over the given keys. Keys are applied as one stable
// pass each, in declaration order, so the last key ends up most
// significant and earlier keys break its ties.
func New(keys ...Key) *Sorter {
	return &Sorter{keys: keys}
}

// Add buffers one passing line. Sort keys are extracted immediately; the
// document itself is not retained. A pointer that does not resolve ranks
// the line as null for that key.
func (s *Sorter) Add(line string, doc jsonvalue.Value) {
	keys := make([]jsonvalue.Value, 0, len(s.keys))
	for _, k := range s.keys {
		v, err := k.Pointer.Resolve(doc)
		if err != nil {
			v = jsonvalue.Null{}
		}
		keys = append(keys, v)
	}
	s.entries = append(s.entries, entry{line: line, keys: keys})
}

// Lines returns the buffered lines in sorted order. Each key is one stable
// pass, so lines that tie on every key keep their input order.
func (s *Sorter) Lines() []string {
	for i, k := range s.keys {
		slices.SortStableFunc(s.entries, func(a, b entry) int {
			c := jsonvalue.Compare(a.keys[i], b.keys[i])
			if k.Order == Desc {
				c = -c
			}
			return c
		})
	}
	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		lines = append(lines, e.line)
	}
	return lines
}

// Len reports how many lines are buffered.
func (s *Sorter) Len() int { return len(s.entries) }
