// Package matcher tests strings against substring and regular expression
// patterns.
package matcher

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Kind selects the matching strategy.
type Kind int

const (
	// Contain matches when the pattern occurs anywhere in the target.
	Contain Kind = iota
	// Regex matches when the pattern, as a regular expression, finds a
	// match anywhere in the target (unanchored).
	Regex
)

// String returns the matcher type name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Contain:
		return "Contain"
	case Regex:
		return "Regex"
	default:
		return "Unknown"
	}
}

// Matcher is a pattern bound to a matching strategy.
type Matcher struct {
	kind    Kind
	pattern string
}

// New returns a matcher for the given kind and pattern.
func New(kind Kind, pattern string) Matcher {
	return Matcher{kind: kind, pattern: pattern}
}

// Test reports whether s matches the pattern. Regex patterns are compiled
// once per process and reused across lines.
func (m Matcher) Test(s string) (bool, error) {
	switch m.kind {
	case Contain:
		return strings.Contains(s, m.pattern), nil
	case Regex:
		re, err := compiler.compile(m.pattern)
		if err != nil {
			return false, fmt.Errorf("invalid regex %q: %w", m.pattern, err)
		}
		return re.MatchString(s), nil
	default:
		return false, fmt.Errorf("unknown matcher kind %d", m.kind)
	}
}

// Compile eagerly compiles a regex pattern into the process-wide cache so
// configuration errors surface before any line is processed.
func Compile(pattern string) error {
	_, err := compiler.compile(pattern)
	return err
}

var compiler = &regexCache{patterns: make(map[string]*regexp.Regexp)}

// regexCache memoizes compiled patterns. One query evaluates the same
// pattern against every input line, so the cache is hit on all but the
// first line.
type regexCache struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
}

func (c *regexCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	if re, ok := c.patterns[pattern]; ok {
		c.mu.RUnlock()
		return re, nil
	}
	c.mu.RUnlock()

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.patterns[pattern] = re
	c.mu.Unlock()
	return re, nil
}
