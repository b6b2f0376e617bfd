// Package config parses the jgrep command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"jgrep/internal/exit"
)

var (
	ErrNoArguments    = errors.New("no arguments provided")
	ErrExclusiveQuery = errors.New("raw-query and query-file are exclusive")
	ErrExclusiveSort  = errors.New("raw-sort and sort-file are exclusive")
)

// Config represents the complete configuration for the jgrep tool.
type Config struct {
	// Query selection; at most one is set. Both empty means every valid
	// JSON line passes.
	RawQuery  string
	QueryFile string

	// Output ordering; at most one is set. Both empty means lines are
	// emitted as they pass.
	RawSort  string
	SortFile string

	// RateLimit is the maximum number of lines processed per second
	// (0 = unlimited).
	RateLimit float64
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.RawQuery != "" && c.QueryFile != "" {
		return ErrExclusiveQuery
	}
	if c.RawSort != "" && c.SortFile != "" {
		return ErrExclusiveSort
	}
	if c.QueryFile != "" {
		if _, err := os.Stat(c.QueryFile); err != nil {
			return fmt.Errorf("query file %s not found: %w", c.QueryFile, err)
		}
	}
	if c.SortFile != "" {
		if _, err := os.Stat(c.SortFile); err != nil {
			return fmt.Errorf("sort file %s not found: %w", c.SortFile, err)
		}
	}
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Failf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Usage and errors are handled here, not by the flag package.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	cfg := &Config{}
	fs.StringVar(&cfg.RawQuery, "raw-query", "", "Query description on the command line")
	fs.StringVar(&cfg.RawQuery, "r", "", "Shorthand for -raw-query")
	fs.StringVar(&cfg.QueryFile, "query-file", "", "Path to a file containing the query description")
	fs.StringVar(&cfg.QueryFile, "q", "", "Shorthand for -query-file")
	fs.StringVar(&cfg.RawSort, "raw-sort", "", "Sort description on the command line")
	fs.StringVar(&cfg.RawSort, "k", "", "Shorthand for -raw-sort")
	fs.StringVar(&cfg.SortFile, "sort-file", "", "Path to a file containing the sort description")
	fs.StringVar(&cfg.SortFile, "s", "", "Shorthand for -sort-file")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", 0, "Rate limit in lines per second (0 for unlimited)")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Help(Usage())
		}
		return nil, exit.Failf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	if args := fs.Args(); len(args) > 0 {
		return nil, exit.Failf("Error: unexpected argument %q (jgrep reads stdin)\n\n%s", args[0], Usage())
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Failf("Error: %v\n\n%s", err, Usage())
	}

	return cfg, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jgrep - grep newline-delimited JSON from stdin by structural query

Usage: jgrep [options] < input.jsonl

Options:
  -r, --raw-query QUERY   Query description on the command line
  -q, --query-file FILE   Path to a file containing the query description
  -k, --raw-sort SORT     Sort description on the command line
  -s, --sort-file FILE    Path to a file containing the sort description
      --rate-limit N      Rate limit in lines per second (0 for unlimited)
  -h, --help              Show this help message

A query selects a value inside each JSON line with a pointer and tests it
against a condition. Lines that satisfy the query are written to stdout
unchanged; lines that fail are dropped; lines that cannot be evaluated
produce a "line N: ..." diagnostic on stderr and processing continues.

Example query (match /s against the regex [sS]irius):

  {"query":{"type":"raw","pair":{"p":"/s","cond":{"type":"match","mtype":"regex","value":{"type":"string","value":"[sS]irius"}}}}}

Example sort (order passing lines by /i, descending):

  {"sort":[{"p":"/i","ord":"desc"}]}

Examples:
  jgrep -r '{"query":...}' < app.jsonl        # filter on the command line
  jgrep -q query.json < app.jsonl             # filter with a query file
  jgrep -q query.json -k '{"sort":[{"p":"/i"}]}' < app.jsonl
  jgrep -q query.json --rate-limit 100 < app.jsonl`
}
