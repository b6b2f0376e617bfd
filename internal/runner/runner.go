// Package runner drives the line-at-a-time filtering loop.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"jgrep/internal/config"
	"jgrep/internal/evaluator"
	"jgrep/internal/exit"
	"jgrep/internal/jsonvalue"
	"jgrep/internal/query"
	"jgrep/internal/ratelimit"
	"jgrep/internal/sorter"
)

// maxLineSize bounds a single input line. Log lines well beyond the bufio
// default show up in practice.
const maxLineSize = 16 * 1024 * 1024

// Runner streams lines from In through the evaluator. Passing lines go to
// Out (or are buffered for sorting), diagnostics go to Err.
type Runner struct {
	query   *query.Query
	sorter  *sorter.Sorter
	limiter *ratelimit.Limiter

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// New creates a Runner from the provided configuration, loading and parsing
// the query and sort descriptions. A description that fails to parse is
// fatal: no line is processed.
func New(cfg *config.Config) (*Runner, *exit.Result) {
	q := query.All()
	if text, err := configText(cfg.RawQuery, cfg.QueryFile); err != nil {
		return nil, exit.Failf("Error: %v\n", err)
	} else if text != "" {
		parsed, err := query.Parse(text)
		if err != nil {
			return nil, exit.Failf("Error: %v\n", err)
		}
		q = parsed
	}

	var s *sorter.Sorter
	if text, err := configText(cfg.RawSort, cfg.SortFile); err != nil {
		return nil, exit.Failf("Error: %v\n", err)
	} else if text != "" {
		parsed, err := sorter.Parse(text)
		if err != nil {
			return nil, exit.Failf("Error: %v\n", err)
		}
		s = parsed
	}

	return &Runner{
		query:   q,
		sorter:  s,
		limiter: ratelimit.New(cfg.RateLimit),
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}, nil
}

// configText returns the inline text or the file contents, whichever is
// configured. Exclusivity was already validated by config.
func configText(raw, file string) (string, error) {
	if raw != "" {
		return raw, nil
	}
	if file == "" {
		return "", nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Run processes In to EOF and returns the process exit code. Per-line
// failures are reported and skipped; only stream read errors and
// cancellation make the exit code non-zero.
func (r *Runner) Run(ctx context.Context) int {
	sc := bufio.NewScanner(r.In)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	cancelled := false
	lineNumber := 0
	for sc.Scan() {
		lineNumber++
		if err := r.limiter.Wait(ctx); err != nil {
			cancelled = true
			break
		}

		line := sc.Text()
		outcome := evaluator.Evaluate(r.query, lineNumber, line)
		switch outcome.Status {
		case evaluator.StatusPass:
			r.emit(line)
		case evaluator.StatusError:
			fmt.Fprintln(r.Err, outcome.Diagnostic)
		}
	}

	// Buffered lines are flushed even on early cancellation.
	if r.sorter != nil {
		for _, line := range r.sorter.Lines() {
			fmt.Fprintln(r.Out, line)
		}
	}

	if err := sc.Err(); err != nil {
		fmt.Fprintf(r.Err, "read input: %v\n", err)
		return 1
	}
	if cancelled {
		return 1
	}
	return 0
}

func (r *Runner) emit(line string) {
	if r.sorter == nil {
		fmt.Fprintln(r.Out, line)
		return
	}
	// The line passed, so it is known-valid JSON; decode again for key
	// extraction rather than letting documents outlive their evaluation.
	doc, err := jsonvalue.Decode(line)
	if err != nil {
		return
	}
	r.sorter.Add(line, doc)
}
