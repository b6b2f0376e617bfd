// Package evaluator turns one input line into a pass/fail/error outcome.
package evaluator

import (
	"fmt"

	"jgrep/internal/jsonvalue"
	"jgrep/internal/query"
)

// Status is the per-line verdict.
type Status int

const (
	// StatusPass means the line satisfies the query and is forwarded.
	StatusPass Status = iota
	// StatusFail means the line is valid but does not satisfy the query.
	StatusFail
	// StatusError means the line could not be evaluated; Diagnostic says why.
	StatusError
)

// Outcome is the result of evaluating one line.
type Outcome struct {
	Status     Status
	Diagnostic string
}

// Evaluate runs one line through parse, pointer resolution and condition
// matching. Every failure is converted into a StatusError outcome whose
// diagnostic embeds the 1-based line number; evaluation never aborts the
// stream. The parsed document does not outlive the call.
func Evaluate(q *query.Query, lineNumber int, line string) Outcome {
	doc, err := jsonvalue.Decode(line)
	if err != nil {
		return errorOutcome(lineNumber, err)
	}
	ok, err := q.Eval(doc)
	if err != nil {
		return errorOutcome(lineNumber, err)
	}
	if ok {
		return Outcome{Status: StatusPass}
	}
	return Outcome{Status: StatusFail}
}

func errorOutcome(lineNumber int, err error) Outcome {
	return Outcome{
		Status:     StatusError,
		Diagnostic: fmt.Sprintf("line %d: %v", lineNumber, err),
	}
}
