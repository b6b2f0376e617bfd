// Package exit carries a terminal outcome decided during setup (help
// output or a configuration failure) from config and runner construction
// to main, so nothing below main calls os.Exit.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Result is a decided process outcome: what to print, where, and the exit
// code that follows.
type Result struct {
	output   io.Writer
	exitCode int
	message  string
}

// Code returns the process exit code.
func (r *Result) Code() int { return r.exitCode }

// Message returns the text printed before exiting.
func (r *Result) Message() string { return r.message }

// Print writes the message to its destination: stdout for help, stderr
// for failures.
func (r *Result) Print() {
	fmt.Fprint(r.output, r.message)
}

// Help returns a zero-code result that prints text to stdout.
func Help(text string) *Result {
	return &Result{output: os.Stdout, exitCode: 0, message: text}
}

// Failf returns a code-1 result that prints a formatted message to stderr.
func Failf(format string, a ...any) *Result {
	return &Result{output: os.Stderr, exitCode: 1, message: fmt.Sprintf(format, a...)}
}
