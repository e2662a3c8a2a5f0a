package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var exit = os.Exit

func main() {
	exit(fixtureMain(os.Stdout, os.Stderr))
}

// fixtureMain runs the checks in their fixed order and returns the process
// exit code: 0 if every check passed, 1 otherwise.
func fixtureMain(stdout, stderr io.Writer) int {
	r := newRunner(stdout, stderr)
	r.failures += r.checkAddition()
	r.failures += r.checkString()
	return r.finish()
}

// runner executes the hard-coded checks and counts how many of them failed.
//
// The expected values are fields rather than literals in the check bodies so
// that the failure paths stay reachable from the tests; newRunner sets them
// to the values the fixture ships with.
type runner struct {
	logger

	wantSum int    // the sum that checkAddition expects 2+2 to produce
	needle  string // the substring that checkString requires in the greeting

	failures int
}

func newRunner(stdout, stderr io.Writer) *runner {
	var r runner
	r.logger.init(stdout, stderr)
	r.wantSum = 4
	r.needle = "hello"
	return &r
}

// checkAddition returns 1 if the check failed, 0 otherwise.
//
// The diagnostic keeps the literal "expected 4" even if wantSum differs;
// the format string is part of the fixture's output contract.
func (r *runner) checkAddition() int {
	result := 2 + 2
	if result != r.wantSum {
		r.errf("FAIL: test_addition - expected 4, got %d", result)
		return 1
	}
	r.outf("PASS: test_addition")
	return 0
}

// checkString returns 1 if the check failed, 0 otherwise.
func (r *runner) checkString() int {
	const greeting = "hello from c"
	if !strings.Contains(greeting, r.needle) {
		r.errf("FAIL: test_string - expected 'hello' in string")
		return 1
	}
	r.outf("PASS: test_string")
	return 0
}

func (r *runner) finish() int {
	r.outf("")
	if r.failures > 0 {
		r.outf("%d test(s) failed", r.failures)
		return 1
	}
	r.outf("All tests passed!")
	return 0
}

// logger writes the result lines to the fixture's output streams.
type logger struct {
	stdout io.Writer
	stderr io.Writer
}

func (l *logger) init(stdout io.Writer, stderr io.Writer) {
	l.stdout = stdout
	l.stderr = stderr
}

func (l *logger) outf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(l.stdout, format+"\n", args...)
}

func (l *logger) errf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(l.stderr, format+"\n", args...)
}
