package conformance

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"minilang/eval"
	"minilang/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Output     string
	Error      error
}

// Runner executes conformance tests, each against a fresh evaluator
type Runner struct {
	maxDepth int
}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{maxDepth: types.DefaultMaxDepth}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	src := test.Test.Source()
	if src == "" {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: "no program/statement",
		}
	}

	depth := r.maxDepth
	if test.Test.MaxDepth > 0 {
		depth = test.Test.MaxDepth
	}

	var out bytes.Buffer
	ev := eval.New(eval.WithOutput(&out), eval.WithMaxDepth(depth))
	runErr := ev.LoadSource(src)
	if runErr == nil {
		runErr = ev.RunMain()
	}

	passed, err := r.checkExpectation(test.Test, out.String(), runErr)
	return TestResult{
		Test:   test,
		Passed: passed,
		Output: out.String(),
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation compares the printed output and the failure (if any)
// with what the test expects. Output is checked even when an error is
// expected: lines printed before the failure count.
func (r *Runner) checkExpectation(test TestCase, output string, runErr error) (bool, error) {
	expect := test.Expect

	if expect.Error != "" {
		want, ok := types.ErrorKindFromString(expect.Error)
		if !ok {
			return false, fmt.Errorf("unknown error kind: %s", expect.Error)
		}
		if runErr == nil {
			return false, fmt.Errorf("expected %s, program completed", want)
		}
		if got := types.KindOf(runErr); got != want {
			return false, fmt.Errorf("expected %s, got %v", want, runErr)
		}
	} else if runErr != nil {
		return false, fmt.Errorf("unexpected error: %v", runErr)
	}

	lines := splitLines(output)
	if expect.Output != nil {
		if len(lines) != len(expect.Output) {
			return false, fmt.Errorf("expected %d output lines %q, got %d %q",
				len(expect.Output), expect.Output, len(lines), lines)
		}
		for i := range lines {
			if lines[i] != expect.Output[i] {
				return false, fmt.Errorf("output line %d: expected %q, got %q", i+1, expect.Output[i], lines[i])
			}
		}
	}

	if expect.Match != "" {
		re, err := regexp.Compile(expect.Match)
		if err != nil {
			return false, fmt.Errorf("invalid match pattern: %w", err)
		}
		if !re.MatchString(output) {
			return false, fmt.Errorf("output %q does not match %s", output, expect.Match)
		}
	}

	return true, nil
}

// splitLines splits printed output into lines without the final newline
func splitLines(output string) []string {
	if output == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(output, "\n"), "\n")
}
