package matchers

import (
	"fmt"
	"strings"
)

// Result represents the outcome of a matcher.
//
// A Result should only be constructed by the matchers of this package.
type Result struct {
	matched     bool
	description string
	failure     string
}

func matched(description string) Result {
	return Result{matched: true, description: description}
}

func failed(description string, format string, args ...any) Result {
	return Result{matched: false, description: description, failure: fmt.Sprintf(format, args...)}
}

// Matched returns true if the actual value satisfied the matcher.
func (r Result) Matched() bool {
	return r.matched
}

// Description returns what the matcher expected, e.g. `start with ["a" "b"]`.
func (r Result) Description() string {
	return r.description
}

// FailureMessage explains why the matcher did not match. It is empty for a matched Result.
func (r Result) FailureMessage() string {
	if r.matched {
		return ""
	}

	return "expected to " + r.description + ", but " + r.failure
}

// Negate returns a Result which matches exactly when r does not.
func (r Result) Negate() Result {
	if r.matched {
		return Result{
			matched:     false,
			description: "not " + r.description,
			failure:     "it did",
		}
	}

	return Result{matched: true, description: "not " + r.description}
}

func formatElements[T any](elements []T) string {
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		parts = append(parts, fmt.Sprintf("%#v", e))
	}

	return "[" + strings.Join(parts, " ") + "]"
}
