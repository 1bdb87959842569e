package matchers

import (
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// StartWith matches when actual begins with the expected elements, in order.
func StartWith[T comparable](actual []T, expected ...T) Result {
	description := "start with " + formatElements(expected)

	if len(expected) > len(actual) {
		return failed(description, "got %s which is shorter", formatElements(actual))
	}

	if !slices.Equal(actual[:len(expected)], expected) {
		return failed(description, "got %s", formatElements(actual))
	}

	return matched(description)
}

// EndWith matches when actual ends with the expected elements, in order.
func EndWith[T comparable](actual []T, expected ...T) Result {
	description := "end with " + formatElements(expected)

	if len(expected) > len(actual) {
		return failed(description, "got %s which is shorter", formatElements(actual))
	}

	if !slices.Equal(actual[len(actual)-len(expected):], expected) {
		return failed(description, "got %s", formatElements(actual))
	}

	return matched(description)
}

// ContainExactly matches when actual holds exactly the expected elements in the same order.
func ContainExactly[T comparable](actual []T, expected ...T) Result {
	description := "contain exactly " + formatElements(expected)

	if !slices.Equal(actual, expected) {
		return failed(description, "got %s", formatElements(actual))
	}

	return matched(description)
}

// MatchArray matches when actual holds the expected elements in any order.
// Multiplicity matters: ["a" "a"] does not match ["a"].
func MatchArray[T comparable](actual []T, expected ...T) Result {
	description := "match array " + formatElements(expected)

	if !maps.Equal(lo.CountValues(actual), lo.CountValues(expected)) {
		missing, extra := lo.Difference(expected, actual)
		if len(missing) == 0 && len(extra) == 0 {
			return failed(description, "got %s with different element counts", formatElements(actual))
		}

		return failed(description, "got %s, missing %s, extra %s",
			formatElements(actual), formatElements(missing), formatElements(extra))
	}

	return matched(description)
}

// Include matches when every expected element is present in actual, regardless of position.
func Include[T comparable](actual []T, expected ...T) Result {
	description := "include " + formatElements(expected)

	missing := lo.Filter(expected, func(e T, _ int) bool {
		return !lo.Contains(actual, e)
	})

	if len(missing) > 0 {
		return failed(description, "%s is missing %s", formatElements(actual), formatElements(missing))
	}

	return matched(description)
}

// BeEmpty matches when actual has no elements.
func BeEmpty[T any](actual []T) Result {
	description := "be empty"

	if len(actual) > 0 {
		return failed(description, "got %d elements", len(actual))
	}

	return matched(description)
}

// HaveLength matches when actual has exactly n elements.
func HaveLength[T any](actual []T, n int) Result {
	description := fmt.Sprintf("have length %d", n)

	if len(actual) != n {
		return failed(description, "got length %d", len(actual))
	}

	return matched(description)
}

// AllSatisfy matches when every element of actual satisfies the predicate.
// An empty actual always matches.
func AllSatisfy[T any](actual []T, description string, predicate func(T) bool) Result {
	description = "all satisfy " + description

	_, index, found := lo.FindIndexOf(actual, func(e T) bool {
		return !predicate(e)
	})

	if found {
		return failed(description, "element %d (%#v) does not", index, actual[index])
	}

	return matched(description)
}
