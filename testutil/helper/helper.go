// Package helper bridges matcher results into testify assertions.
package helper

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-matchers-go/library/matchers"
)

type tHelper interface {
	Helper()
}

// AssertMatch fails the test, but continues it, if the result did not match.
func AssertMatch(t assert.TestingT, result matchers.Result, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !result.Matched() {
		return assert.Fail(t, result.FailureMessage(), msgAndArgs...)
	}

	return true
}

// AssertNoMatch fails the test, but continues it, if the result matched.
func AssertNoMatch(t assert.TestingT, result matchers.Result, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return AssertMatch(t, result.Negate(), msgAndArgs...)
}

// RequireMatch stops the test if the result did not match.
func RequireMatch(t require.TestingT, result matchers.Result, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !result.Matched() {
		require.Fail(t, result.FailureMessage(), msgAndArgs...)
	}
}
