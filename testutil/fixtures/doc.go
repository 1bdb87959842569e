// Package fixtures provides ready-made books and libraries for tests.
//
// Every fixture function returns a fresh instance, so tests can mutate what they get
// without affecting each other.
package fixtures
