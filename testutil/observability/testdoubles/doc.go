// Package testdoubles provides test doubles (spies) for observability interfaces.
//
// LoggerSpy captures the calls made through the library.Logger interface, so tests can verify
// which messages a Library logs and with which attributes, without a real slog handler.
package testdoubles
