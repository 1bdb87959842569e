// Command library-report builds the demo library, runs its queries and prints the results.
//
// Usage:
//
//	library-report [-author Alice] [-format json|text] [-log-level debug|info|warn|error]
//
// The report is written to stdout, logs go to stderr.
package main
