// Package testutils collects small test-only helpers shared across the
// engine's test suites.
package testutils

import "go.uber.org/goleak"

// LeakTester asserts that no goroutines are still running at the point it
// is called; defer it at the top of tests that exercise anything beyond
// pure functions.
func LeakTester(t goleak.TestingT, extraOpts ...goleak.Option) {
	goleak.VerifyNone(t, extraOpts...)
}
