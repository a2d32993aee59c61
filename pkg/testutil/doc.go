// Package testutil provides utilities for testing pricat components.
//
// Key components:
//   - CreateFile / CSV: inline fixtures written to a per-test directory
//   - Isolate: a clean configuration environment for command tests
//
// Usage guidelines:
//   - Test data should be defined inline, shared fixtures live in testdata/
//   - Each test should be completely isolated with no shared state
package testutil
