//go:build !jenksdebug

package jenks

// debugAssertions is false in release builds: invariant checks compile away.
const debugAssertions = false

// assertf is a no-op in release builds. Arguments are still evaluated by the
// caller, so hot-loop call sites guard with debugAssertions.
func assertf(bool, string, ...any) {}
