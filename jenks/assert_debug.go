//go:build jenksdebug

package jenks

import "fmt"

// debugAssertions is true under -tags jenksdebug.
const debugAssertions = true

// assertf panics when an internal invariant does not hold. A failure here
// is an engine bug, never a user error.
func assertf(ok bool, format string, args ...any) {
	if !ok {
		panic("jenks: invariant violated: " + fmt.Sprintf(format, args...))
	}
}
