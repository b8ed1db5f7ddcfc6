// SPDX-License-Identifier: MIT
// Package: naturalbreaks/jenks
//
// errors.go — sentinel errors for the jenks package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (index, value) is attached with %w wrapping at the entry point.
//   • Every user-triggered condition is reported as an error, never a panic.
//     Panics are reserved for option constructors and for internal invariants
//     in jenksdebug builds.

package jenks

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeClasses is returned when the requested class count k is < 0.
	ErrNegativeClasses = errors.New("jenks: class count must be non-negative")

	// ErrNonFinite indicates a NaN or ±Inf input value, or weighted sums too
	// large to be squared in float64.
	ErrNonFinite = errors.New("jenks: NaN or Inf encountered")

	// ErrNonPositiveCount indicates a ValuePair with Count <= 0.
	ErrNonPositiveCount = errors.New("jenks: pair count must be positive")

	// ErrUnsorted indicates that pair values are not strictly increasing.
	ErrUnsorted = errors.New("jenks: pair values must be strictly increasing")

	// ErrWeightOverflow indicates that the total of counts exceeds int or can
	// no longer be represented exactly in a float64 (2^53).
	ErrWeightOverflow = errors.New("jenks: cumulative weight overflow")

	// ErrBreaksMismatch is returned by Evaluate when the breaks do not describe
	// a classification of the given pairs.
	ErrBreaksMismatch = errors.New("jenks: breaks do not match pairs")
)

// wrapf attaches call-site context to a sentinel while keeping errors.Is working.
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
