// SPDX-License-Identifier: MIT
// Package: naturalbreaks/jenks
//
// options.go — functional options for the classification engine.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     the algorithms themselves never panic on user input.
//   • Defaults are sequential and deterministic; later options override
//     earlier ones.

package jenks

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultWorkers runs the split search on the calling goroutine only.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the smallest end-index span whose left half
	// is handed to another goroutine when WithWorkers > 1. Smaller spans are
	// cheaper to solve inline than to schedule.
	DefaultParallelThreshold = 2048

	// minParallelThreshold keeps forked ranges non-trivial (mi must split).
	minParallelThreshold = 2
)

const (
	panicWorkersInvalid   = "jenks: WithWorkers(n<1)"
	panicThresholdInvalid = "jenks: WithParallelThreshold(span<2)"
)

// Option customizes a classification run.
type Option func(*config)

// config aggregates all engine knobs. Passed by value into the engine.
type config struct {
	workers           int
	parallelThreshold int
}

// WithWorkers bounds the number of goroutines used by the split search.
// n == 1 keeps everything on the calling goroutine. Panics if n < 1.
// Results do not depend on n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithParallelThreshold sets the minimal end-index span that may be forked
// onto another worker. Only relevant with WithWorkers(n > 1). Panics if span < 2.
func WithParallelThreshold(span int) Option {
	if span < minParallelThreshold {
		panic(panicThresholdInvalid)
	}
	return func(c *config) {
		c.parallelThreshold = span
	}
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		workers:           DefaultWorkers,
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// parallel reports whether the engine should fork any work at all.
func (c config) parallel() bool {
	return c.workers > 1
}
