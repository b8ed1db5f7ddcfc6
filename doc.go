// Package naturalbreaks is a toolkit for Jenks–Fisher natural breaks: the
// optimal partition of one-dimensional, weighted data into k contiguous
// classes with minimal within-class variance.
//
// 🚀 What is inside?
//
//	jenks/              — the classification engine and its public API
//	cmd/naturalbreaks/  — command line front-end (text, json, yaml output)
//	examples/           — runnable scenario: a choropleth map legend
//
// ✨ Why natural breaks?
//
//   - Exact optimum, not a heuristic: Fisher's dynamic program
//   - Fast: divide-and-conquer split search, O(m·log(m)·k)
//   - Weighted: duplicates are folded into (value, count) pairs
//   - Deterministic: identical input gives bit-identical breaks, sequential
//     or parallel
//
// Quick example:
//
//	breaks, err := jenks.Breaks([]float64{1, 2, 3, 10, 11, 12}, 2)
//	// breaks == [1 10]
//
//	go get github.com/pschoepf/naturalbreaks/jenks
package naturalbreaks
