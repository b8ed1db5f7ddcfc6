// Package jenks computes Jenks–Fisher "natural breaks": the partition of
// ordered numeric data into k contiguous classes with minimal total
// within-class variance.
//
// 🚀 What are natural breaks?
//
//	Given a multiset of values and a class count k, the sorted distinct
//	values are cut into k runs so that values inside a run are as close to
//	each other as possible. Each class is reported by its minimum value
//	(its "break"). Typical uses:
//	  • Choropleth map legends
//	  • Histogram / bucket boundaries
//	  • One-dimensional optimal clustering of weighted data
//
// ✨ Key features:
//   - exact optimum (Fisher's dynamic program), not a heuristic
//   - weighted input: duplicates are folded into (value, count) pairs
//   - divide-and-conquer split search: O(m·log(m)·k) instead of O(m²·k)
//   - optional parallel split search (WithWorkers), bit-identical results
//   - class evaluation: per-class summary, SDAM, SDCM and GVF
//
// ⚙️ Usage:
//
//	import "github.com/pschoepf/naturalbreaks/jenks"
//
//	breaks, err := jenks.Breaks(values, 5)
//	if err != nil {
//	  // ErrNegativeClasses, ErrNonFinite, ...
//	}
//	class := jenks.ClassIndex(breaks, 42.0)
//
// Objective:
//
//	For a class covering sorted pairs b..e the engine scores
//	SSM(b,e) = (Σ w·v)² / Σ w, i.e. weight × mean². Total variance is fixed
//	by the data, so maximizing Σ SSM over classes minimizes the sum of
//	squared deviations inside classes. The engine therefore MAXIMIZES.
//
// Performance:
//
//   - Time:   O(n·log n) preprocessing + O(m·log(m)·k) classification
//   - Memory: O(m·k) for the split table, O(m) for the score buffers
//
// Debug builds (-tags jenksdebug) check the internal index invariants of the
// split search and panic on violation; release builds compile them out.
package jenks
