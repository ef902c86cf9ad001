// Package lutgo provides generic interpolating lookup tables for Go.
//
// A lookup table approximates a scalar or vector-valued function of one or
// two independent variables from tabulated sample data. It targets
// performance-sensitive numeric code (simulation, control systems,
// calibration tables) where lookup cost and out-of-bounds behavior must be
// precisely controlled.
//
// # Quick Start
//
// One-dimensional table, clamped below and extrapolating above:
//
//	x := []float64{0, 1, 2, 3, 4, 5}
//	y := []float64{0, 3, 5, 10, 12, 13}
//
//	table, err := lutgo.New1D(x, search.NewLinear[float64](), y,
//	    lutgo.WithBounds[float64](bound.Clamp[float64]{}, bound.Interp[float64]{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	table.Lookup(2.5)  // 7.5  (interpolated)
//	table.Lookup(-1.0) // 0.0  (clamped)
//	table.Lookup(10.0) // 18.0 (extrapolated)
//
// Or with the fluent builder:
//
//	table, err := lutgo.Table1D[float64]().
//	    X(x).
//	    Values(y).
//	    Linear().
//	    LowerBound(bound.Clamp[float64]{}).
//	    UpperBound(bound.Interp[float64]{}).
//	    Build()
//
// # Search Strategies
//
// Each axis picks how its bracket is located:
//
//   - search.Linear: sequential scan, fastest for small axes (< ~20 samples)
//   - search.Binary: bisection, preferred for large axes
//   - search.CachedLinearCell: scans outward from the previous hit,
//     amortized O(1) for slowly varying query streams
//   - search.Runtime: kind selected at construction instead of compile time
//
// All strategies produce identical results; they differ only in cost and
// concurrency rules.
//
// # Boundary Policies
//
// Each axis end is configured independently with bound.Clamp (saturate to
// the boundary sample) or bound.Interp (extrapolate linearly with the
// boundary bracket's slope).
//
// # Vector-Valued Tables
//
// Dependent values may be vectors or any custom type supporting affine
// combination:
//
//	table, _ := lutgo.New1DVec(x, search.NewBinary[float64](), [][]float64{
//	    {0, 0}, {3, 1}, {5, 2}, {10, 3}, {12, 4}, {13, 5},
//	})
//	table.Lookup(2.5) // [7.5 2.5]
//
// # Concurrency
//
// A constructed table is immutable and safe for concurrent readers, except
// when its strategy is CachedLinearCell (or a Runtime wrapping it), whose
// cache index mutates on every lookup. Check ConcurrentSafe() and use
// Clone() to give each goroutine an independent cache cell.
package lutgo
