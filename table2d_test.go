package lutgo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lutgo/axis"
	"github.com/hupe1980/lutgo/bound"
	"github.com/hupe1980/lutgo/search"
)

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

func gridOf(xs, ys []float64, f func(x, y float64) float64) [][]float64 {
	grid := make([][]float64, len(xs))
	for i, x := range xs {
		row := make([]float64, len(ys))
		for j, y := range ys {
			row[j] = f(x, y)
		}
		grid[i] = row
	}
	return grid
}

func TestLookup2D(t *testing.T) {
	f := func(x, y float64) float64 { return x*y + y }

	xs := linspace(0, 5, 10)
	ys := linspace(0, 5, 10)

	table, err := New2D(xs, search.Binary[float64]{}, ys, search.Binary[float64]{}, gridOf(xs, ys, f))
	require.NoError(t, err)

	// f is bilinear, so interpolation reproduces it exactly up to rounding
	assert.InDelta(t, f(1.2, 4.5), table.Lookup(1.2, 4.5), tol)
	assert.InDelta(t, f(0.01, 4.99), table.Lookup(0.01, 4.99), tol)
	assert.InDelta(t, f(2.5, 0), table.Lookup(2.5, 0), tol)
}

func TestLookup2DExactCorners(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{10, 20}
	grid := [][]float64{{1, 2}, {3, 4}, {5, 6}}

	table, err := New2D(xs, nil, ys, nil, grid)
	require.NoError(t, err)

	for i, x := range xs {
		for j, y := range ys {
			assert.Equal(t, grid[i][j], table.Lookup(x, y), "x=%v y=%v", x, y)
		}
	}
}

// Blending x-then-y must equal blending y-then-x for an affine-combination
// type.
func TestLookup2DOrderEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	xs := linspace(0, 4, 9)
	ys := linspace(-2, 2, 7)

	grid := make([][]float64, len(xs))
	for i := range grid {
		grid[i] = make([]float64, len(ys))
		for j := range grid[i] {
			grid[i][j] = rng.NormFloat64()
		}
	}

	table, err := New2D(xs, search.Linear[float64]{}, ys, search.Linear[float64]{}, grid,
		WithBounds[float64](bound.Interp[float64]{}, bound.Interp[float64]{}))
	require.NoError(t, err)

	xref, err := axis.New(xs, search.Linear[float64]{}, bound.Interp[float64]{}, bound.Interp[float64]{})
	require.NoError(t, err)
	yref, err := axis.New(ys, search.Linear[float64]{}, bound.Interp[float64]{}, bound.Interp[float64]{})
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		x := -1 + rng.Float64()*6
		y := -3 + rng.Float64()*6

		ix, tx := xref.Resolve(x)
		iy, ty := yref.Resolve(y)

		// y-then-x by hand
		lo := grid[ix][iy] + ty*(grid[ix][iy+1]-grid[ix][iy])
		hi := grid[ix+1][iy] + ty*(grid[ix+1][iy+1]-grid[ix+1][iy])
		yThenX := lo + tx*(hi-lo)

		assert.InDelta(t, yThenX, table.Lookup(x, y), tol, "x=%v y=%v", x, y)
	}
}

// Out-of-bounds handling composes per axis with no special case for "both
// out of bounds".
func TestLookup2DExtrapolation(t *testing.T) {
	f := func(x, y float64) float64 { return 2*x + 3*y }

	xs := linspace(0, 1, 3)
	ys := linspace(0, 1, 3)

	table, err := New2D(xs, nil, ys, nil, gridOf(xs, ys, f),
		WithXBounds[float64](bound.Clamp[float64]{}, bound.Interp[float64]{}),
		WithYBounds[float64](bound.Interp[float64]{}, bound.Clamp[float64]{}))
	require.NoError(t, err)

	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"InRange", 0.5, 0.5, f(0.5, 0.5)},
		{"XBelowClamped", -1, 0.5, f(0, 0.5)},
		{"XAboveExtrapolated", 2, 0.5, f(2, 0.5)},
		{"YBelowExtrapolated", 0.5, -2, f(0.5, -2)},
		{"YAboveClamped", 0.5, 3, f(0.5, 1)},
		{"BothOut", 2, -2, f(2, -2)},
		{"BothOutClamped", -1, 3, f(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, table.Lookup(tc.x, tc.y), tol)
		})
	}
}

func TestNew2DConstructionErrors(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1}

	t.Run("RowMismatch", func(t *testing.T) {
		_, err := New2D(xs, nil, ys, nil, [][]float64{{1, 2}, {3, 4}})

		var mismatch *ErrLengthMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 3, mismatch.Expected)
		assert.Equal(t, 2, mismatch.Actual)
	})

	t.Run("RaggedColumns", func(t *testing.T) {
		_, err := New2D(xs, nil, ys, nil, [][]float64{{1, 2}, {3}, {5, 6}})

		var mismatch *ErrLengthMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 2, mismatch.Expected)
		assert.Equal(t, 1, mismatch.Actual)
	})

	t.Run("NonMonotonicX", func(t *testing.T) {
		_, err := New2D([]float64{2, 1, 3}, nil, ys, nil, [][]float64{{1, 2}, {3, 4}, {5, 6}})

		var nonMono *axis.ErrNonMonotonic
		require.ErrorAs(t, err, &nonMono)
	})

	t.Run("InsufficientY", func(t *testing.T) {
		_, err := New2D(xs, nil, []float64{1}, nil, [][]float64{{1}, {2}, {3}})

		var short *axis.ErrInsufficientSamples
		require.ErrorAs(t, err, &short)
	})

	t.Run("NilBlend", func(t *testing.T) {
		_, err := New2DOf[float64, float64](xs, nil, ys, nil, [][]float64{{1, 2}, {3, 4}, {5, 6}}, nil)
		require.ErrorIs(t, err, ErrNilBlend)
	})
}

func TestLookup2DVectorValues(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}

	grid := [][][]float64{
		{{0, 0}, {0, 10}},
		{{1, 0}, {1, 10}},
	}

	table, err := New2DOf(xs, nil, ys, nil, grid, func(lo, hi []float64, t float64) []float64 {
		out := make([]float64, len(lo))
		for i := range lo {
			out[i] = lo[i] + t*(hi[i]-lo[i])
		}
		return out
	})
	require.NoError(t, err)

	got := table.Lookup(0.5, 0.25)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[0], tol)
	assert.InDelta(t, 2.5, got[1], tol)
}

func TestNew2DVec(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}

	grid := [][][]float64{
		{{0, 0}, {0, 10}},
		{{1, 0}, {1, 10}},
	}

	table, err := New2DVec(xs, nil, ys, nil, grid)
	require.NoError(t, err)

	got := table.Lookup(0.5, 0.25)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[0], tol)
	assert.InDelta(t, 2.5, got[1], tol)

	// component mutation must not reach the table
	grid[1][1][0] = 999
	assert.Equal(t, []float64{1, 10}, table.Lookup(1, 1))
}

func TestNew2DVecRaggedComponents(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}

	// width mismatch sits in a different row than the first vector
	grid := [][][]float64{
		{{0, 0}, {0, 10}},
		{{1, 0}, {1}},
	}

	_, err := New2DVec(xs, nil, ys, nil, grid)

	var mismatch *ErrLengthMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Expected)
	assert.Equal(t, 1, mismatch.Actual)
}

func TestLookup2DNonFinite(t *testing.T) {
	xs := linspace(0, 1, 3)
	ys := linspace(0, 1, 3)
	f := func(x, y float64) float64 { return x + y }

	table, err := New2D(xs, nil, ys, nil, gridOf(xs, ys, f))
	require.NoError(t, err)

	assert.True(t, math.IsNaN(table.Lookup(math.NaN(), 0.5)))
	assert.True(t, math.IsNaN(table.Lookup(0.5, math.NaN())))
	// clamped on both axes
	assert.Equal(t, f(1, 0.5), table.Lookup(math.Inf(1), 0.5))
	assert.Equal(t, f(0.5, 0), table.Lookup(0.5, math.Inf(-1)))
}

func TestTable2DCloneAndConcurrency(t *testing.T) {
	xs := linspace(0, 1, 4)
	ys := linspace(0, 1, 4)

	table, err := New2D(xs, search.NewCachedLinearCell[float64](), ys, search.Binary[float64]{},
		gridOf(xs, ys, func(x, y float64) float64 { return x * y }))
	require.NoError(t, err)

	assert.False(t, table.ConcurrentSafe())

	clone := table.Clone()
	assert.Equal(t, table.Lookup(0.3, 0.7), clone.Lookup(0.3, 0.7))
}
