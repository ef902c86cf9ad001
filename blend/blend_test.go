package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name      string
		lo, hi, t float64
		expected  float64
	}{
		{"Midpoint", 0, 10, 0.5, 5},
		{"AtLower", 3, 7, 0, 3},
		{"AtUpper", 3, 7, 1, 7},
		{"ExtrapolateAbove", 0, 10, 2, 20},
		{"ExtrapolateBelow", 0, 10, -1, -10},
		{"Descending", 10, 0, 0.25, 7.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Lerp(tc.lo, tc.hi, tc.t))
		})
	}
}

func TestLerpFloat32(t *testing.T) {
	assert.Equal(t, float32(5), Lerp[float32](0, 10, 0.5))
}

func TestLerpSlice(t *testing.T) {
	lo := []float64{0, 3, -2}
	hi := []float64{10, 5, 2}

	out := LerpSlice(lo, hi, 0.5)

	assert.Equal(t, []float64{5, 4, 0}, out)
	// inputs untouched
	assert.Equal(t, []float64{0, 3, -2}, lo)
	assert.Equal(t, []float64{10, 5, 2}, hi)
}

// Interpolating a vector directly must match interpolating each component
// on its own.
func TestLerpSliceMatchesComponentWise(t *testing.T) {
	lo := []float64{0.5, -1.25, 100, 0}
	hi := []float64{2.5, 4.75, -50, 1}

	for _, frac := range []float64{-0.5, 0, 0.25, 0.5, 1, 1.75} {
		got := LerpSlice(lo, hi, frac)
		for i := range lo {
			assert.Equal(t, Lerp(lo[i], hi[i], frac), got[i], "frac=%v component=%d", frac, i)
		}
	}
}
