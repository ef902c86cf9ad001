// Package blend provides the affine-combination kernels lookup tables use
// to mix bracketing sample values.
//
// A blend kernel computes lo + t*(hi-lo). For in-range lookups t lies in
// [0,1]; boundary policies may pass raw fractions outside that interval
// through, in which case the same kernel performs linear extrapolation.
package blend

// Float is the constraint for independent-variable scalar types.
type Float interface {
	~float32 | ~float64
}

// Func combines two bracketing dependent values with weight t.
//
// Implementations must be pure: the result may depend only on the inputs.
// Custom dependent types plug in here; any type supporting addition and
// scaling by T qualifies.
type Func[T Float, Y any] func(lo, hi Y, t T) Y

// Lerp computes the affine combination lo + t*(hi-lo) for scalars.
// It is the default kernel for scalar-valued tables.
func Lerp[T Float](lo, hi T, t T) T {
	return lo + t*(hi-lo)
}

// LerpSlice computes the component-wise affine combination of two vectors.
// It allocates the result and reads exactly len(lo) components from hi;
// table constructors validate component widths up front, so mismatched
// inputs never reach this kernel during a lookup.
func LerpSlice[T Float](lo, hi []T, t T) []T {
	out := make([]T, len(lo))
	for i := range lo {
		out[i] = lo[i] + t*(hi[i]-lo[i])
	}
	return out
}
