package lutgo

import (
	"slices"
	"time"

	"github.com/hupe1980/lutgo/axis"
	"github.com/hupe1980/lutgo/blend"
	"github.com/hupe1980/lutgo/search"
)

// LookupTable2D approximates a function of two variables from a tabulated
// grid. It owns two axes plus a dependent-value matrix of shape
// (x.Len(), y.Len()) and performs bilinear composition: blend along x for
// the two bracketing y-rows, then blend the results along y.
//
// Extrapolation in one or both dimensions follows from each axis's own
// boundary policy; there is no special case for "both out of bounds".
type LookupTable2D[T blend.Float, Y any] struct {
	xax, yax *axis.Axis[T]
	// dep is row-major: dep[i*ny+j] pairs x sample i with y sample j.
	dep     []Y
	ny      int
	blend   blend.Func[T, Y]
	logger  *Logger
	metrics MetricsCollector
}

// New2D builds a scalar-valued 2D table. dep must have exactly len(x) rows
// of len(y) values each.
//
// Nil strategies default to Binary. Boundary policies default to Clamp on
// every end; override with WithBounds, WithXBounds and WithYBounds.
func New2D[T blend.Float](x []T, xStrategy search.Strategy[T], y []T, yStrategy search.Strategy[T], dep [][]T, opts ...Option[T]) (*LookupTable2D[T, T], error) {
	return New2DOf(x, xStrategy, y, yStrategy, dep, blend.Lerp[T], opts...)
}

// New2DVec builds a vector-valued 2D table. Every dependent vector in the
// grid must have the same number of components; interpolation is
// component-wise.
func New2DVec[T blend.Float](x []T, xStrategy search.Strategy[T], y []T, yStrategy search.Strategy[T], dep [][][]T, opts ...Option[T]) (*LookupTable2D[T, []T], error) {
	width := -1
	for _, row := range dep {
		for _, v := range row {
			if width < 0 {
				width = len(v)
			}
			if len(v) != width {
				return nil, &ErrLengthMismatch{What: "vector components", Expected: width, Actual: len(v)}
			}
		}
	}

	// New2DOf flattens the grid by copying the cell values; for vector
	// cells those values are slice headers, so the components need their
	// own copies too.
	rows := make([][][]T, len(dep))
	for i, row := range dep {
		rows[i] = make([][]T, len(row))
		for j, v := range row {
			rows[i][j] = slices.Clone(v)
		}
	}
	return New2DOf(x, xStrategy, y, yStrategy, rows, blend.LerpSlice[T], opts...)
}

// New2DOf builds a 2D table whose dependent values are combined by fn. Y
// may be any type supporting affine combination; fn must compute
// lo + t*(hi-lo).
func New2DOf[T blend.Float, Y any](x []T, xStrategy search.Strategy[T], y []T, yStrategy search.Strategy[T], dep [][]Y, fn blend.Func[T, Y], opts ...Option[T]) (*LookupTable2D[T, Y], error) {
	if fn == nil {
		return nil, ErrNilBlend
	}

	cfg := newConfig(opts)

	xax, err := axis.New(x, xStrategy, cfg.xLower, cfg.xUpper)
	if err != nil {
		return nil, err
	}
	yax, err := axis.New(y, yStrategy, cfg.yLower, cfg.yUpper)
	if err != nil {
		return nil, err
	}

	nx, ny := xax.Len(), yax.Len()
	if len(dep) != nx {
		return nil, &ErrLengthMismatch{What: "matrix rows", Expected: nx, Actual: len(dep)}
	}

	flat := make([]Y, 0, nx*ny)
	for _, row := range dep {
		if len(row) != ny {
			return nil, &ErrLengthMismatch{What: "matrix columns", Expected: ny, Actual: len(row)}
		}
		flat = append(flat, row...)
	}

	t := &LookupTable2D[T, Y]{
		xax:     xax,
		yax:     yax,
		dep:     flat,
		ny:      ny,
		blend:   fn,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}

	t.logger.Debug("lookup table constructed",
		"dims", 2,
		"x_len", nx,
		"y_len", ny,
		"x_search", xax.SearchKind().String(),
		"y_search", yax.SearchKind().String(),
	)

	return t, nil
}

// Lookup returns the bilinearly interpolated value at (x, y).
//
// Like the 1D variant, Lookup never fails for finite queries; NaN
// propagates and ±Inf follows the boundary policy of the axis it exceeds.
func (t *LookupTable2D[T, Y]) Lookup(x, y T) Y {
	if t.metrics != nil {
		start := time.Now()
		defer func() { t.metrics.RecordLookup(time.Since(start)) }()
	}

	ix, tx := t.xax.Resolve(x)
	iy, ty := t.yax.Resolve(y)

	base := ix*t.ny + iy
	c00, c01 := t.dep[base], t.dep[base+1]
	c10, c11 := t.dep[base+t.ny], t.dep[base+t.ny+1]

	lo := t.blend(c00, c10, tx)
	hi := t.blend(c01, c11, tx)

	return t.blend(lo, hi, ty)
}

// XAxis returns the first axis.
func (t *LookupTable2D[T, Y]) XAxis() *axis.Axis[T] { return t.xax }

// YAxis returns the second axis.
func (t *LookupTable2D[T, Y]) YAxis() *axis.Axis[T] { return t.yax }

// ConcurrentSafe reports whether the table may serve concurrent lookups
// from a shared instance. Both axes must be safe.
func (t *LookupTable2D[T, Y]) ConcurrentSafe() bool {
	return t.xax.ConcurrentSafe() && t.yax.ConcurrentSafe()
}

// Clone returns a table sharing the immutable grid data but owning
// independent strategy caches for both axes.
func (t *LookupTable2D[T, Y]) Clone() *LookupTable2D[T, Y] {
	c := *t
	c.xax = t.xax.Clone()
	c.yax = t.yax.Clone()
	return &c
}
