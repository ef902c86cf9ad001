package lutgo

import (
	"slices"
	"time"

	"github.com/hupe1980/lutgo/axis"
	"github.com/hupe1980/lutgo/blend"
	"github.com/hupe1980/lutgo/search"
)

// LookupTable1D approximates a function of one variable from tabulated
// sample data. It owns one axis plus a dependent-value slice of equal
// length and is immutable after construction (except for the cache hint of
// a CachedLinearCell strategy, which never affects results).
type LookupTable1D[T blend.Float, Y any] struct {
	ax      *axis.Axis[T]
	dep     []Y
	blend   blend.Func[T, Y]
	logger  *Logger
	metrics MetricsCollector
}

// New1D builds a scalar-valued table from independent samples, a search
// strategy and dependent values of equal length.
//
// indep must hold at least two strictly increasing values; dep must match
// its length. A nil strategy defaults to Binary. Boundary policies default
// to Clamp on both ends; override with WithBounds.
func New1D[T blend.Float](indep []T, strategy search.Strategy[T], dep []T, opts ...Option[T]) (*LookupTable1D[T, T], error) {
	return New1DOf(indep, strategy, dep, blend.Lerp[T], opts...)
}

// New1DVec builds a vector-valued table. Every dependent vector must have
// the same number of components; interpolation is component-wise.
func New1DVec[T blend.Float](indep []T, strategy search.Strategy[T], dep [][]T, opts ...Option[T]) (*LookupTable1D[T, []T], error) {
	if err := checkUniformWidth(dep); err != nil {
		return nil, err
	}
	// New1DOf clones the outer slice; the component vectors need their own
	// copies so later mutation by the caller cannot reach the table.
	rows := make([][]T, len(dep))
	for i, v := range dep {
		rows[i] = slices.Clone(v)
	}
	return New1DOf(indep, strategy, rows, blend.LerpSlice[T], opts...)
}

// New1DOf builds a table whose dependent values are combined by fn. Y may
// be any type supporting affine combination; fn must compute
// lo + t*(hi-lo).
func New1DOf[T blend.Float, Y any](indep []T, strategy search.Strategy[T], dep []Y, fn blend.Func[T, Y], opts ...Option[T]) (*LookupTable1D[T, Y], error) {
	if fn == nil {
		return nil, ErrNilBlend
	}

	cfg := newConfig(opts)

	ax, err := axis.New(indep, strategy, cfg.xLower, cfg.xUpper)
	if err != nil {
		return nil, err
	}

	if len(dep) != ax.Len() {
		return nil, &ErrLengthMismatch{What: "dependent values", Expected: ax.Len(), Actual: len(dep)}
	}

	t := &LookupTable1D[T, Y]{
		ax:      ax,
		dep:     slices.Clone(dep),
		blend:   fn,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}

	t.logger.Debug("lookup table constructed",
		"dims", 1,
		"len", ax.Len(),
		"search", ax.SearchKind().String(),
		"lower_bound", ax.LowerBoundKind().String(),
		"upper_bound", ax.UpperBoundKind().String(),
	)

	return t, nil
}

// Lookup returns the interpolated value at q.
//
// Lookup never fails for finite q. A NaN query propagates NaN through the
// blend (the bracket falls back to the strategy's terminal bracket). A
// ±Inf query saturates to the boundary sample under Clamp and yields an
// infinite result under Interp.
func (t *LookupTable1D[T, Y]) Lookup(q T) Y {
	if t.metrics != nil {
		start := time.Now()
		defer func() { t.metrics.RecordLookup(time.Since(start)) }()
	}

	i, frac := t.ax.Resolve(q)

	return t.blend(t.dep[i], t.dep[i+1], frac)
}

// Len returns the number of samples along the axis.
func (t *LookupTable1D[T, Y]) Len() int { return t.ax.Len() }

// Axis returns the table's axis.
func (t *LookupTable1D[T, Y]) Axis() *axis.Axis[T] { return t.ax }

// ConcurrentSafe reports whether the table may serve concurrent lookups
// from a shared instance. False exactly when the search strategy keeps
// mutable cache state (CachedLinearCell, or Runtime wrapping it).
func (t *LookupTable1D[T, Y]) ConcurrentSafe() bool { return t.ax.ConcurrentSafe() }

// Clone returns a table sharing the immutable sample data but owning an
// independent strategy cache, so every goroutine can keep its own clone.
func (t *LookupTable1D[T, Y]) Clone() *LookupTable1D[T, Y] {
	c := *t
	c.ax = t.ax.Clone()
	return &c
}

// checkUniformWidth verifies all dependent vectors share one component
// width.
func checkUniformWidth[T blend.Float](dep [][]T) error {
	if len(dep) == 0 {
		return nil
	}
	width := len(dep[0])
	for _, v := range dep[1:] {
		if len(v) != width {
			return &ErrLengthMismatch{What: "vector components", Expected: width, Actual: len(v)}
		}
	}
	return nil
}
