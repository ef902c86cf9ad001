package lutgo

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/lutgo/blend"
)

// LookupAll evaluates the table at every query. If out has sufficient
// capacity it is reused; the (possibly reallocated) slice is returned.
func (t *LookupTable1D[T, Y]) LookupAll(qs []T, out []Y) []Y {
	var start time.Time
	if t.metrics != nil {
		start = time.Now()
	}

	if cap(out) < len(qs) {
		out = make([]Y, len(qs))
	}
	out = out[:len(qs)]

	for i, q := range qs {
		j, frac := t.ax.Resolve(q)
		out[i] = t.blend(t.dep[j], t.dep[j+1], frac)
	}

	if t.metrics != nil {
		t.metrics.RecordBatch(len(qs), time.Since(start))
	}

	return out
}

// LookupAll evaluates the table at every (xs[i], ys[i]) pair. The two query
// slices must have equal length. If out has sufficient capacity it is
// reused.
func (t *LookupTable2D[T, Y]) LookupAll(xs, ys []T, out []Y) ([]Y, error) {
	if len(xs) != len(ys) {
		return nil, &ErrLengthMismatch{What: "query slices", Expected: len(xs), Actual: len(ys)}
	}

	var start time.Time
	if t.metrics != nil {
		start = time.Now()
	}

	if cap(out) < len(xs) {
		out = make([]Y, len(xs))
	}
	out = out[:len(xs)]

	for i := range xs {
		ix, tx := t.xax.Resolve(xs[i])
		iy, ty := t.yax.Resolve(ys[i])

		base := ix*t.ny + iy
		lo := t.blend(t.dep[base], t.dep[base+t.ny], tx)
		hi := t.blend(t.dep[base+1], t.dep[base+t.ny+1], tx)
		out[i] = t.blend(lo, hi, ty)
	}

	if t.metrics != nil {
		t.metrics.RecordBatch(len(xs), time.Since(start))
	}

	return out, nil
}

// ParallelLookupAll evaluates queries across multiple goroutines, splitting
// the work into contiguous chunks. parallelism <= 0 defaults to
// GOMAXPROCS.
//
// It returns ErrNotConcurrentSafe when the table's search strategy keeps
// per-call cache state; Clone the table per goroutine in that case.
func ParallelLookupAll[T blend.Float, Y any](ctx context.Context, t *LookupTable1D[T, Y], qs []T, parallelism int) ([]Y, error) {
	if !t.ConcurrentSafe() {
		return nil, ErrNotConcurrentSafe
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	var start time.Time
	if t.metrics != nil {
		start = time.Now()
	}

	out := make([]Y, len(qs))

	g, ctx := errgroup.WithContext(ctx)
	for lo, hi := range chunks(len(qs), parallelism) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				j, frac := t.ax.Resolve(qs[i])
				out[i] = t.blend(t.dep[j], t.dep[j+1], frac)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if t.metrics != nil {
		t.metrics.RecordBatch(len(qs), time.Since(start))
	}

	return out, nil
}

// ParallelLookupAll2D is the two-dimensional counterpart of
// ParallelLookupAll. xs and ys must have equal length.
func ParallelLookupAll2D[T blend.Float, Y any](ctx context.Context, t *LookupTable2D[T, Y], xs, ys []T, parallelism int) ([]Y, error) {
	if !t.ConcurrentSafe() {
		return nil, ErrNotConcurrentSafe
	}
	if len(xs) != len(ys) {
		return nil, &ErrLengthMismatch{What: "query slices", Expected: len(xs), Actual: len(ys)}
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	var start time.Time
	if t.metrics != nil {
		start = time.Now()
	}

	out := make([]Y, len(xs))

	g, ctx := errgroup.WithContext(ctx)
	for lo, hi := range chunks(len(xs), parallelism) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				ix, tx := t.xax.Resolve(xs[i])
				iy, ty := t.yax.Resolve(ys[i])

				base := ix*t.ny + iy
				l := t.blend(t.dep[base], t.dep[base+t.ny], tx)
				h := t.blend(t.dep[base+1], t.dep[base+t.ny+1], tx)
				out[i] = t.blend(l, h, ty)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if t.metrics != nil {
		t.metrics.RecordBatch(len(xs), time.Since(start))
	}

	return out, nil
}

// chunks yields up to parts contiguous [lo, hi) ranges covering [0, n).
func chunks(n, parts int) func(yield func(int, int) bool) {
	size := (n + parts - 1) / parts
	if size < 1 {
		size = 1
	}
	return func(yield func(int, int) bool) {
		for lo := 0; lo < n; lo += size {
			hi := min(lo+size, n)
			if !yield(lo, hi) {
				return
			}
		}
	}
}
