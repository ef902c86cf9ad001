package lutgo

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/hupe1980/lutgo/blend"
	"github.com/hupe1980/lutgo/bound"
	"github.com/hupe1980/lutgo/codec"
	"github.com/hupe1980/lutgo/search"
)

// snapshotVersion guards the envelope layout, not the payload encoding;
// payload compatibility is handled by the codec/compressor names.
const snapshotVersion = 1

// envelope wraps a snapshot payload with the names needed to decode it.
// The envelope itself is always standard JSON so it can be inspected
// without knowing the payload codec.
type envelope struct {
	Version  int    `json:"version"`
	Codec    string `json:"codec"`
	Compress string `json:"compress"`
	Payload  []byte `json:"payload"`
}

type snapshot1D[T blend.Float] struct {
	X          []T         `json:"x"`
	Values     []T         `json:"values"`
	Search     search.Kind `json:"search"`
	LowerBound bound.Kind  `json:"lower_bound"`
	UpperBound bound.Kind  `json:"upper_bound"`
}

type snapshot2D[T blend.Float] struct {
	X           []T         `json:"x"`
	Y           []T         `json:"y"`
	Values      [][]T       `json:"values"`
	XSearch     search.Kind `json:"x_search"`
	YSearch     search.Kind `json:"y_search"`
	XLowerBound bound.Kind  `json:"x_lower_bound"`
	XUpperBound bound.Kind  `json:"x_upper_bound"`
	YLowerBound bound.Kind  `json:"y_lower_bound"`
	YUpperBound bound.Kind  `json:"y_upper_bound"`
}

// Marshal1D serializes a scalar 1D table to self-describing bytes: samples,
// values, search kind and boundary kinds, wrapped in an envelope recording
// the codec and compressor names. A nil codec selects codec.Default, a nil
// compressor codec.NoCompression.
//
// Only the table configuration is captured, never cache state; a restored
// CachedLinearCell starts cold.
func Marshal1D[T blend.Float](t *LookupTable1D[T, T], c codec.Codec, comp codec.Compressor) ([]byte, error) {
	snap := snapshot1D[T]{
		X:          t.ax.Samples(),
		Values:     slices.Clone(t.dep),
		Search:     t.ax.SearchKind(),
		LowerBound: t.ax.LowerBoundKind(),
		UpperBound: t.ax.UpperBoundKind(),
	}
	return seal(snap, c, comp)
}

// Unmarshal1D reconstructs a scalar 1D table from Marshal1D bytes. The
// snapshot is re-validated on load, so tampered or hand-built data fails
// with the usual construction errors. opts may add a logger or metrics;
// boundary policies always come from the snapshot, including over a
// caller-supplied WithBounds.
func Unmarshal1D[T blend.Float](data []byte, opts ...Option[T]) (*LookupTable1D[T, T], error) {
	var snap snapshot1D[T]
	if err := open(data, &snap); err != nil {
		return nil, err
	}

	strategy, err := search.New[T](snap.Search)
	if err != nil {
		return nil, err
	}
	lower, err := bound.New[T](snap.LowerBound)
	if err != nil {
		return nil, err
	}
	upper, err := bound.New[T](snap.UpperBound)
	if err != nil {
		return nil, err
	}

	// snapshot bounds go last so caller opts cannot override them
	opts = append(slices.Clone(opts), WithBounds(lower, upper))

	return New1D(snap.X, strategy, snap.Values, opts...)
}

// Marshal2D serializes a scalar 2D table; see Marshal1D.
func Marshal2D[T blend.Float](t *LookupTable2D[T, T], c codec.Codec, comp codec.Compressor) ([]byte, error) {
	rows := make([][]T, t.xax.Len())
	for i := range rows {
		rows[i] = slices.Clone(t.dep[i*t.ny : (i+1)*t.ny])
	}

	snap := snapshot2D[T]{
		X:           t.xax.Samples(),
		Y:           t.yax.Samples(),
		Values:      rows,
		XSearch:     t.xax.SearchKind(),
		YSearch:     t.yax.SearchKind(),
		XLowerBound: t.xax.LowerBoundKind(),
		XUpperBound: t.xax.UpperBoundKind(),
		YLowerBound: t.yax.LowerBoundKind(),
		YUpperBound: t.yax.UpperBoundKind(),
	}
	return seal(snap, c, comp)
}

// Unmarshal2D reconstructs a scalar 2D table from Marshal2D bytes; see
// Unmarshal1D.
func Unmarshal2D[T blend.Float](data []byte, opts ...Option[T]) (*LookupTable2D[T, T], error) {
	var snap snapshot2D[T]
	if err := open(data, &snap); err != nil {
		return nil, err
	}

	xStrategy, err := search.New[T](snap.XSearch)
	if err != nil {
		return nil, err
	}
	yStrategy, err := search.New[T](snap.YSearch)
	if err != nil {
		return nil, err
	}
	xLower, err := bound.New[T](snap.XLowerBound)
	if err != nil {
		return nil, err
	}
	xUpper, err := bound.New[T](snap.XUpperBound)
	if err != nil {
		return nil, err
	}
	yLower, err := bound.New[T](snap.YLowerBound)
	if err != nil {
		return nil, err
	}
	yUpper, err := bound.New[T](snap.YUpperBound)
	if err != nil {
		return nil, err
	}

	opts = append(slices.Clone(opts),
		WithXBounds(xLower, xUpper),
		WithYBounds(yLower, yUpper),
	)

	return New2D(snap.X, xStrategy, snap.Y, yStrategy, snap.Values, opts...)
}

func seal(snap any, c codec.Codec, comp codec.Compressor) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	if comp == nil {
		comp = codec.NoCompression
	}

	payload, err := c.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	packed, err := comp.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}

	return json.Marshal(envelope{
		Version:  snapshotVersion,
		Codec:    c.Name(),
		Compress: comp.Name(),
		Payload:  packed,
	})
}

func open(data []byte, snap any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("unmarshal snapshot envelope: %w", err)
	}
	if env.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version: %d", env.Version)
	}

	c, ok := codec.ByName(env.Codec)
	if !ok {
		return fmt.Errorf("unknown snapshot codec: %q", env.Codec)
	}
	comp, ok := codec.CompressorByName(env.Compress)
	if !ok {
		return fmt.Errorf("unknown snapshot compressor: %q", env.Compress)
	}

	payload, err := comp.Decompress(env.Payload)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}
	if err := c.Unmarshal(payload, snap); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return nil
}
