package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// Compressor reduces snapshot payload size. Like Codec, implementations
// must be safe for concurrent use, and the compressor name is recorded in
// the snapshot envelope.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// CompressorByName returns a built-in compressor by its stable name.
func CompressorByName(name string) (Compressor, bool) {
	switch name {
	case "none":
		return None{}, true
	case "s2":
		return S2{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// NoCompression is the compressor used when none is specified.
var NoCompression Compressor = None{}

// None passes payloads through unchanged.
type None struct{}

// Compress implements Compressor.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress implements Compressor.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns the unique name of the compressor ("none").
func (None) Name() string { return "none" }

// S2 compresses with the S2 block format (a Snappy successor). Fast with
// moderate ratios; a good default for numeric grids.
type S2 struct{}

// Compress implements Compressor.
func (S2) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

// Decompress implements Compressor.
func (S2) Decompress(data []byte) ([]byte, error) {
	return s2.Decode(nil, data)
}

// Name returns the unique name of the compressor ("s2").
func (S2) Name() string { return "s2" }

// LZ4 compresses with the LZ4 frame format.
type LZ4 struct{}

// Compress implements Compressor.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress implements Compressor.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// Name returns the unique name of the compressor ("lz4").
func (LZ4) Name() string { return "lz4" }
