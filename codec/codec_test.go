package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	X      []float64 `json:"x"`
	Values []float64 `json:"values"`
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"json", true},
		{"go-json", true},
		{"gob", false},
		{"", false},
	}

	for _, tt := range tests {
		c, ok := ByName(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		if ok {
			assert.Equal(t, tt.name, c.Name())
		}
	}
}

func TestCodecRoundTrip(t *testing.T) {
	in := payload{X: []float64{0, 1, 2.5}, Values: []float64{-1, 0, 13}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

// Both codecs speak the same wire format, so data written by one decodes
// with the other.
func TestCodecsInteroperate(t *testing.T) {
	in := payload{X: []float64{1, 2}, Values: []float64{3, 4}}

	data, err := GoJSON{}.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestCompressorByName(t *testing.T) {
	for _, name := range []string{"none", "s2", "lz4"} {
		c, ok := CompressorByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := CompressorByName("zstd")
	assert.False(t, ok)
}

func TestCompressorRoundTrip(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 17) // compressible
	}

	for _, c := range []Compressor{None{}, S2{}, LZ4{}} {
		t.Run(c.Name(), func(t *testing.T) {
			packed, err := c.Compress(data)
			require.NoError(t, err)

			out, err := c.Decompress(packed)
			require.NoError(t, err)
			assert.Equal(t, data, out)
		})
	}
}

func TestCompressorsActuallyCompress(t *testing.T) {
	data := make([]byte, 16*1024)

	for _, c := range []Compressor{S2{}, LZ4{}} {
		packed, err := c.Compress(data)
		require.NoError(t, err)
		assert.Less(t, len(packed), len(data), c.Name())
	}
}
