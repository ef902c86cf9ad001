// Package codec centralizes snapshot payload encoding and compression.
//
// Codec selection is a compatibility boundary: snapshots record the codec
// and compressor names in their envelope, and are decoded by selecting the
// matching implementations by name.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Snapshot envelopes store the codec name; this is how they become
// self-describing.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
