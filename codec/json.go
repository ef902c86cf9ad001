package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Use it when portability and zero extra dependencies matter more than
// encode/decode speed. Snapshots are self-describing (they record the codec
// name), so data written with either codec can always be read back.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is specified.
//
// NOTE: This affects newly written snapshots only; existing snapshots are
// opened by selecting the codec recorded in their envelope.
var Default Codec = GoJSON{}
