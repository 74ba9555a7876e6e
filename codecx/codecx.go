// Package codecx provides the Connect codec used to encode OpenStatus API messages.
//
// The API message types are plain Go structs whose JSON form follows the
// protobuf JSON mapping: lowerCamelCase field names, enum values as names,
// 64-bit integers as strings (see Int64) and timestamps in RFC 3339. The codec registers
// under the name "json", so requests are sent with Content-Type
// application/json, which every Connect server accepts.
package codecx

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Name is the codec name registered with Connect.
const Name = "json"

// JSON is the shared codec instance. It holds no state.
var JSON Codec

// Codec implements connect.Codec on top of goccy/go-json.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string {
	return Name
}

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	if msg == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty payload leaves msg untouched,
// matching servers that omit default-valued responses entirely.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
