// Package enumjson implements the protobuf JSON mapping for enum values:
// values are written as their names and read back from either a name or a
// number.
package enumjson

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Invert builds the name-to-number lookup for a number-to-name table.
func Invert(names map[int32]string) map[string]int32 {
	values := make(map[string]int32, len(names))
	for n, name := range names {
		values[name] = n
	}
	return values
}

// Name returns the registered name of v, or its decimal form when unknown.
func Name(names map[int32]string, v int32) string {
	if name, ok := names[v]; ok {
		return name
	}
	return strconv.FormatInt(int64(v), 10)
}

// Marshal encodes v as a JSON string holding its name. Unknown values are
// encoded as numbers so that newer server enums survive a round trip.
func Marshal(names map[int32]string, v int32) ([]byte, error) {
	if name, ok := names[v]; ok {
		return json.Marshal(name)
	}
	return []byte(strconv.FormatInt(int64(v), 10)), nil
}

// Unmarshal decodes a JSON enum value for the enum called typeName.
func Unmarshal(data []byte, values map[string]int32, typeName string) (int32, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, nil
	}
	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return 0, fmt.Errorf("%s: %w", typeName, err)
		}
		if v, ok := values[name]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("%s: unknown value %q", typeName, name)
	}
	n, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid value %s", typeName, data)
	}
	return int32(n), nil
}
