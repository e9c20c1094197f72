package jsoncodec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// ParseTree decodes raw JSON bytes into the tree form the framework
// operates on: map[string]any objects, []any arrays, string, bool,
// json.Number, and nil. Numbers stay as json.Number so integer
// timestamps and large values survive the round trip intact.
func ParseTree(b []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// RenderTree encodes a JSON tree back into bytes.
func RenderTree(v any) ([]byte, error) {
	return gojson.Marshal(v)
}
