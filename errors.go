package jsoncodec

import (
	"strings"

	gojson "github.com/goccy/go-json"
)

// JsonErrors is the wire shape of an aggregated validation failure: an
// object with a single "errors" array of strings. The HTTP layer pairs
// it with a client-error status; the framework only guarantees the
// message list is non-empty and ordered.
type JsonErrors struct {
	Errors []string `json:"errors"`
}

// NewJsonErrors wraps a message list in the error envelope.
func NewJsonErrors(msgs ...string) JsonErrors {
	return JsonErrors{Errors: msgs}
}

func (e JsonErrors) Error() string {
	return strings.Join(e.Errors, ", ")
}

// RenderErrors renders the envelope for a failed Result's message list.
func RenderErrors(msgs []string) []byte {
	b, err := gojson.Marshal(JsonErrors{Errors: msgs})
	if err != nil {
		// a []string cannot fail to marshal
		return nil
	}
	return b
}
