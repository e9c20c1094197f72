package jsoncodec

import (
	"encoding/json"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// TimeFormat renders and parses the string form of a timestamp. The
// built-in time codec is parameterized on it so callers can swap the
// wire format without writing a codec.
type TimeFormat interface {
	Format(t time.Time) string
	Parse(s string) (time.Time, error)
}

// LayoutFormat implements TimeFormat with a Go time layout, formatting
// in UTC.
type LayoutFormat string

// ISO8601 is the default wire format for timestamps.
const ISO8601 = LayoutFormat(time.RFC3339)

func (l LayoutFormat) Format(t time.Time) string { return t.UTC().Format(string(l)) }

func (l LayoutFormat) Parse(s string) (time.Time, error) {
	return time.Parse(string(l), s)
}

// TimeCodec builds the date/time codec. Decode accepts either a string
// in the provider's format or a numeric epoch-milliseconds value;
// encode always produces the formatted string. [NewRegistry] preloads
// this codec with [ISO8601] unless the caller supplies a replacement.
func TimeCodec(f TimeFormat) Codec {
	s := openapi3.NewStringSchema()
	s.Format = "date-time"
	return ForType[time.Time](
		WithDecode[time.Time](func(_ *Registry, v any) Result[time.Time] {
			return decodeTime(f, v)
		}),
		WithEncode[time.Time](func(_ *Registry, t time.Time) any {
			return f.Format(t)
		}),
		WithSchema[time.Time](s),
	)
}

func decodeTime(f TimeFormat, v any) Result[time.Time] {
	switch n := v.(type) {
	case string:
		t, err := f.Parse(n)
		if err != nil {
			return Invalid[time.Time]("Failed to parse DateTime")
		}
		return Valid(t.UTC())
	case json.Number:
		millis, err := n.Int64()
		if err != nil {
			return Invalid[time.Time]("Failed to parse DateTime")
		}
		return Valid(time.UnixMilli(millis).UTC())
	case float64:
		return Valid(time.UnixMilli(int64(n)).UTC())
	case int64:
		return Valid(time.UnixMilli(n).UTC())
	case int:
		return Valid(time.UnixMilli(int64(n)).UTC())
	default:
		return Invalid[time.Time]("Failed to parse DateTime")
	}
}
