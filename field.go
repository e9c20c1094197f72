package jsoncodec

import (
	"fmt"
	"reflect"
)

// fieldValue looks up name in a JSON object node. Absent fields, JSON
// null, and non-object nodes all count as absent.
func fieldValue(obj any, name string) (any, bool) {
	m, ok := obj.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Required extracts a mandatory field from a JSON object node. An
// absent or null field fails with exactly the caller-supplied message.
func Required[T any](reg *Registry, obj any, name, msg string) Result[T] {
	raw, ok := fieldValue(obj, name)
	if !ok {
		return Invalid[T](msg)
	}
	return extractField[T](reg, name, raw)
}

// Optional extracts a field that may be absent. Absent or null yields
// Valid(nil); a present but malformed value is a failure, never a
// silent nil.
func Optional[T any](reg *Registry, obj any, name string) Result[*T] {
	raw, ok := fieldValue(obj, name)
	if !ok {
		return Valid[*T](nil)
	}
	return Map(extractField[T](reg, name, raw), func(v T) *T { return &v })
}

// Default extracts a field, substituting fallback when it is absent or
// null. A present value always wins, and a present but malformed value
// is a failure rather than the fallback.
func Default[T any](reg *Registry, obj any, name string, fallback T) Result[T] {
	raw, ok := fieldValue(obj, name)
	if !ok {
		return Valid(fallback)
	}
	return extractField[T](reg, name, raw)
}

// extractField runs typed extraction for a present field. A nested
// codec's failure list passes through unmodified, preserving its
// granularity; a low-level coercion error becomes a single message
// naming the field and the raw error text.
func extractField[T any](reg *Registry, name string, raw any) Result[T] {
	v, errs, err := extractValue(reg, reflect.TypeOf((*T)(nil)).Elem(), raw)
	if len(errs) > 0 {
		return invalidList[T](errs)
	}
	if err != nil {
		return Invalid[T](fmt.Sprintf("Failed to parse field %q: %v", name, err))
	}
	return Valid(v.(T))
}
