package jsoncodec

import "github.com/getkin/kin-openapi/openapi3"

// Enum is a named set of string-typed members. Extraction against an
// Enum accepts only a JSON string exactly matching one of the members;
// anything else fails with "Invalid <Name>".
type Enum[T ~string] struct {
	name    string
	members []T
	set     map[T]struct{}
}

// NewEnum builds an enum set. The name appears verbatim in failure
// messages, so use the domain type's name (e.g. "RecordType").
func NewEnum[T ~string](name string, members ...T) Enum[T] {
	set := make(map[T]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return Enum[T]{name: name, members: members, set: set}
}

// Name returns the enum's display name.
func (e Enum[T]) Name() string { return e.name }

// Members returns the member values in declaration order.
func (e Enum[T]) Members() []T { return append([]T(nil), e.members...) }

// Decode validates a raw JSON value against the member set.
// Matching is case-sensitive and non-string values never match.
func (e Enum[T]) Decode(v any) Result[T] {
	s, ok := v.(string)
	if !ok {
		return Invalid[T]("Invalid " + e.name)
	}
	if _, ok := e.set[T(s)]; !ok {
		return Invalid[T]("Invalid " + e.name)
	}
	return Valid(T(s))
}

// Encode renders a member as its JSON string.
func (e Enum[T]) Encode(v T) any { return string(v) }

// Schema describes the enum as an OpenAPI string schema with its
// members as the allowed values.
func (e Enum[T]) Schema() *openapi3.Schema {
	s := openapi3.NewStringSchema()
	s.Enum = make([]any, len(e.members))
	for i, m := range e.members {
		s.Enum[i] = string(m)
	}
	return s
}

// Codec wraps the enum as a registrable codec so structural decoding of
// types containing an enum field validates membership too.
func (e Enum[T]) Codec() Codec {
	return ForType[T](
		WithDecode[T](func(_ *Registry, v any) Result[T] { return e.Decode(v) }),
		WithEncode[T](func(_ *Registry, v T) any { return e.Encode(v) }),
		WithSchema[T](e.Schema()),
	)
}

// RequiredEnum extracts a mandatory enum-valued field. Absence fails
// with the caller-supplied message; a present non-member fails with
// "Invalid <Name>".
func RequiredEnum[T ~string](e Enum[T], obj any, name, msg string) Result[T] {
	raw, ok := fieldValue(obj, name)
	if !ok {
		return Invalid[T](msg)
	}
	return e.Decode(raw)
}

// OptionalEnum extracts an enum-valued field that may be absent.
func OptionalEnum[T ~string](e Enum[T], obj any, name string) Result[*T] {
	raw, ok := fieldValue(obj, name)
	if !ok {
		return Valid[*T](nil)
	}
	return Map(e.Decode(raw), func(v T) *T { return &v })
}

// DefaultEnum extracts an enum-valued field, substituting fallback when
// it is absent or null.
func DefaultEnum[T ~string](e Enum[T], obj any, name string, fallback T) Result[T] {
	raw, ok := fieldValue(obj, name)
	if !ok {
		return Valid(fallback)
	}
	return e.Decode(raw)
}
