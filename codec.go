package jsoncodec

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// Codec converts between a JSON tree value and one domain type. Codecs
// are created with [ForType] and collected into a [Registry] at process
// start; they hold no per-request state and are safe for concurrent use.
type Codec interface {
	// Type is the domain type this codec handles.
	Type() reflect.Type

	decodeAny(reg *Registry, v any) (any, []string)
	encodeAny(reg *Registry, val any) any
	docSchema() *openapi3.Schema
}

// DecodeFunc converts a JSON tree value into T. The registry passed in
// is the full registry: field extraction always descends into a
// strictly smaller subtree, so a field of the codec's own type is
// dispatched back through the codec and validated like any other
// nested object. Self-exclusion applies only where the same value is
// re-dispatched, i.e. the structural default paths.
type DecodeFunc[T any] func(reg *Registry, v any) Result[T]

// EncodeFunc converts T into a JSON tree value. The registry passed in
// is the adjusted view with this codec removed.
type EncodeFunc[T any] func(reg *Registry, val T) any

// CodecOption configures a codec built by [ForType].
type CodecOption[T any] func(*typedCodec[T])

// WithDecode sets the custom decode function. Most codecs supply this
// and leave encoding structural.
func WithDecode[T any](fn DecodeFunc[T]) CodecOption[T] {
	return func(c *typedCodec[T]) { c.decode = fn }
}

// WithEncode sets a custom encode function, for types whose JSON shape
// is not the structural field-by-field rendering.
func WithEncode[T any](fn EncodeFunc[T]) CodecOption[T] {
	return func(c *typedCodec[T]) { c.encode = fn }
}

// WithSchema attaches an OpenAPI schema describing the codec's JSON
// shape, surfaced through [Registry.Schemas].
func WithSchema[T any](s *openapi3.Schema) CodecOption[T] {
	return func(c *typedCodec[T]) { c.doc = s }
}

// ForType builds a codec for T. Without [WithDecode] the codec decodes
// structurally through the adjusted registry, collapsing any low-level
// shape failure into the single message "Failed to parse <TypeName>".
// Without [WithEncode] it encodes structurally the same way, so nested
// fields with their own codecs keep their custom shapes.
func ForType[T any](opts ...CodecOption[T]) Codec {
	c := &typedCodec[T]{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type typedCodec[T any] struct {
	decode DecodeFunc[T]
	encode EncodeFunc[T]
	doc    *openapi3.Schema
}

func (c *typedCodec[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (c *typedCodec[T]) docSchema() *openapi3.Schema { return c.doc }

func (c *typedCodec[T]) decodeAny(reg *Registry, v any) (any, []string) {
	if c.decode != nil {
		r := c.decode(reg.full(), v)
		if !r.IsValid() {
			return nil, r.Errors()
		}
		return r.Get(), nil
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	out, errs, err := structuralDecode(reg.WithoutSelf(c), t, v)
	if len(errs) > 0 {
		return nil, errs
	}
	if err != nil {
		return nil, []string{"Failed to parse " + typeName(t)}
	}
	return out, nil
}

func (c *typedCodec[T]) encodeAny(reg *Registry, val any) any {
	adj := reg.WithoutSelf(c)
	if c.encode != nil {
		return c.encode(adj, val.(T))
	}
	return encodeValue(adj, reflect.ValueOf(val))
}
