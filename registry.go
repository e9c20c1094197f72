package jsoncodec

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Registry is an immutable collection of codecs keyed by the domain
// type each one handles. It is built once at startup and shared
// read-only across all decode/encode calls; no locking is required.
type Registry struct {
	codecs map[reflect.Type]Codec

	// base is the full registry a WithoutSelf view derives from; nil
	// for the registry built by NewRegistry.
	base *Registry
}

// NewRegistry builds a registry from the built-in codecs plus the given
// custom codecs. Two codecs for the same type is a configuration error
// and panics. The built-in time codec (ISO8601) is preloaded unless a
// custom codec for time.Time is supplied.
func NewRegistry(custom ...Codec) *Registry {
	r := &Registry{codecs: make(map[reflect.Type]Codec, len(custom)+1)}
	for _, c := range custom {
		r.add(c)
	}
	if _, ok := r.codecs[timeType]; !ok {
		r.add(TimeCodec(ISO8601))
	}
	return r
}

func (r *Registry) add(c Codec) {
	t := c.Type()
	if _, dup := r.codecs[t]; dup {
		panic(fmt.Sprintf("jsoncodec: duplicate codec registered for type %s", typeName(t)))
	}
	r.codecs[t] = c
}

// full returns the registry a view derives from, or r itself.
func (r *Registry) full() *Registry {
	if r.base != nil {
		return r.base
	}
	return r
}

// Lookup returns the codec registered for exactly t. There is no
// subtype or interface fallback.
func (r *Registry) Lookup(t reflect.Type) (Codec, bool) {
	c, ok := r.codecs[t]
	return c, ok
}

// WithoutSelf returns a view of the full registry with exactly c
// excluded, compared by identity. Only structural encode/decode
// delegates through this view, where the same value would otherwise be
// re-dispatched to the codec that is already running; with duplicate
// registration ruled out, exclusion forces the structural fallback for
// the codec's own type. Custom decode functions receive the full
// registry instead: field extraction descends into strictly smaller
// subtrees, so re-entering the same codec there always terminates.
func (r *Registry) WithoutSelf(c Codec) *Registry {
	full := r.full()
	out := &Registry{codecs: make(map[reflect.Type]Codec, len(full.codecs)), base: full}
	for t, rc := range full.codecs {
		if rc != c {
			out.codecs[t] = rc
		}
	}
	return out
}

// Types returns the registered domain types sorted by name, for
// diagnostics and startup logging by callers.
func (r *Registry) Types() []reflect.Type {
	out := make([]reflect.Type, 0, len(r.codecs))
	for t := range r.codecs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return typeName(out[i]) < typeName(out[j]) })
	return out
}

// Schemas collects the OpenAPI schemas of all codecs built with
// [WithSchema], keyed by type name, for documentation generation.
func (r *Registry) Schemas() openapi3.Schemas {
	out := openapi3.Schemas{}
	for t, c := range r.codecs {
		if s := c.docSchema(); s != nil {
			out[typeName(t)] = openapi3.NewSchemaRef("", s)
		}
	}
	return out
}

// Decode converts a JSON tree value into T using the registered codec.
// A missing codec is a configuration error and panics; it must surface
// at integration time, never as a per-request validation failure.
func Decode[T any](reg *Registry, v any) Result[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	c, ok := reg.Lookup(t)
	if !ok {
		panic("jsoncodec: no codec for type " + typeName(t))
	}
	val, errs := c.decodeAny(reg, v)
	if len(errs) > 0 {
		return invalidList[T](errs)
	}
	return Valid(val.(T))
}

// Encode converts val into a JSON tree value using the registered
// codec. Encoding does not validate; a missing codec panics.
func Encode[T any](reg *Registry, val T) any {
	t := reflect.TypeOf((*T)(nil)).Elem()
	c, ok := reg.Lookup(t)
	if !ok {
		panic("jsoncodec: no codec for type " + typeName(t))
	}
	return c.encodeAny(reg, val)
}
