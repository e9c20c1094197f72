package jsoncodec

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
)

var timeType = reflect.TypeOf((*time.Time)(nil)).Elem()

// typeName returns the bare name used in error messages and the
// schema map; unnamed types fall back to their full string form.
func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// jsonFieldName returns the json tag name if present, otherwise the Go
// field name, or "-" for skipped fields.
func jsonFieldName(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" {
		return tag
	}
	return sf.Name
}

// extractValue converts a raw JSON tree value into an instance of t,
// dispatching through the registry. It returns either the converted
// value, a list of validation failures from a nested codec (propagated
// unmodified), or a low-level coercion error for the caller to convert
// into a message at its own boundary. Exactly one of the three is set.
func extractValue(reg *Registry, t reflect.Type, raw any) (any, []string, error) {
	if c, ok := reg.Lookup(t); ok {
		v, errs := c.decodeAny(reg, raw)
		if len(errs) > 0 {
			return nil, errs, nil
		}
		return v, nil, nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		v, errs, err := extractValue(reg, t.Elem(), raw)
		if len(errs) > 0 || err != nil {
			return nil, errs, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(reflect.ValueOf(v))
		return p.Interface(), nil, nil

	case reflect.Slice:
		arr, ok := raw.([]any)
		if !ok || !needsDispatch(reg, t.Elem()) {
			return coerceTo(t, raw)
		}
		out := reflect.MakeSlice(t, 0, len(arr))
		var errs []string
		var firstErr error
		for _, e := range arr {
			v, es, err := extractValue(reg, t.Elem(), e)
			errs = append(errs, es...)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			if len(es) == 0 {
				out = reflect.Append(out, reflect.ValueOf(v))
			}
		}
		if len(errs) > 0 || firstErr != nil {
			return nil, errs, firstErr
		}
		return out.Interface(), nil, nil

	case reflect.Struct:
		if t == timeType {
			return coerceTo(t, raw)
		}
		return structuralDecode(reg, t, raw)

	default:
		return coerceTo(t, raw)
	}
}

// needsDispatch reports whether values of t must go through the
// registry or structural decoding rather than plain coercion.
func needsDispatch(reg *Registry, t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if _, ok := reg.Lookup(t); ok {
		return true
	}
	switch t.Kind() {
	case reflect.Struct:
		return t != timeType
	case reflect.Slice:
		return needsDispatch(reg, t.Elem())
	}
	return false
}

// structuralDecode converts a JSON object into a struct of type t,
// field by field through the registry. Absent or null fields are left
// at their zero value: requiredness belongs to the field extraction
// combinators, not to structural decoding. Nested validation failures
// accumulate across all fields in declaration order.
func structuralDecode(reg *Registry, t reflect.Type, raw any) (any, []string, error) {
	if t.Kind() != reflect.Struct {
		return coerceTo(t, raw)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("expected JSON object, got %T", raw)
	}

	out := reflect.New(t).Elem()
	var errs []string
	var firstErr error
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			v, es, err := structuralDecode(reg, sf.Type, raw)
			errs = append(errs, es...)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			if len(es) == 0 {
				out.Field(i).Set(reflect.ValueOf(v))
			}
			continue
		}
		name := jsonFieldName(sf)
		if name == "-" {
			continue
		}
		fraw, ok := m[name]
		if !ok || fraw == nil {
			continue
		}
		v, es, err := extractValue(reg, sf.Type, fraw)
		errs = append(errs, es...)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("field %q: %w", name, err)
			}
			continue
		}
		if len(es) == 0 {
			out.Field(i).Set(reflect.ValueOf(v))
		}
	}
	if len(errs) > 0 || firstErr != nil {
		return nil, errs, firstErr
	}
	return out.Interface(), nil, nil
}

// encodeValue renders a domain value into a JSON tree, dispatching
// nested values through the registry so types with custom codecs keep
// their custom shapes. Termination is bounded by the depth of the value
// being encoded: the caller passes the adjusted registry, so a value of
// the running codec's own type always takes the structural path here.
func encodeValue(reg *Registry, rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	if c, ok := reg.Lookup(rv.Type()); ok {
		return c.encodeAny(reg, rv.Interface())
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return encodeValue(reg, rv.Elem())

	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte keeps its base64 string form
			return encodeFallback(rv.Interface())
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = encodeValue(reg, rv.Index(i))
		}
		return out

	case reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = encodeValue(reg, rv.Index(i))
		}
		return out

	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		for _, k := range rv.MapKeys() {
			out[fmt.Sprint(k.Interface())] = encodeValue(reg, rv.MapIndex(k))
		}
		return out

	case reflect.Struct:
		if rv.Type() == timeType {
			return encodeFallback(rv.Interface())
		}
		out := map[string]any{}
		for i := 0; i < rv.NumField(); i++ {
			sf := rv.Type().Field(i)
			if !sf.IsExported() {
				continue
			}
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				if inner, ok := encodeValue(reg, rv.Field(i)).(map[string]any); ok {
					for k, v := range inner {
						out[k] = v
					}
				}
				continue
			}
			name := jsonFieldName(sf)
			if name == "-" {
				continue
			}
			out[name] = encodeValue(reg, rv.Field(i))
		}
		return out

	default:
		return rv.Interface()
	}
}

// coerceTo converts a raw tree value into an instance of t through the
// JSON layer. This is the single boundary where low-level parser errors
// originate; callers convert the error into a validation message and
// never let it escape further.
func coerceTo(t reflect.Type, raw any) (any, []string, error) {
	b, err := gojson.Marshal(raw)
	if err != nil {
		return nil, nil, err
	}
	p := reflect.New(t)
	if err := gojson.Unmarshal(b, p.Interface()); err != nil {
		return nil, nil, err
	}
	return p.Elem().Interface(), nil, nil
}

// encodeFallback renders a value the JSON layer already knows how to
// marshal (e.g. time.Time when no time codec is in view) into a tree.
func encodeFallback(v any) any {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := gojson.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}
