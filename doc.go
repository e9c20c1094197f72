// Package jsoncodec converts between JSON trees and typed domain
// values, accumulating every validation failure for an input instead of
// stopping at the first.
//
// Codecs are built with [ForType] and collected once, at startup, into
// an immutable [Registry]:
//
//	reg := jsoncodec.NewRegistry(zoneCodec, recordTypes.Codec())
//
// A codec's decode is usually hand-written from the field extraction
// combinators, while its encode defaults to structural rendering:
//
//	var zoneCodec = jsoncodec.ForType[Zone](
//		jsoncodec.WithDecode[Zone](func(reg *jsoncodec.Registry, v any) jsoncodec.Result[Zone] {
//			name := jsoncodec.Check(
//				jsoncodec.Required[string](reg, v, "name", "Missing Zone.name"),
//				jsoncodec.AbsoluteFQDN("Zone name must be an absolute FQDN"))
//			email := jsoncodec.Required[string](reg, v, "email", "Missing Zone.email")
//			shared := jsoncodec.Default(reg, v, "shared", false)
//			return jsoncodec.Combine(func() Zone {
//				return Zone{Name: name.Get(), Email: email.Get(), Shared: shared.Get()}
//			}, name, email, shared)
//		}),
//	)
//
// Failures from every field are collected in declaration order and the
// constructor only runs when all of them succeeded. A failed decode
// yields an ordered, non-empty message list, rendered for clients with
// [RenderErrors].
//
// When a codec delegates structurally (the default encode, or a decode
// built without [WithDecode]), the delegation runs against the registry
// with that codec removed, so a type containing a field of its own type
// encodes without unbounded recursion.
package jsoncodec
