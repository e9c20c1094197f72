package jsoncodec

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// Built-in named predicates for common string shapes, for use with
// [Check]. The name argument is the failure message, so callers keep
// control over the exact wording surfaced to clients.

// Email checks for a well-formed email address.
func Email(name string) Pred[string] {
	return P(name, govalidator.IsEmail)
}

// AbsoluteFQDN checks for a fully qualified, absolute DNS name, i.e.
// one ending with a trailing dot.
func AbsoluteFQDN(name string) Pred[string] {
	return P(name, func(s string) bool {
		return strings.HasSuffix(s, ".") && govalidator.IsDNSName(strings.TrimSuffix(s, "."))
	})
}

// UUID checks for a well-formed UUID.
func UUID(name string) Pred[string] {
	return P(name, govalidator.IsUUID)
}

// IPAddress checks for a well-formed IPv4 or IPv6 address.
func IPAddress(name string) Pred[string] {
	return P(name, govalidator.IsIP)
}

// NotBlank checks that the string has non-whitespace content.
func NotBlank(name string) Pred[string] {
	return P(name, func(s string) bool { return strings.TrimSpace(s) != "" })
}
