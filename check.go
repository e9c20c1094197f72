package jsoncodec

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Pred is a named predicate applied to a successfully extracted value.
// The name is the failure message, verbatim, when the predicate is
// false.
type Pred[T any] struct {
	Name string
	Fn   func(T) bool
}

// P builds a named predicate.
func P[T any](name string, fn func(T) bool) Pred[T] {
	return Pred[T]{Name: name, Fn: fn}
}

// RulePred adapts an ozzo-validation rule into a named predicate, so
// the existing rule catalog (Length, Match, Min, ...) plugs into Check.
func RulePred[T any](name string, rule validation.Rule) Pred[T] {
	return Pred[T]{Name: name, Fn: func(v T) bool { return rule.Validate(v) == nil }}
}

// Check applies named predicates to an extraction result. Predicates
// are independent: each one is evaluated against the original value,
// and every failing name is collected, deduplicated, and returned
// together. A base that is already a failure passes through unchanged;
// there is no value to test.
func Check[T any](r Result[T], preds ...Pred[T]) Result[T] {
	if !r.IsValid() {
		return r
	}
	out := r
	for _, p := range preds {
		if !p.Fn(r.value) {
			out = MergeFailures(out, Invalid[T](p.Name))
		}
	}
	if out.IsValid() {
		return r
	}
	return invalidList[T](distinct(out.errs))
}

// CheckIf applies the predicates only when cond is true; otherwise the
// base passes through unchanged.
func CheckIf[T any](cond bool, r Result[T], preds ...Pred[T]) Result[T] {
	if !cond {
		return r
	}
	return Check(r, preds...)
}

// distinct collapses repeated messages, keeping first-occurrence order.
func distinct(msgs []string) []string {
	seen := make(map[string]struct{}, len(msgs))
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
