package jsoncodec

import "fmt"

// Result is the outcome of validating one value: either a success
// carrying the value, or a failure carrying an ordered, non-empty list
// of human-readable messages. Field-level Results are combined with
// [Collect] or [Combine] so every failure in the input is reported, not
// just the first one encountered.
type Result[T any] struct {
	value T
	errs  []string
}

// Valid returns a successful Result carrying v.
func Valid[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Invalid returns a failed Result with the given messages.
// Panics when called with no messages; a failure without a reason is a
// programming error, not a validation outcome.
func Invalid[T any](msgs ...string) Result[T] {
	if len(msgs) == 0 {
		panic("jsoncodec: Invalid requires at least one message")
	}
	return Result[T]{errs: msgs}
}

// invalidList wraps an already-collected message list without copying.
// Callers guarantee the list is non-empty.
func invalidList[T any](msgs []string) Result[T] {
	if len(msgs) == 0 {
		panic("jsoncodec: Invalid requires at least one message")
	}
	return Result[T]{errs: msgs}
}

// IsValid reports whether r is a success.
func (r Result[T]) IsValid() bool { return len(r.errs) == 0 }

// Get returns the success value, or the zero value when r is a failure.
// Callers combining several Results should gate on [Collect] first.
func (r Result[T]) Get() T { return r.value }

// Errors returns the failure messages in order, or nil for a success.
func (r Result[T]) Errors() []string { return r.errs }

// failures implements Failer.
func (r Result[T]) failures() []string { return r.errs }

// Map transforms the success value and passes failures through unchanged.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.IsValid() {
		return invalidList[B](r.errs)
	}
	return Valid(f(r.value))
}

// MergeFailures combines two Results of the same type, favoring failure:
// two failures concatenate their message lists in order, a single
// failure wins over a success, and two successes yield a.
func MergeFailures[T any](a, b Result[T]) Result[T] {
	switch {
	case !a.IsValid() && !b.IsValid():
		merged := make([]string, 0, len(a.errs)+len(b.errs))
		merged = append(merged, a.errs...)
		merged = append(merged, b.errs...)
		return invalidList[T](merged)
	case !a.IsValid():
		return a
	case !b.IsValid():
		return b
	default:
		return a
	}
}

// Failer is any validation outcome that can report its failures.
// Every Result[T] is a Failer regardless of T, which is what lets
// [Collect] aggregate differently-typed field Results.
type Failer interface {
	failures() []string
}

// Collect gathers the failure messages of the given Results in argument
// order. An empty return means every part succeeded.
func Collect(parts ...Failer) []string {
	var errs []string
	for _, p := range parts {
		errs = append(errs, p.failures()...)
	}
	return errs
}

// Combine builds a value from several field Results. The constructor is
// invoked only when every part succeeded; otherwise the aggregated
// failure list is returned and ctor never runs.
//
//	name := jsoncodec.Required[string](reg, obj, "name", "Missing Zone.name")
//	email := jsoncodec.Required[string](reg, obj, "email", "Missing Zone.email")
//	return jsoncodec.Combine(func() Zone {
//		return Zone{Name: name.Get(), Email: email.Get()}
//	}, name, email)
func Combine[T any](ctor func() T, parts ...Failer) Result[T] {
	if errs := Collect(parts...); len(errs) > 0 {
		return invalidList[T](errs)
	}
	return Valid(ctor())
}

// String renders the Result for debugging output.
func (r Result[T]) String() string {
	if r.IsValid() {
		return fmt.Sprintf("Valid(%v)", r.value)
	}
	return fmt.Sprintf("Invalid(%v)", r.errs)
}
