// Package step defines the result of advancing a stream automaton by one call.
//
// A step is exactly one of:
//   - Yield: an element was produced
//   - Skip: the automaton advanced without producing an element
//   - Done: the sequence is exhausted
//
// Skip lets filtering and dropping combinators discard positions without
// returning control to the consumer for each discarded element.
package step

// Kind identifies which of the three step results a Step holds.
type Kind uint8

const (
	// Done reports an exhausted automaton. The zero Step is Done.
	Done Kind = iota

	// Yield reports a produced element.
	Yield

	// Skip reports a state transition with no visible element.
	Skip
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Yield:
		return "Yield"
	case Skip:
		return "Skip"
	default:
		return "Done"
	}
}

// Step is the outcome of one automaton call. The next state is not part of
// the value: it is threaded by whoever owns the automaton.
type Step[T any] struct {
	value T
	kind  Kind
}

// Of returns a Yield step carrying v.
func Of[T any](v T) Step[T] {
	return Step[T]{value: v, kind: Yield}
}

// Skipped returns a Skip step.
func Skipped[T any]() Step[T] {
	return Step[T]{kind: Skip}
}

// Finished returns a Done step.
func Finished[T any]() Step[T] {
	return Step[T]{}
}

// Kind returns the step's variant.
func (s Step[T]) Kind() Kind {
	return s.kind
}

// Value returns the yielded element and true for a Yield step, the zero
// value and false otherwise.
func (s Step[T]) Value() (T, bool) {
	if s.kind != Yield {
		var zero T
		return zero, false
	}
	return s.value, true
}

// IsYield reports whether the step produced an element.
func (s Step[T]) IsYield() bool { return s.kind == Yield }

// IsSkip reports whether the step advanced without producing an element.
func (s Step[T]) IsSkip() bool { return s.kind == Skip }

// IsDone reports whether the automaton is exhausted.
func (s Step[T]) IsDone() bool { return s.kind == Done }

// Map applies f to a yielded element; Skip and Done pass through unchanged.
func Map[T, U any](s Step[T], f func(T) U) Step[U] {
	if s.kind == Yield {
		return Of(f(s.value))
	}
	return Step[U]{kind: s.kind}
}
