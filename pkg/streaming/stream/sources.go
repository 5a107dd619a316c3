package stream

import (
	"github.com/vnykmshr/gostep/pkg/streaming/fusion"
	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// Empty returns a stream with no elements.
func Empty[T any]() Stream[T] {
	return wrap(fusion.Empty[T]())
}

// Singleton returns a stream with exactly one element.
func Singleton[T any](x T) Stream[T] {
	return wrap(fusion.Singleton(x))
}

// Replicate returns n copies of x. Negative n is treated as 0.
func Replicate[T any](n int, x T) Stream[T] {
	return wrap(fusion.Replicate(n, x))
}

// FromSlice returns a stream over xs. The slice is not copied.
func FromSlice[T any](xs []T) Stream[T] {
	return wrap(fusion.FromSlice(xs))
}

// FromSliceN returns a stream over at most the first n elements of xs.
func FromSliceN[T any](n int, xs []T) Stream[T] {
	return wrap(fusion.FromSliceN(n, xs))
}

// Generate returns f(0), f(1), ..., f(n-1).
func Generate[T any](n int, f func(int) T) Stream[T] {
	return wrap(fusion.Generate(n, f))
}

// IterateN returns x, f(x), f(f(x)), ... of length n.
func IterateN[T any](n int, f func(T) T, x T) Stream[T] {
	return wrap(fusion.IterateN(n, f, x))
}

// EnumFromStepN returns x, x+by, x+2*by, ... of length n.
func EnumFromStepN[T fusion.Number](x, by T, n int) Stream[T] {
	return wrap(fusion.EnumFromStepN(x, by, n))
}

// Unfold builds a stream from seed. f returns the next element, the next
// seed and true, or false to end the stream. The stream may be infinite.
func Unfold[T, S any](f func(S) (T, S, bool), seed S) Stream[T] {
	return wrap(fusion.Unfold(f, seed))
}

// UnfoldN is Unfold limited to at most n elements.
func UnfoldN[T, S any](n int, f func(S) (T, S, bool), seed S) Stream[T] {
	return wrap(fusion.UnfoldN(n, f, seed))
}

// FromAutomaton builds a stream directly from a state-threading step function.
// fn must be pure: it is called again from init on every run.
func FromAutomaton[T, S any](init S, fn func(S) (step.Step[T], S), hint sizehint.Hint) Stream[T] {
	return wrap(fusion.FromAutomaton(init, fn, hint))
}

// Cons returns x followed by the elements of s.
func Cons[T any](x T, s Stream[T]) Stream[T] {
	return wrap(fusion.Cons(x, s.fused()))
}

// Concat returns the elements of every stream in order.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	fused := make([]fusion.Stream[T], len(streams))
	for i, s := range streams {
		fused[i] = s.fused()
	}
	return wrap(fusion.Concat(fused...))
}
