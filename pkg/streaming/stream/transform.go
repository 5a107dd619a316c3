package stream

import (
	"github.com/vnykmshr/gostep/pkg/streaming/fusion"
)

// Functions in this file change the element type, which Go methods cannot do.

// Map applies f to every element.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return wrap(fusion.Map(s.fused(), f))
}

// MapMaybe applies f to every element and keeps the results reported present.
func MapMaybe[T, U any](s Stream[T], f func(T) (U, bool)) Stream[U] {
	return wrap(fusion.MapMaybe(s.fused(), f))
}

// ConcatMap maps every element to a stream and concatenates the results.
func ConcatMap[T, U any](s Stream[T], f func(T) Stream[U]) Stream[U] {
	return wrap(fusion.ConcatMap(s.fused(), func(v T) fusion.Stream[U] {
		return f(v).fused()
	}))
}

// ZipWith combines a and b pairwise, stopping at the shorter.
func ZipWith[A, B, C any](a Stream[A], b Stream[B], f func(A, B) C) Stream[C] {
	return wrap(fusion.ZipWith(a.fused(), b.fused(), f))
}

// Zip pairs the elements of a and b.
func Zip[A, B any](a Stream[A], b Stream[B]) Stream[fusion.Pair[A, B]] {
	return wrap(fusion.Zip(a.fused(), b.fused()))
}

// ZipWith3 combines three streams element-wise.
func ZipWith3[A, B, C, D any](a Stream[A], b Stream[B], c Stream[C], f func(A, B, C) D) Stream[D] {
	return wrap(fusion.ZipWith3(a.fused(), b.fused(), c.fused(), f))
}

// Indexed pairs every element with its position.
func Indexed[T any](s Stream[T]) Stream[fusion.Pair[int, T]] {
	return wrap(fusion.Indexed(s.fused()))
}

// Uniq drops elements equal to their predecessor.
func Uniq[T comparable](s Stream[T]) Stream[T] {
	return wrap(fusion.Uniq(s.fused()))
}

// Distinct drops elements equal to any earlier element.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return wrap(fusion.Distinct(s.fused()))
}

// Prescanl yields z, f(z,x0), f(f(z,x0),x1), ... with one output per input.
func Prescanl[T, A any](s Stream[T], z A, f func(A, T) A) Stream[A] {
	return wrap(fusion.Prescanl(s.fused(), z, f))
}

// PrescanlDeferred is Prescanl with accumulators computed on demand.
func PrescanlDeferred[T, A any](s Stream[T], z A, f func(A, T) A) Stream[*fusion.Lazy[A]] {
	return wrap(fusion.PrescanlDeferred(s.fused(), z, f))
}

// Postscanl yields f(z,x0), f(f(z,x0),x1), ...
func Postscanl[T, A any](s Stream[T], z A, f func(A, T) A) Stream[A] {
	return wrap(fusion.Postscanl(s.fused(), z, f))
}

// Scanl yields z followed by every intermediate accumulator.
func Scanl[T, A any](s Stream[T], z A, f func(A, T) A) Stream[A] {
	return wrap(fusion.Scanl(s.fused(), z, f))
}

// Scanl1 is Scanl seeded with the first element.
func Scanl1[T any](s Stream[T], f func(T, T) T) Stream[T] {
	return wrap(fusion.Scanl1(s.fused(), f))
}
