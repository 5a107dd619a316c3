package stream

import (
	"cmp"

	"github.com/vnykmshr/gostep/pkg/streaming/fusion"
)

// Foldl reduces s from the left, starting from z.
func Foldl[T, A any](s Stream[T], z A, f func(A, T) A) (A, error) {
	return fusion.Foldl(run(), s.fused(), z, f)
}

// Foldr reduces s from the right, starting from z. s must be finite.
func Foldr[T, A any](s Stream[T], z A, f func(T, A) A) (A, error) {
	return fusion.Foldr(run(), s.fused(), z, f)
}

// FoldlDeferred consumes s and returns the left fold as an unevaluated Lazy.
func FoldlDeferred[T, A any](s Stream[T], z A, f func(A, T) A) (*fusion.Lazy[A], error) {
	return fusion.FoldlDeferred(run(), s.fused(), z, f)
}

// FoldrLazy reduces s from the right with a lazily evaluated right argument.
// f may ignore the argument to stop early, even on an infinite stream.
func FoldrLazy[T, A any](s Stream[T], z A, f func(T, *fusion.Lazy[A]) A) (A, error) {
	return fusion.FoldrLazy(run(), s.fused(), z, f)
}

// Elem reports whether x occurs in s.
func Elem[T comparable](s Stream[T], x T) (bool, error) {
	return fusion.Elem(run(), s.fused(), x)
}

// NotElem reports whether x does not occur in s.
func NotElem[T comparable](s Stream[T], x T) (bool, error) {
	return fusion.NotElem(run(), s.fused(), x)
}

// And reports whether every element is true.
func And(s Stream[bool]) (bool, error) {
	return fusion.And(run(), s.fused())
}

// Or reports whether some element is true.
func Or(s Stream[bool]) (bool, error) {
	return fusion.Or(run(), s.fused())
}

// Minimum returns the smallest element.
func Minimum[T cmp.Ordered](s Stream[T]) (T, error) {
	return fusion.Minimum(run(), s.fused())
}

// Maximum returns the largest element.
func Maximum[T cmp.Ordered](s Stream[T]) (T, error) {
	return fusion.Maximum(run(), s.fused())
}

// MinimumBy returns the first smallest element under compare.
func MinimumBy[T any](s Stream[T], compare func(T, T) int) (T, error) {
	return fusion.MinimumBy(run(), s.fused(), compare)
}

// MaximumBy returns the last largest element under compare.
func MaximumBy[T any](s Stream[T], compare func(T, T) int) (T, error) {
	return fusion.MaximumBy(run(), s.fused(), compare)
}

// Eq reports whether a and b yield the same elements. Neither side is
// buffered and the walk stops at the first difference.
func Eq[T comparable](a, b Stream[T]) (bool, error) {
	return fusion.Eq(run(), a.fused(), b.fused())
}

// EqBy is Eq with a custom element equality.
func EqBy[A, B any](a Stream[A], b Stream[B], eq func(A, B) bool) (bool, error) {
	return fusion.EqBy(run(), a.fused(), b.fused(), eq)
}

// Cmp compares a and b lexicographically and returns -1, 0 or +1.
func Cmp[T cmp.Ordered](a, b Stream[T]) (int, error) {
	return fusion.Cmp(run(), a.fused(), b.fused())
}

// CmpBy is Cmp with a custom element comparison.
func CmpBy[A, B any](a Stream[A], b Stream[B], compare func(A, B) int) (int, error) {
	return fusion.CmpBy(run(), a.fused(), b.fused(), compare)
}
