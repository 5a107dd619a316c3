package fusion

import (
	"cmp"
	"context"

	gferrors "github.com/vnykmshr/gostep/pkg/common/errors"
)

// Foldl reduces s from the left, starting from z. The accumulator is
// evaluated at every step.
func Foldl[T, A any](ctx context.Context, s Stream[T], z A, f func(A, T) A) (A, error) {
	acc := z
	err := drive(ctx, s.Open(), func(v T) bool {
		acc = f(acc, v)
		return true
	})
	if err != nil {
		var zero A
		return zero, err
	}
	return acc, nil
}

// FoldlM reduces s from the left with an effectful combining function.
func FoldlM[T, A any](ctx context.Context, s Stream[T], z A, f func(context.Context, A, T) (A, error)) (A, error) {
	acc := z
	var failure error
	err := drive(ctx, s.Open(), func(v T) bool {
		acc, failure = f(ctx, acc, v)
		return failure == nil
	})
	if err == nil {
		err = failure
	}
	if err != nil {
		var zero A
		return zero, err
	}
	return acc, nil
}

// Foldl1 reduces s from the left, seeding with its first element.
// It fails with an EmptyInputError when s is empty.
func Foldl1[T any](ctx context.Context, s Stream[T], f func(T, T) T) (T, error) {
	c := s.Open()
	first, ok, err := nextYield(ctx, c)
	if err != nil {
		return first, err
	}
	if !ok {
		return first, gferrors.NewEmptyInputError("Foldl1")
	}
	acc := first
	err = drive(ctx, c, func(v T) bool {
		acc = f(acc, v)
		return true
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return acc, nil
}

// FoldlDeferred reduces s from the left without evaluating f. The stream is
// consumed in full; the returned Lazy computes the result when forced.
func FoldlDeferred[T, A any](ctx context.Context, s Stream[T], z A, f func(A, T) A) (*Lazy[A], error) {
	acc := Ready(z)
	err := drive(ctx, s.Open(), func(v T) bool {
		prev := acc
		acc = Defer(func() A { return f(prev.Force(), v) })
		return true
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Foldr reduces s from the right, starting from z. The elements are
// buffered first, so s must be finite.
func Foldr[T, A any](ctx context.Context, s Stream[T], z A, f func(T, A) A) (A, error) {
	items, err := ToSlice(ctx, s)
	if err != nil {
		var zero A
		return zero, err
	}
	acc := z
	for i := len(items) - 1; i >= 0; i-- {
		acc = f(items[i], acc)
	}
	return acc, nil
}

// Foldr1 reduces s from the right, seeding with its last element.
// It fails with an EmptyInputError when s is empty.
func Foldr1[T any](ctx context.Context, s Stream[T], f func(T, T) T) (T, error) {
	items, err := ToSlice(ctx, s)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(items) == 0 {
		var zero T
		return zero, gferrors.NewEmptyInputError("Foldr1")
	}
	acc := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		acc = f(items[i], acc)
	}
	return acc, nil
}

// FoldrLazy reduces s from the right, handing f the rest of the fold as a
// Lazy. The stream is only stepped when f forces that value, so f can stop
// early and FoldrLazy then works on infinite streams. Every forced level
// adds a stack frame.
func FoldrLazy[T, A any](ctx context.Context, s Stream[T], z A, f func(T, *Lazy[A]) A) (A, error) {
	c := s.Open()
	var failure error
	var rest func() A
	rest = func() A {
		if failure != nil {
			return z
		}
		v, ok, err := nextYield(ctx, c)
		if err != nil {
			failure = err
			return z
		}
		if !ok {
			return z
		}
		return f(v, Defer(rest))
	}
	result := rest()
	if failure != nil {
		var zero A
		return zero, failure
	}
	return result, nil
}

// ToSlice collects the elements of s. The slice is presized from the size hint.
func ToSlice[T any](ctx context.Context, s Stream[T]) ([]T, error) {
	out := make([]T, 0, s.SizeHint().Capacity())
	err := drive(ctx, s.Open(), func(v T) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Length counts the elements of s.
func Length[T any](ctx context.Context, s Stream[T]) (int, error) {
	n := 0
	err := drive(ctx, s.Open(), func(T) bool {
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Null reports whether s is empty. It stops at the first element.
func Null[T any](ctx context.Context, s Stream[T]) (bool, error) {
	_, ok, err := nextYield(ctx, s.Open())
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// ForEach calls fn on every element of s.
func ForEach[T any](ctx context.Context, s Stream[T], fn func(T)) error {
	return drive(ctx, s.Open(), func(v T) bool {
		fn(v)
		return true
	})
}

// ForEachM calls fn on every element of s and stops at the first failure.
func ForEachM[T any](ctx context.Context, s Stream[T], fn func(context.Context, T) error) error {
	var failure error
	err := drive(ctx, s.Open(), func(v T) bool {
		failure = fn(ctx, v)
		return failure == nil
	})
	if err != nil {
		return err
	}
	return failure
}

// All reports whether every element satisfies p. It stops at the first
// element that does not.
func All[T any](ctx context.Context, s Stream[T], p func(T) bool) (bool, error) {
	result := true
	err := drive(ctx, s.Open(), func(v T) bool {
		result = p(v)
		return result
	})
	if err != nil {
		return false, err
	}
	return result, nil
}

// Any reports whether some element satisfies p. It stops at the first
// element that does.
func Any[T any](ctx context.Context, s Stream[T], p func(T) bool) (bool, error) {
	result := false
	err := drive(ctx, s.Open(), func(v T) bool {
		result = p(v)
		return !result
	})
	if err != nil {
		return false, err
	}
	return result, nil
}

// And reports whether every element of s is true.
func And(ctx context.Context, s Stream[bool]) (bool, error) {
	return All(ctx, s, func(b bool) bool { return b })
}

// Or reports whether some element of s is true.
func Or(ctx context.Context, s Stream[bool]) (bool, error) {
	return Any(ctx, s, func(b bool) bool { return b })
}

// Minimum returns the smallest element of s, or an EmptyInputError.
func Minimum[T cmp.Ordered](ctx context.Context, s Stream[T]) (T, error) {
	return extremum(ctx, s, "Minimum", func(a, b T) bool { return cmp.Less(b, a) })
}

// Maximum returns the largest element of s, or an EmptyInputError.
func Maximum[T cmp.Ordered](ctx context.Context, s Stream[T]) (T, error) {
	return extremum(ctx, s, "Maximum", func(a, b T) bool { return cmp.Less(a, b) })
}

// MinimumBy returns the first smallest element of s under compare.
func MinimumBy[T any](ctx context.Context, s Stream[T], compare func(T, T) int) (T, error) {
	return extremum(ctx, s, "MinimumBy", func(a, b T) bool { return compare(b, a) < 0 })
}

// MaximumBy returns the last largest element of s under compare.
func MaximumBy[T any](ctx context.Context, s Stream[T], compare func(T, T) int) (T, error) {
	return extremum(ctx, s, "MaximumBy", func(a, b T) bool { return compare(b, a) >= 0 })
}

// extremum keeps the current best element and replaces it whenever
// replace(best, candidate) holds.
func extremum[T any](ctx context.Context, s Stream[T], op string, replace func(best, candidate T) bool) (T, error) {
	c := s.Open()
	best, ok, err := nextYield(ctx, c)
	if err != nil {
		return best, err
	}
	if !ok {
		return best, gferrors.NewEmptyInputError(op)
	}
	err = drive(ctx, c, func(v T) bool {
		if replace(best, v) {
			best = v
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return best, nil
}
