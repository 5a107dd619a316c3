package fusion

import (
	"context"

	gferrors "github.com/vnykmshr/gostep/pkg/common/errors"
)

// Head returns the first element of s. Only the steps up to that element
// are performed. It fails with an EmptyInputError when s is empty.
func Head[T any](ctx context.Context, s Stream[T]) (T, error) {
	v, ok, err := nextYield(ctx, s.Open())
	if err != nil {
		return v, err
	}
	if !ok {
		return v, gferrors.NewEmptyInputError("Head")
	}
	return v, nil
}

// Last returns the final element of s. It fails with an EmptyInputError
// when s is empty.
func Last[T any](ctx context.Context, s Stream[T]) (T, error) {
	var last T
	seen := false
	err := drive(ctx, s.Open(), func(v T) bool {
		last, seen = v, true
		return true
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if !seen {
		return last, gferrors.NewEmptyInputError("Last")
	}
	return last, nil
}

// Index returns the element at 0-based position i. A negative i fails
// without stepping s; an i past the end fails once s is exhausted.
func Index[T any](ctx context.Context, s Stream[T], i int) (T, error) {
	v, ok, err := IndexOK(ctx, s, i)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, gferrors.NewIndexError("Index", i)
	}
	return v, nil
}

// IndexOK is Index with a presence flag instead of an EmptyInputError.
func IndexOK[T any](ctx context.Context, s Stream[T], i int) (T, bool, error) {
	var zero T
	if i < 0 {
		return zero, false, nil
	}
	c := s.Open()
	for ; ; i-- {
		v, ok, err := nextYield(ctx, c)
		if err != nil || !ok {
			return zero, false, err
		}
		if i == 0 {
			return v, true, nil
		}
	}
}

// Elem reports whether x occurs in s. It stops at the first match.
func Elem[T comparable](ctx context.Context, s Stream[T], x T) (bool, error) {
	return Any(ctx, s, func(v T) bool { return v == x })
}

// NotElem reports whether x does not occur in s.
func NotElem[T comparable](ctx context.Context, s Stream[T], x T) (bool, error) {
	found, err := Elem(ctx, s, x)
	return !found && err == nil, err
}

// Find returns the first element satisfying p. ok is false when none does.
func Find[T any](ctx context.Context, s Stream[T], p func(T) bool) (T, bool, error) {
	var found T
	ok := false
	err := drive(ctx, s.Open(), func(v T) bool {
		if p(v) {
			found, ok = v, true
			return false
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return found, ok, nil
}

// FindIndex returns the position of the first element satisfying p, or -1.
func FindIndex[T any](ctx context.Context, s Stream[T], p func(T) bool) (int, error) {
	idx, i := -1, 0
	err := drive(ctx, s.Open(), func(v T) bool {
		if p(v) {
			idx = i
			return false
		}
		i++
		return true
	})
	if err != nil {
		return -1, err
	}
	return idx, nil
}
