package fusion

import (
	"context"
	"errors"
	"testing"

	"github.com/vnykmshr/gostep/internal/testutil"
	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

var errBoom = errors.New("boom")

func collect[T any](t *testing.T, s Stream[T]) []T {
	t.Helper()
	out, err := ToSlice(context.Background(), s)
	testutil.AssertNoError(t, err)
	return out
}

// failing yields xs and then fails with errBoom.
func failing[T any](xs ...T) Stream[T] {
	return Append(FromSlice(xs), New(func() Cursor[T] {
		return CursorFunc[T](func(context.Context) (step.Step[T], error) {
			return step.Finished[T](), errBoom
		})
	}, sizehint.Unknown()))
}

// skippy interleaves a Skip before every element of xs.
func skippy[T any](xs ...T) Stream[T] {
	return New(func() Cursor[T] {
		i, skipped := 0, false
		return CursorFunc[T](func(context.Context) (step.Step[T], error) {
			if i >= len(xs) {
				return step.Finished[T](), nil
			}
			if !skipped {
				skipped = true
				return step.Skipped[T](), nil
			}
			skipped = false
			i++
			return step.Of(xs[i-1]), nil
		})
	}, sizehint.Exact(len(xs)))
}

// counted records how many elements of s were pulled.
func counted[T any](s Stream[T], pulls *int) Stream[T] {
	return Peek(s, func(T) { *pulls++ })
}

func naturals() Stream[int] {
	return Unfold(func(n int) (int, int, bool) { return n, n + 1, true }, 0)
}

func isEven(x int) bool { return x%2 == 0 }
