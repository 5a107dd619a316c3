package fusion

import (
	"context"

	gferrors "github.com/vnykmshr/gostep/pkg/common/errors"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// Take yields at most the first n elements of s. Once n elements have been
// yielded the inner stream is not stepped again.
func Take[T any](s Stream[T], n int) Stream[T] {
	return New(func() Cursor[T] {
		return &takeCursor[T]{inner: s.Open(), remaining: n}
	}, s.SizeHint().Take(n))
}

type takeCursor[T any] struct {
	inner     Cursor[T]
	remaining int
}

func (c *takeCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	if c.remaining <= 0 {
		return step.Finished[T](), nil
	}
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	if st.IsYield() {
		c.remaining--
	}
	return st, nil
}

// Drop discards the first n elements of s.
func Drop[T any](s Stream[T], n int) Stream[T] {
	return New(func() Cursor[T] {
		return &dropCursor[T]{inner: s.Open(), remaining: n}
	}, s.SizeHint().Drop(n))
}

type dropCursor[T any] struct {
	inner     Cursor[T]
	remaining int
}

func (c *dropCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	if c.remaining > 0 && st.IsYield() {
		c.remaining--
		return step.Skipped[T](), nil
	}
	return st, nil
}

// Extract yields length elements of s starting at position start.
// Negative arguments are treated as 0.
func Extract[T any](s Stream[T], start, length int) Stream[T] {
	return Take(Drop(s, max(start, 0)), max(length, 0))
}

// Init yields every element of s except the last. Running it over an empty
// stream fails with an EmptyInputError.
func Init[T any](s Stream[T]) Stream[T] {
	return New(func() Cursor[T] {
		return &initCursor[T]{inner: s.Open()}
	}, s.SizeHint().Drop(1))
}

type initCursor[T any] struct {
	inner    Cursor[T]
	buffered T
	have     bool
	done     bool
}

func (c *initCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	if c.done {
		return step.Finished[T](), nil
	}
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	switch st.Kind() {
	case step.Yield:
		v, _ := st.Value()
		prev, had := c.buffered, c.have
		c.buffered, c.have = v, true
		if had {
			return step.Of(prev), nil
		}
		return step.Skipped[T](), nil
	case step.Skip:
		return st, nil
	default:
		c.done = true
		if !c.have {
			return st, gferrors.NewEmptyInputError("Init")
		}
		return st, nil
	}
}

// Tail yields every element of s except the first. Running it over an empty
// stream fails with an EmptyInputError.
func Tail[T any](s Stream[T]) Stream[T] {
	return New(func() Cursor[T] {
		return &tailCursor[T]{inner: s.Open()}
	}, s.SizeHint().Drop(1))
}

type tailCursor[T any] struct {
	inner   Cursor[T]
	dropped bool
	done    bool
}

func (c *tailCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	if c.done {
		return step.Finished[T](), nil
	}
	st, err := c.inner.Step(ctx)
	if err != nil || c.dropped {
		return st, err
	}
	switch st.Kind() {
	case step.Yield:
		c.dropped = true
		return step.Skipped[T](), nil
	case step.Skip:
		return st, nil
	default:
		c.done = true
		return st, gferrors.NewEmptyInputError("Tail")
	}
}
