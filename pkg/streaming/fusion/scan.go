package fusion

import (
	"context"

	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// Prescanl yields the running left fold of s before each element is
// combined: z, f(z,x0), f(f(z,x0),x1), ... The final accumulator is not
// yielded, so the output has the same length as s.
func Prescanl[T, A any](s Stream[T], z A, f func(A, T) A) Stream[A] {
	return New(func() Cursor[A] {
		return &prescanCursor[T, A]{inner: s.Open(), acc: z, f: f}
	}, s.SizeHint())
}

type prescanCursor[T, A any] struct {
	inner Cursor[T]
	acc   A
	f     func(A, T) A
}

func (c *prescanCursor[T, A]) Step(ctx context.Context) (step.Step[A], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return step.Finished[A](), err
	}
	return step.Map(st, func(v T) A {
		out := c.acc
		c.acc = c.f(c.acc, v)
		return out
	}), nil
}

// Postscanl yields the running left fold of s after each element is
// combined: f(z,x0), f(f(z,x0),x1), ...
func Postscanl[T, A any](s Stream[T], z A, f func(A, T) A) Stream[A] {
	return New(func() Cursor[A] {
		return &postscanCursor[T, A]{inner: s.Open(), acc: z, f: f}
	}, s.SizeHint())
}

type postscanCursor[T, A any] struct {
	inner Cursor[T]
	acc   A
	f     func(A, T) A
}

func (c *postscanCursor[T, A]) Step(ctx context.Context) (step.Step[A], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return step.Finished[A](), err
	}
	return step.Map(st, func(v T) A {
		c.acc = c.f(c.acc, v)
		return c.acc
	}), nil
}

// Scanl yields z followed by every intermediate accumulator, so its output
// is one element longer than s.
func Scanl[T, A any](s Stream[T], z A, f func(A, T) A) Stream[A] {
	return Cons(z, Postscanl(s, z, f))
}

// Scanl1 is Scanl seeded with the first element of s. An empty s gives an
// empty result.
func Scanl1[T any](s Stream[T], f func(T, T) T) Stream[T] {
	return New(func() Cursor[T] {
		return &scan1Cursor[T]{inner: s.Open(), f: f}
	}, s.SizeHint())
}

type scan1Cursor[T any] struct {
	inner Cursor[T]
	f     func(T, T) T
	acc   T
	have  bool
}

func (c *scan1Cursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	return step.Map(st, func(v T) T {
		if c.have {
			c.acc = c.f(c.acc, v)
		} else {
			c.acc, c.have = v, true
		}
		return c.acc
	}), nil
}

// PrescanlDeferred is Prescanl with accumulators that are only computed when
// the consumer forces them. Each yielded Lazy depends on the one before it.
func PrescanlDeferred[T, A any](s Stream[T], z A, f func(A, T) A) Stream[*Lazy[A]] {
	return New(func() Cursor[*Lazy[A]] {
		return &prescanDeferredCursor[T, A]{inner: s.Open(), acc: Ready(z), f: f}
	}, s.SizeHint())
}

type prescanDeferredCursor[T, A any] struct {
	inner Cursor[T]
	acc   *Lazy[A]
	f     func(A, T) A
}

func (c *prescanDeferredCursor[T, A]) Step(ctx context.Context) (step.Step[*Lazy[A]], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return step.Finished[*Lazy[A]](), err
	}
	return step.Map(st, func(v T) *Lazy[A] {
		out, f := c.acc, c.f
		c.acc = Defer(func() A { return f(out.Force(), v) })
		return out
	}), nil
}

