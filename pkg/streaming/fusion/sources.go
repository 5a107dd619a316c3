package fusion

import (
	"context"

	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// Number is the constraint for arithmetic enumerations.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Empty returns a stream with no elements.
func Empty[T any]() Stream[T] {
	return New(func() Cursor[T] { return emptyCursor[T]{} }, sizehint.Exact(0))
}

// Singleton returns a stream with exactly one element.
func Singleton[T any](x T) Stream[T] {
	return New(func() Cursor[T] {
		return &singletonCursor[T]{value: x}
	}, sizehint.Exact(1))
}

type singletonCursor[T any] struct {
	value   T
	emitted bool
}

func (c *singletonCursor[T]) Step(context.Context) (step.Step[T], error) {
	if c.emitted {
		return step.Finished[T](), nil
	}
	c.emitted = true
	return step.Of(c.value), nil
}

// Replicate returns a stream of n copies of x. Negative n is treated as 0.
func Replicate[T any](n int, x T) Stream[T] {
	n = max(n, 0)
	return New(func() Cursor[T] {
		return &replicateCursor[T]{value: x, remaining: n}
	}, sizehint.Exact(n))
}

type replicateCursor[T any] struct {
	value     T
	remaining int
}

func (c *replicateCursor[T]) Step(context.Context) (step.Step[T], error) {
	if c.remaining <= 0 {
		return step.Finished[T](), nil
	}
	c.remaining--
	return step.Of(c.value), nil
}

// Generate returns the stream f(0), f(1), ..., f(n-1).
func Generate[T any](n int, f func(int) T) Stream[T] {
	return GenerateM(n, func(_ context.Context, i int) (T, error) { return f(i), nil })
}

// GenerateM is Generate with an effectful element function.
func GenerateM[T any](n int, f func(context.Context, int) (T, error)) Stream[T] {
	n = max(n, 0)
	return New(func() Cursor[T] {
		return &generateCursor[T]{n: n, f: f}
	}, sizehint.Exact(n))
}

type generateCursor[T any] struct {
	i, n int
	f    func(context.Context, int) (T, error)
}

func (c *generateCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	if c.i >= c.n {
		return step.Finished[T](), nil
	}
	v, err := c.f(ctx, c.i)
	if err != nil {
		return step.Finished[T](), err
	}
	c.i++
	return step.Of(v), nil
}

// IterateN returns the stream x, f(x), f(f(x)), ... of length n.
func IterateN[T any](n int, f func(T) T, x T) Stream[T] {
	n = max(n, 0)
	return New(func() Cursor[T] {
		return &iterateCursor[T]{next: x, remaining: n, f: f}
	}, sizehint.Exact(n))
}

type iterateCursor[T any] struct {
	next      T
	remaining int
	f         func(T) T
}

func (c *iterateCursor[T]) Step(context.Context) (step.Step[T], error) {
	if c.remaining <= 0 {
		return step.Finished[T](), nil
	}
	v := c.next
	c.remaining--
	if c.remaining > 0 {
		c.next = c.f(v)
	}
	return step.Of(v), nil
}

// EnumFromStepN returns x, x+by, x+2*by, ... of length n.
func EnumFromStepN[T Number](x, by T, n int) Stream[T] {
	return IterateN(n, func(v T) T { return v + by }, x)
}

// FromSlice returns a stream over the elements of xs. The slice is not copied
// and must not be modified while the stream is in use.
func FromSlice[T any](xs []T) Stream[T] {
	return New(func() Cursor[T] {
		return &sliceCursor[T]{rest: xs}
	}, sizehint.Exact(len(xs)))
}

// FromSliceN returns a stream over at most the first n elements of xs.
func FromSliceN[T any](n int, xs []T) Stream[T] {
	n = min(max(n, 0), len(xs))
	return FromSlice(xs[:n])
}

// sliceCursor holds the remaining suffix of the input.
type sliceCursor[T any] struct {
	rest []T
}

func (c *sliceCursor[T]) Step(context.Context) (step.Step[T], error) {
	if len(c.rest) == 0 {
		return step.Finished[T](), nil
	}
	v := c.rest[0]
	c.rest = c.rest[1:]
	return step.Of(v), nil
}

// Unfold builds a stream from a seed. f returns the next element, the next
// seed and true, or false to end the stream.
func Unfold[T, S any](f func(S) (T, S, bool), seed S) Stream[T] {
	return FromAutomaton(seed, func(s S) (step.Step[T], S) {
		v, next, ok := f(s)
		if !ok {
			return step.Finished[T](), s
		}
		return step.Of(v), next
	}, sizehint.Unknown())
}

// UnfoldN is Unfold limited to at most n elements.
func UnfoldN[T, S any](n int, f func(S) (T, S, bool), seed S) Stream[T] {
	return Take(Unfold(f, seed), n)
}

// UnfoldM is Unfold with an effectful generator.
func UnfoldM[T, S any](f func(context.Context, S) (T, S, bool, error), seed S) Stream[T] {
	return FromAutomatonM(seed, func(ctx context.Context, s S) (step.Step[T], S, error) {
		v, next, ok, err := f(ctx, s)
		if err != nil {
			return step.Finished[T](), s, err
		}
		if !ok {
			return step.Finished[T](), s, nil
		}
		return step.Of(v), next, nil
	}, sizehint.Unknown())
}

// Repeatedly returns an infinite stream of values produced by calling f.
// f is called once per element, so the stream is only as pure as f.
func Repeatedly[T any](f func() T) Stream[T] {
	return New(func() Cursor[T] {
		return CursorFunc[T](func(context.Context) (step.Step[T], error) {
			return step.Of(f()), nil
		})
	}, sizehint.Unknown())
}

// FromChannel returns a stream that receives from ch until it is closed.
// Each step blocks until a value arrives or ctx is done. Every run of the
// stream shares the channel, so values are consumed only once.
func FromChannel[T any](ch <-chan T) Stream[T] {
	return New(func() Cursor[T] {
		return &channelCursor[T]{ch: ch}
	}, sizehint.Unknown())
}

type channelCursor[T any] struct {
	ch <-chan T
}

func (c *channelCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	select {
	case value, ok := <-c.ch:
		if !ok {
			return step.Finished[T](), nil
		}
		return step.Of(value), nil
	case <-ctx.Done():
		return step.Finished[T](), ctx.Err()
	}
}
