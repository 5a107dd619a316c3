package fusion

import (
	"context"

	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// Pair holds one element from each side of a zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Cons returns a stream that yields x before the elements of s.
func Cons[T any](x T, s Stream[T]) Stream[T] {
	return New(func() Cursor[T] {
		return &consCursor[T]{head: x, pending: true, inner: s.Open()}
	}, sizehint.Add(sizehint.Exact(1), s.SizeHint()))
}

type consCursor[T any] struct {
	head    T
	pending bool
	inner   Cursor[T]
}

func (c *consCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	if c.pending {
		c.pending = false
		return step.Of(c.head), nil
	}
	return c.inner.Step(ctx)
}

// Snoc returns a stream that yields x after the elements of s.
func Snoc[T any](s Stream[T], x T) Stream[T] {
	return New(func() Cursor[T] {
		return &snocCursor[T]{inner: s.Open(), last: x}
	}, sizehint.Add(s.SizeHint(), sizehint.Exact(1)))
}

type snocCursor[T any] struct {
	inner     Cursor[T]
	last      T
	innerDone bool
	emitted   bool
}

func (c *snocCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	if c.innerDone {
		if c.emitted {
			return step.Finished[T](), nil
		}
		c.emitted = true
		return step.Of(c.last), nil
	}
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	if st.IsDone() {
		c.innerDone = true
		return step.Skipped[T](), nil
	}
	return st, nil
}

// Append returns the elements of a followed by the elements of b.
func Append[T any](a, b Stream[T]) Stream[T] {
	return New(func() Cursor[T] {
		return &appendCursor[T]{left: a.Open(), rightStream: b}
	}, sizehint.Add(a.SizeHint(), b.SizeHint()))
}

// appendCursor drives the left cursor, then switches to a fresh right cursor.
type appendCursor[T any] struct {
	left        Cursor[T]
	right       Cursor[T]
	rightStream Stream[T]
}

func (c *appendCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	if c.right != nil {
		return c.right.Step(ctx)
	}
	st, err := c.left.Step(ctx)
	if err != nil {
		return st, err
	}
	if st.IsDone() {
		c.right = c.rightStream.Open()
		c.left = nil
		return step.Skipped[T](), nil
	}
	return st, nil
}

// Concat returns the elements of every stream in order.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	if len(streams) == 0 {
		return Empty[T]()
	}
	out := streams[len(streams)-1]
	for i := len(streams) - 2; i >= 0; i-- {
		out = Append(streams[i], out)
	}
	return out
}

// ConcatMap maps every element to a stream and concatenates the results.
func ConcatMap[T, U any](s Stream[T], f func(T) Stream[U]) Stream[U] {
	return New(func() Cursor[U] {
		return &concatMapCursor[T, U]{outer: s.Open(), f: f}
	}, sizehint.Unknown())
}

type concatMapCursor[T, U any] struct {
	outer Cursor[T]
	inner Cursor[U]
	f     func(T) Stream[U]
}

func (c *concatMapCursor[T, U]) Step(ctx context.Context) (step.Step[U], error) {
	if c.inner != nil {
		st, err := c.inner.Step(ctx)
		if err != nil {
			return st, err
		}
		if st.IsDone() {
			c.inner = nil
			return step.Skipped[U](), nil
		}
		return st, nil
	}
	st, err := c.outer.Step(ctx)
	if err != nil {
		return step.Finished[U](), err
	}
	switch st.Kind() {
	case step.Yield:
		v, _ := st.Value()
		c.inner = c.f(v).Open()
		return step.Skipped[U](), nil
	case step.Skip:
		return step.Skipped[U](), nil
	default:
		return step.Finished[U](), nil
	}
}

// ZipWith combines the elements of a and b pairwise with f, stopping when
// either stream is exhausted.
func ZipWith[A, B, C any](a Stream[A], b Stream[B], f func(A, B) C) Stream[C] {
	return New(func() Cursor[C] {
		return &zipCursor[A, B, C]{left: a.Open(), right: b.Open(), f: f}
	}, sizehint.Min(a.SizeHint(), b.SizeHint()))
}

// zipCursor holds the left element while the right side catches up.
type zipCursor[A, B, C any] struct {
	left    Cursor[A]
	right   Cursor[B]
	f       func(A, B) C
	pending A
	have    bool
	done    bool
}

func (c *zipCursor[A, B, C]) Step(ctx context.Context) (step.Step[C], error) {
	if c.done {
		return step.Finished[C](), nil
	}
	if !c.have {
		st, err := c.left.Step(ctx)
		if err != nil {
			return step.Finished[C](), err
		}
		switch st.Kind() {
		case step.Yield:
			c.pending, _ = st.Value()
			c.have = true
			return step.Skipped[C](), nil
		case step.Skip:
			return step.Skipped[C](), nil
		default:
			c.done = true
			return step.Finished[C](), nil
		}
	}
	st, err := c.right.Step(ctx)
	if err != nil {
		return step.Finished[C](), err
	}
	switch st.Kind() {
	case step.Yield:
		y, _ := st.Value()
		x := c.pending
		var zero A
		c.pending, c.have = zero, false
		return step.Of(c.f(x, y)), nil
	case step.Skip:
		return step.Skipped[C](), nil
	default:
		c.done = true
		return step.Finished[C](), nil
	}
}

// Zip pairs the elements of a and b.
func Zip[A, B any](a Stream[A], b Stream[B]) Stream[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
}

// ZipWith3 combines three streams element-wise.
func ZipWith3[A, B, C, D any](a Stream[A], b Stream[B], c Stream[C], f func(A, B, C) D) Stream[D] {
	return ZipWith(Zip(a, b), c, func(p Pair[A, B], z C) D { return f(p.First, p.Second, z) })
}
