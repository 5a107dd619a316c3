package fusion

import (
	"context"

	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// Map applies f to every element. The size hint is unchanged.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return New(func() Cursor[U] {
		return &mapCursor[T, U]{inner: s.Open(), f: f}
	}, s.SizeHint())
}

type mapCursor[T, U any] struct {
	inner Cursor[T]
	f     func(T) U
}

func (c *mapCursor[T, U]) Step(ctx context.Context) (step.Step[U], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return step.Finished[U](), err
	}
	return step.Map(st, c.f), nil
}

// MapM applies an effectful function to every element. A failure stops the
// stream and is returned by the terminal operation unchanged.
func MapM[T, U any](s Stream[T], f func(context.Context, T) (U, error)) Stream[U] {
	return New(func() Cursor[U] {
		return &mapMCursor[T, U]{inner: s.Open(), f: f}
	}, s.SizeHint())
}

type mapMCursor[T, U any] struct {
	inner Cursor[T]
	f     func(context.Context, T) (U, error)
}

func (c *mapMCursor[T, U]) Step(ctx context.Context) (step.Step[U], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return step.Finished[U](), err
	}
	v, ok := st.Value()
	if !ok {
		if st.IsSkip() {
			return step.Skipped[U](), nil
		}
		return step.Finished[U](), nil
	}
	u, err := c.f(ctx, v)
	if err != nil {
		return step.Finished[U](), err
	}
	return step.Of(u), nil
}

// Filter keeps the elements that satisfy p. Rejected elements become skips.
func Filter[T any](s Stream[T], p func(T) bool) Stream[T] {
	return New(func() Cursor[T] {
		return &filterCursor[T]{inner: s.Open(), p: p}
	}, s.SizeHint().Degrade())
}

type filterCursor[T any] struct {
	inner Cursor[T]
	p     func(T) bool
}

func (c *filterCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	if v, ok := st.Value(); ok && !c.p(v) {
		return step.Skipped[T](), nil
	}
	return st, nil
}

// FilterM keeps the elements for which the effectful predicate p holds.
func FilterM[T any](s Stream[T], p func(context.Context, T) (bool, error)) Stream[T] {
	return New(func() Cursor[T] {
		return &filterMCursor[T]{inner: s.Open(), p: p}
	}, s.SizeHint().Degrade())
}

type filterMCursor[T any] struct {
	inner Cursor[T]
	p     func(context.Context, T) (bool, error)
}

func (c *filterMCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	v, ok := st.Value()
	if !ok {
		return st, nil
	}
	keep, err := c.p(ctx, v)
	if err != nil {
		return step.Finished[T](), err
	}
	if !keep {
		return step.Skipped[T](), nil
	}
	return st, nil
}

// MapMaybe applies f to every element and keeps the results reported as present.
func MapMaybe[T, U any](s Stream[T], f func(T) (U, bool)) Stream[U] {
	return New(func() Cursor[U] {
		return &mapMaybeCursor[T, U]{inner: s.Open(), f: f}
	}, s.SizeHint().Degrade())
}

type mapMaybeCursor[T, U any] struct {
	inner Cursor[T]
	f     func(T) (U, bool)
}

func (c *mapMaybeCursor[T, U]) Step(ctx context.Context) (step.Step[U], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return step.Finished[U](), err
	}
	switch st.Kind() {
	case step.Yield:
		v, _ := st.Value()
		if u, ok := c.f(v); ok {
			return step.Of(u), nil
		}
		return step.Skipped[U](), nil
	case step.Skip:
		return step.Skipped[U](), nil
	default:
		return step.Finished[U](), nil
	}
}

// TakeWhile yields elements while p holds and ends at the first element that
// fails it. That element is discarded.
func TakeWhile[T any](s Stream[T], p func(T) bool) Stream[T] {
	return New(func() Cursor[T] {
		return &takeWhileCursor[T]{inner: s.Open(), p: p}
	}, s.SizeHint().Degrade())
}

type takeWhileCursor[T any] struct {
	inner Cursor[T]
	p     func(T) bool
	done  bool
}

func (c *takeWhileCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	if c.done {
		return step.Finished[T](), nil
	}
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	if v, ok := st.Value(); ok && !c.p(v) {
		c.done = true
		return step.Finished[T](), nil
	}
	return st, nil
}

// DropWhile discards the leading run of elements that satisfy p. Once an
// element fails p every later element passes through, matching or not.
func DropWhile[T any](s Stream[T], p func(T) bool) Stream[T] {
	return New(func() Cursor[T] {
		return &dropWhileCursor[T]{inner: s.Open(), p: p, dropping: true}
	}, s.SizeHint().Degrade())
}

type dropWhileCursor[T any] struct {
	inner    Cursor[T]
	p        func(T) bool
	dropping bool
}

func (c *dropWhileCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if err != nil || !c.dropping {
		return st, err
	}
	if v, ok := st.Value(); ok {
		if c.p(v) {
			return step.Skipped[T](), nil
		}
		c.dropping = false
	}
	return st, nil
}

// Peek calls action on every element as it is consumed.
func Peek[T any](s Stream[T], action func(T)) Stream[T] {
	return New(func() Cursor[T] {
		return &peekCursor[T]{inner: s.Open(), action: action}
	}, s.SizeHint())
}

type peekCursor[T any] struct {
	inner  Cursor[T]
	action func(T)
}

func (c *peekCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if v, ok := st.Value(); ok && err == nil {
		c.action(v)
	}
	return st, err
}

// Indexed pairs every element with its 0-based position.
func Indexed[T any](s Stream[T]) Stream[Pair[int, T]] {
	return New(func() Cursor[Pair[int, T]] {
		return &indexedCursor[T]{inner: s.Open()}
	}, s.SizeHint())
}

type indexedCursor[T any] struct {
	inner Cursor[T]
	i     int
}

func (c *indexedCursor[T]) Step(ctx context.Context) (step.Step[Pair[int, T]], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return step.Finished[Pair[int, T]](), err
	}
	return step.Map(st, func(v T) Pair[int, T] {
		p := Pair[int, T]{First: c.i, Second: v}
		c.i++
		return p
	}), nil
}

// Uniq drops elements equal to the element immediately before them.
func Uniq[T comparable](s Stream[T]) Stream[T] {
	return New(func() Cursor[T] {
		return &uniqCursor[T]{inner: s.Open()}
	}, s.SizeHint().Degrade())
}

type uniqCursor[T comparable] struct {
	inner Cursor[T]
	last  T
	seen  bool
}

func (c *uniqCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	v, ok := st.Value()
	if !ok {
		return st, nil
	}
	if c.seen && v == c.last {
		return step.Skipped[T](), nil
	}
	c.last, c.seen = v, true
	return st, nil
}

// Distinct drops every element equal to an earlier one. Unlike the other
// combinators it remembers every distinct element it has seen.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return New(func() Cursor[T] {
		return &distinctCursor[T]{inner: s.Open(), seen: make(map[T]struct{})}
	}, s.SizeHint().Degrade())
}

type distinctCursor[T comparable] struct {
	inner Cursor[T]
	seen  map[T]struct{}
}

func (c *distinctCursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if err != nil {
		return st, err
	}
	v, ok := st.Value()
	if !ok {
		return st, nil
	}
	if _, dup := c.seen[v]; dup {
		return step.Skipped[T](), nil
	}
	c.seen[v] = struct{}{}
	return st, nil
}
