package stream

import (
	"context"

	"github.com/vnykmshr/gostep/pkg/streaming/fusion"
	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
)

// Stream is a fused sequence whose steps never suspend and never fail on
// their own. Streams are immutable: every operation returns a new stream and
// every terminal operation starts a fresh run, so a Stream may be consumed
// any number of times and from several goroutines at once.
//
// The only failures a terminal operation reports are EmptyInputErrors from
// the partial operations (Head, Last, Index, Init, Tail, Foldl1, Foldr1,
// Minimum, Maximum).
type Stream[T any] interface {
	// Intermediate operations (lazy, return new Stream)

	// Filter returns a stream of the elements that satisfy p.
	Filter(p func(T) bool) Stream[T]

	// TakeWhile returns the longest prefix whose elements satisfy p.
	TakeWhile(p func(T) bool) Stream[T]

	// DropWhile discards the longest prefix whose elements satisfy p.
	DropWhile(p func(T) bool) Stream[T]

	// Take returns at most the first n elements.
	Take(n int) Stream[T]

	// Drop discards the first n elements.
	Drop(n int) Stream[T]

	// Extract returns length elements starting at start. Negative arguments count as 0.
	Extract(start, length int) Stream[T]

	// Init drops the last element. A run over an empty stream fails.
	Init() Stream[T]

	// Tail drops the first element. A run over an empty stream fails.
	Tail() Stream[T]

	// Snoc appends x.
	Snoc(x T) Stream[T]

	// Append returns the elements of this stream followed by those of other.
	Append(other Stream[T]) Stream[T]

	// Peek calls action on each element as it is consumed.
	Peek(action func(T)) Stream[T]

	// SizeHint reports what is known about the length without running the stream.
	SizeHint() sizehint.Hint

	// Terminal operations (eager, run the stream)

	// ToSlice returns every element in order.
	ToSlice() ([]T, error)

	// Length counts the elements.
	Length() (int, error)

	// Null reports whether the stream is empty, looking at one element at most.
	Null() (bool, error)

	// Head returns the first element.
	Head() (T, error)

	// Last returns the final element.
	Last() (T, error)

	// Index returns the element at 0-based position i.
	Index(i int) (T, error)

	// Find returns the first element satisfying p, if any.
	Find(p func(T) bool) (T, bool, error)

	// FindIndex returns the position of the first element satisfying p, or -1.
	FindIndex(p func(T) bool) (int, error)

	// All reports whether every element satisfies p.
	All(p func(T) bool) (bool, error)

	// Any reports whether some element satisfies p.
	Any(p func(T) bool) (bool, error)

	// Foldl1 reduces from the left, seeded with the first element.
	Foldl1(f func(T, T) T) (T, error)

	// Foldr1 reduces from the right, seeded with the last element.
	Foldr1(f func(T, T) T) (T, error)

	// ForEach calls action on every element.
	ForEach(action func(T)) error

	fused() fusion.Stream[T]
}

// pure adapts a fusion stream built only from non-blocking, non-failing steps.
type pure[T any] struct {
	s fusion.Stream[T]
}

func wrap[T any](s fusion.Stream[T]) Stream[T] {
	return pure[T]{s: s}
}

// run is the context every terminal operation is driven with. Pure steps
// never look at it.
func run() context.Context {
	return context.Background()
}

func (p pure[T]) fused() fusion.Stream[T] { return p.s }

func (p pure[T]) Filter(pred func(T) bool) Stream[T] {
	return wrap(fusion.Filter(p.s, pred))
}

func (p pure[T]) TakeWhile(pred func(T) bool) Stream[T] {
	return wrap(fusion.TakeWhile(p.s, pred))
}

func (p pure[T]) DropWhile(pred func(T) bool) Stream[T] {
	return wrap(fusion.DropWhile(p.s, pred))
}

func (p pure[T]) Take(n int) Stream[T] {
	return wrap(fusion.Take(p.s, n))
}

func (p pure[T]) Drop(n int) Stream[T] {
	return wrap(fusion.Drop(p.s, n))
}

func (p pure[T]) Extract(start, length int) Stream[T] {
	return wrap(fusion.Extract(p.s, start, length))
}

func (p pure[T]) Init() Stream[T] {
	return wrap(fusion.Init(p.s))
}

func (p pure[T]) Tail() Stream[T] {
	return wrap(fusion.Tail(p.s))
}

func (p pure[T]) Snoc(x T) Stream[T] {
	return wrap(fusion.Snoc(p.s, x))
}

func (p pure[T]) Append(other Stream[T]) Stream[T] {
	return wrap(fusion.Append(p.s, other.fused()))
}

func (p pure[T]) Peek(action func(T)) Stream[T] {
	return wrap(fusion.Peek(p.s, action))
}

func (p pure[T]) SizeHint() sizehint.Hint {
	return p.s.SizeHint()
}

func (p pure[T]) ToSlice() ([]T, error) {
	return fusion.ToSlice(run(), p.s)
}

func (p pure[T]) Length() (int, error) {
	return fusion.Length(run(), p.s)
}

func (p pure[T]) Null() (bool, error) {
	return fusion.Null(run(), p.s)
}

func (p pure[T]) Head() (T, error) {
	return fusion.Head(run(), p.s)
}

func (p pure[T]) Last() (T, error) {
	return fusion.Last(run(), p.s)
}

func (p pure[T]) Index(i int) (T, error) {
	return fusion.Index(run(), p.s, i)
}

func (p pure[T]) Find(pred func(T) bool) (T, bool, error) {
	return fusion.Find(run(), p.s, pred)
}

func (p pure[T]) FindIndex(pred func(T) bool) (int, error) {
	return fusion.FindIndex(run(), p.s, pred)
}

func (p pure[T]) All(pred func(T) bool) (bool, error) {
	return fusion.All(run(), p.s, pred)
}

func (p pure[T]) Any(pred func(T) bool) (bool, error) {
	return fusion.Any(run(), p.s, pred)
}

func (p pure[T]) Foldl1(f func(T, T) T) (T, error) {
	return fusion.Foldl1(run(), p.s, f)
}

func (p pure[T]) Foldr1(f func(T, T) T) (T, error) {
	return fusion.Foldr1(run(), p.s, f)
}

func (p pure[T]) ForEach(action func(T)) error {
	return fusion.ForEach(run(), p.s, action)
}

// Lift returns s as an effectful stream, so it can be combined with
// suspending or failing streams and consumed by the effectful terminal
// operations of package fusion.
func Lift[T any](s Stream[T]) fusion.Stream[T] {
	return s.fused()
}
