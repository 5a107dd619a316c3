package fusion

import (
	"context"

	gfcontext "github.com/vnykmshr/gostep/pkg/common/context"
	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// Cursor owns the state of one run of a stream automaton.
type Cursor[T any] interface {
	// Step advances the automaton by one position.
	Step(ctx context.Context) (step.Step[T], error)
}

// CursorFunc adapts a function to the Cursor interface.
type CursorFunc[T any] func(ctx context.Context) (step.Step[T], error)

// Step implements Cursor.
func (f CursorFunc[T]) Step(ctx context.Context) (step.Step[T], error) {
	return f(ctx)
}

// Stream is an immutable description of a sequence. The zero Stream is empty.
type Stream[T any] struct {
	open func() Cursor[T]
	hint sizehint.Hint
}

// New creates a Stream whose runs are started by open.
// open must return a fresh cursor on every call.
func New[T any](open func() Cursor[T], hint sizehint.Hint) Stream[T] {
	return Stream[T]{open: open, hint: hint}
}

// Open starts a new run of the stream.
func (s Stream[T]) Open() Cursor[T] {
	if s.open == nil {
		return emptyCursor[T]{}
	}
	return s.open()
}

// SizeHint returns what is known about the stream's length.
func (s Stream[T]) SizeHint() sizehint.Hint {
	if s.open == nil {
		return sizehint.Exact(0)
	}
	return s.hint
}

// FromAutomaton builds a stream from a pure state-threading step function.
// fn must be a pure function of its argument.
func FromAutomaton[T, S any](init S, fn func(S) (step.Step[T], S), hint sizehint.Hint) Stream[T] {
	return New(func() Cursor[T] {
		return &automatonCursor[T, S]{state: init, fn: fn}
	}, hint)
}

// FromAutomatonM builds a stream from an effectful state-threading step function.
// A failed call leaves the state unchanged.
func FromAutomatonM[T, S any](init S, fn func(context.Context, S) (step.Step[T], S, error), hint sizehint.Hint) Stream[T] {
	return New(func() Cursor[T] {
		return &automatonMCursor[T, S]{state: init, fn: fn}
	}, hint)
}

type automatonCursor[T, S any] struct {
	state S
	fn    func(S) (step.Step[T], S)
	done  bool
}

func (c *automatonCursor[T, S]) Step(context.Context) (step.Step[T], error) {
	if c.done {
		return step.Finished[T](), nil
	}
	st, next := c.fn(c.state)
	c.state = next
	c.done = st.IsDone()
	return st, nil
}

type automatonMCursor[T, S any] struct {
	state S
	fn    func(context.Context, S) (step.Step[T], S, error)
	done  bool
}

func (c *automatonMCursor[T, S]) Step(ctx context.Context) (step.Step[T], error) {
	if c.done {
		return step.Finished[T](), nil
	}
	st, next, err := c.fn(ctx, c.state)
	if err != nil {
		return step.Finished[T](), err
	}
	c.state = next
	c.done = st.IsDone()
	return st, nil
}

type emptyCursor[T any] struct{}

func (emptyCursor[T]) Step(context.Context) (step.Step[T], error) {
	return step.Finished[T](), nil
}

// advance checks for cancellation and steps the cursor once.
// Terminal operations call it for every step, including skips, so an endless
// run of skips can still be interrupted.
func advance[T any](ctx context.Context, c Cursor[T]) (step.Step[T], error) {
	if err := gfcontext.Checkpoint(ctx); err != nil {
		return step.Finished[T](), err
	}
	return c.Step(ctx)
}

// drive steps c until it is exhausted, fails, or fn returns false.
func drive[T any](ctx context.Context, c Cursor[T], fn func(T) bool) error {
	for {
		st, err := advance(ctx, c)
		if err != nil {
			return err
		}
		switch st.Kind() {
		case step.Yield:
			v, _ := st.Value()
			if !fn(v) {
				return nil
			}
		case step.Done:
			return nil
		}
	}
}

// nextYield steps c past any skips. ok is false once c is exhausted.
func nextYield[T any](ctx context.Context, c Cursor[T]) (T, bool, error) {
	var zero T
	for {
		st, err := advance(ctx, c)
		if err != nil {
			return zero, false, err
		}
		switch st.Kind() {
		case step.Yield:
			v, _ := st.Value()
			return v, true, nil
		case step.Done:
			return zero, false, nil
		}
	}
}
