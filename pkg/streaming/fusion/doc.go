/*
Package fusion implements the effectful stream engine: sequences represented as an
explicit step automaton, and a combinator library built entirely on that automaton.

A Stream is an immutable (open, size hint) pair. Opening a stream creates a Cursor
that owns the automaton state for one run; each call to Cursor.Step advances the
automaton by exactly one position and reports one of three results:

	step.Yield  an element was produced
	step.Skip   the state advanced without a visible element
	step.Done   the sequence is exhausted

Every combinator wraps the previous cursor, so a pipeline such as

	fusion.Take(fusion.Map(fusion.Filter(src, even), double), 10)

is driven by a single loop in the terminal operation, with no intermediate
collection between stages. Only terminal operations (folds, searches, ToSlice,
EqBy/CmpBy) drive a cursor to Done.

Effect Context:

The signature Step(ctx) (step.Step[T], error) is the effect context. A step may
block (suspension), must honour ctx cancellation, and may fail; failures are
returned by terminal operations unchanged. Pure steps simply ignore ctx and never
fail. Package stream provides the pure surface on top of this engine.

Ownership:

A cursor is single-threaded: it must not be advanced from two goroutines. Distinct
cursors opened from the same stream share no state and may be consumed
concurrently. Cancellation is implicit: stop calling Step. No cursor owns external
resources, so no teardown call exists.

Strictness:

Folds and scans are strict: the accumulator is computed when each element is
consumed. FoldlDeferred and PrescanlDeferred build explicit Lazy chains instead;
those chains grow with the input and are only suitable for short streams.
*/
package fusion
