/*
Package stream is the pure face of the gostep fusion engine.

A Stream describes a sequence as a step automaton: every pull produces one of
Yield (an element), Skip (progress without an element) or Done. Chained
operations wrap one automaton in another, so a pipeline of Filter, Map and
Take runs as a single loop with no intermediate slices.

Core Concepts:

Streams in this package are:
  - Lazy: nothing runs until a terminal operation is called
  - Immutable: operations return new streams; a stream can be run many times
  - Pure: steps never block and never fail, so terminal operations take no context
  - Sized: every stream carries a size hint that ToSlice uses to presize its result

Basic Usage:

	result, err := stream.Map(
		stream.FromSlice([]int{1, 2, 3, 4, 5}).
			Filter(func(x int) bool { return x%2 == 0 }),
		func(x int) int { return x * 2 },
	).Take(10).ToSlice()

	fmt.Println(result) // [4 8]

Methods and Functions:

Operations that keep the element type are methods (Filter, TakeWhile,
DropWhile, Take, Drop, Extract, Init, Tail, Snoc, Append, Peek). Operations
that change it are package functions (Map, ZipWith, Prescanl, Foldl), since Go
methods cannot introduce type parameters.

Partial Operations:

Head, Last, Index, Init, Tail, Foldl1, Foldr1, Minimum and Maximum fail on an
empty stream with an error matching errors.ErrEmptyInput from
pkg/common/errors. Search operations (Find, FindIndex, Elem) report absence
instead of failing.

	first, err := stream.Empty[int]().Head()
	if gferrors.IsEmptyInput(err) {
		// guard with Null or Length first when emptiness is expected
	}

Comparing Streams:

Eq and Cmp walk two streams in lockstep without buffering either side and
stop at the first difference:

	same, _ := stream.Eq(stream.FromSlice([]int{1, 2, 3}), stream.FromSlice([]int{1, 2})) // false
	order, _ := stream.Cmp(stream.FromSlice([]int{1, 2}), stream.FromSlice([]int{1, 2, 3})) // -1

Effectful Consumption:

Lift turns a pure stream into a fusion.Stream, which can be mixed with
suspending or failing sources and consumed with fusion.MapM, fusion.ForEachM
or fusion.FoldlM under a context:

	err := fusion.ForEachM(ctx, stream.Lift(ids), func(ctx context.Context, id int) error {
		return store.Touch(ctx, id)
	})

Thread Safety:

A Stream value holds no run state, so the same stream may be consumed from
several goroutines at once as long as the functions passed to it are safe for
concurrent use.
*/
package stream
