/*
Package gostep provides a Go library for fused, step-at-a-time sequence processing.

A stream is a step automaton: each pull yields an element, skips, or finishes.
Combinators wrap automata in automata, so a chain of filters, maps, slices and
folds runs as one loop without intermediate collections.

Core (pkg/streaming):
  - step: the Yield/Skip/Done step result
  - sizehint: Exact/AtMost/Unknown length hints and their algebra
  - fusion: the stream engine, with context-aware and fallible steps
  - stream: the pure surface, with list conversion, Eq and Cmp
  - instrument: Prometheus metrics and hooks for any fusion stream

Sources (pkg/streaming):
  - redisstream: Redis lists (LRANGE) and keyspaces (SCAN) as streams
  - cronstream: cron activation times as streams

Support (pkg):
  - metrics: Prometheus registry for streams and sources
  - common/errors: EmptyInputError, ValidationError, OperationError

Example usage:

	import (
		"github.com/vnykmshr/gostep/pkg/streaming/stream"
	)

	evens := stream.FromSlice([]int{1, 2, 3, 4, 5}).Filter(isEven)
	doubled, _ := stream.Map(evens, double).Take(10).ToSlice() // [4 8]
*/
package gostep
