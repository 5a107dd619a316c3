/*
Package streaming groups the gostep stream engine and its sources.

This package provides the following components:

  - step: the three-way result of advancing an automaton once
  - sizehint: static knowledge about a stream's length
  - fusion: the effectful engine; steps take a context and may fail
  - stream: the pure specialization; terminal operations need no context
  - instrument: a decorator that records per-step Prometheus metrics
  - redisstream: lazy, paged streams over Redis lists and keys
  - cronstream: streams of cron activation times

Basic usage:

	s, err := redisstream.Values(cfg)
	if err != nil {
		return err
	}

	s, err = instrument.Stream(s, instrument.Config{Name: "events", Metrics: metrics.DefaultConfig()})
	if err != nil {
		return err
	}
	recent, err := fusion.ToSlice(ctx, fusion.Take(s, 100))

Pure streams convert to effectful ones with stream.Lift, so every terminal
operation in fusion accepts both.
*/
package streaming
