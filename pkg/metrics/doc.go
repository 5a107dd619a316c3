// Package metrics provides Prometheus instrumentation for gostep components.
//
// # Overview
//
// The metrics package backs two kinds of instrumentation:
//   - Streams decorated with instrument.Stream (runs, steps by kind, failures, run length)
//   - Backend sources such as redisstream (commands issued, commands failed)
//
// # Quick Start
//
// Decorate a stream and expose the default registry over HTTP:
//
//	s, err := instrument.Stream(fusion.FromSlice(rows), instrument.Config{
//		Name:    "rows",
//		Metrics: metrics.DefaultConfig(),
//	})
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	reg := metrics.NewRegistryWithConfig(metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	})
//
// # Available Metrics
//
// ## Stream Metrics
//
//   - gostep_stream_runs_total: Total number of stream runs started
//   - gostep_stream_steps_total: Total number of automaton steps by result kind
//   - gostep_stream_failures_total: Total number of steps that returned an error
//   - gostep_stream_run_yields: Number of elements yielded by completed runs
//
// ## Source Metrics
//
//   - gostep_source_commands_total: Backend commands issued by stream sources
//   - gostep_source_failures_total: Failed backend commands
//
// # Labels
//
//   - stream: User-provided name for the instrumented stream
//   - kind: Step result, one of "yield", "skip" or "done"
//   - source: Source package, e.g. "redisstream"
//   - command: Backend command, e.g. "lrange" or "scan"
//
// Constant labels from Config.Labels are added to every metric. Components
// built with the same registerer and namespace share one Registry per label
// set through For; their label names must match, so labelled configs need a
// separate registerer or namespace from the default registry.
package metrics
