// Package instrument decorates fusion streams with Prometheus metrics and
// lifecycle hooks. The decorator observes every step of every run without
// changing what the stream yields or its size hint.
package instrument

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gostep/pkg/metrics"
	"github.com/vnykmshr/gostep/pkg/streaming/fusion"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// Config holds configuration for an instrumented stream.
type Config struct {
	// Name labels the stream's metrics and is passed to the hooks.
	Name string

	// Metrics selects the Prometheus registry. Metrics are only recorded
	// when Metrics.Enabled is set.
	Metrics metrics.Config

	// OnError is called with the failure that ended a run.
	OnError func(name string, err error)

	// OnDone is called when a run reaches Done, with the number of elements it yielded.
	OnDone func(name string, yields int64)
}

// DefaultConfig returns a default instrumentation configuration.
func DefaultConfig() Config {
	return Config{
		Name:    "stream",
		Metrics: metrics.DefaultConfig(),
	}
}

// Stream returns s decorated according to cfg. When metrics are disabled and
// no hooks are set, s is returned unchanged. It fails when cfg.Metrics
// cannot be registered.
func Stream[T any](s fusion.Stream[T], cfg Config) (fusion.Stream[T], error) {
	if cfg.Name == "" {
		cfg.Name = DefaultConfig().Name
	}
	if !cfg.Metrics.Enabled && cfg.OnError == nil && cfg.OnDone == nil {
		return s, nil
	}

	obs, err := newObserver(cfg)
	if err != nil {
		return fusion.Stream[T]{}, err
	}
	return fusion.New(func() fusion.Cursor[T] {
		obs.started()
		return &cursor[T]{inner: s.Open(), obs: obs}
	}, s.SizeHint()), nil
}

// observer holds the label-bound collectors of one instrumented stream.
type observer struct {
	cfg      Config
	enabled  bool
	runs     prometheus.Counter
	yields   prometheus.Counter
	skips    prometheus.Counter
	dones    prometheus.Counter
	failures prometheus.Counter
	lengths  prometheus.Observer
}

func newObserver(cfg Config) (*observer, error) {
	o := &observer{cfg: cfg, enabled: cfg.Metrics.Enabled}
	if !o.enabled {
		return o, nil
	}
	reg, err := metrics.For(cfg.Metrics)
	if err != nil {
		return nil, err
	}
	o.runs = reg.StreamRuns.WithLabelValues(cfg.Name)
	o.yields = reg.StreamSteps.WithLabelValues(cfg.Name, "yield")
	o.skips = reg.StreamSteps.WithLabelValues(cfg.Name, "skip")
	o.dones = reg.StreamSteps.WithLabelValues(cfg.Name, "done")
	o.failures = reg.StreamFailures.WithLabelValues(cfg.Name)
	o.lengths = reg.StreamRunYield.WithLabelValues(cfg.Name)
	return o, nil
}

func (o *observer) started() {
	if o.enabled {
		o.runs.Inc()
	}
}

func (o *observer) failed(err error) {
	if o.enabled {
		o.failures.Inc()
	}
	if o.cfg.OnError != nil {
		o.cfg.OnError(o.cfg.Name, err)
	}
}

func (o *observer) finished(yields int64) {
	if o.enabled {
		o.dones.Inc()
		o.lengths.Observe(float64(yields))
	}
	if o.cfg.OnDone != nil {
		o.cfg.OnDone(o.cfg.Name, yields)
	}
}

type cursor[T any] struct {
	inner  fusion.Cursor[T]
	obs    *observer
	yields int64
	ended  bool
}

func (c *cursor[T]) Step(ctx context.Context) (step.Step[T], error) {
	st, err := c.inner.Step(ctx)
	if c.ended {
		return st, err
	}
	if err != nil {
		c.ended = true
		c.obs.failed(err)
		return st, err
	}
	switch st.Kind() {
	case step.Yield:
		c.yields++
		if c.obs.enabled {
			c.obs.yields.Inc()
		}
	case step.Skip:
		if c.obs.enabled {
			c.obs.skips.Inc()
		}
	default:
		c.ended = true
		c.obs.finished(c.yields)
	}
	return st, nil
}
