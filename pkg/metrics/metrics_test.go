package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gferrors "github.com/vnykmshr/gostep/pkg/common/errors"
)

func TestNewRegistryWithConfig(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistryWithConfig(Config{
		Enabled:   true,
		Registry:  reg,
		Namespace: "myapp",
		Labels:    prometheus.Labels{"env": "test"},
	})

	r.StreamFailures.WithLabelValues("users").Inc()

	expected := `
# HELP myapp_stream_failures_total Total number of steps that returned an error
# TYPE myapp_stream_failures_total counter
myapp_stream_failures_total{env="test",stream="users"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "myapp_stream_failures_total"))
}

func TestNewRegistryDefaultsNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistryWithConfig(Config{Registry: reg})

	r.SourceCommands.WithLabelValues("redisstream", "scan").Add(2)

	count, err := testutil.GatherAndCount(reg, "gostep_source_commands_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.SourceCommands.WithLabelValues("redisstream", "scan")))
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := NewRegistry(prometheus.NewRegistry())
	b := NewRegistry(prometheus.NewRegistry())

	a.StreamRuns.WithLabelValues("s").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.StreamRuns.WithLabelValues("s")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.StreamRuns.WithLabelValues("s")))
}

func TestDefaultRegistry(t *testing.T) {
	require.NotNil(t, DefaultRegistry)
	require.NotNil(t, DefaultRegistry.StreamSteps)
}

func mustFor(t *testing.T, cfg Config) *Registry {
	t.Helper()
	r, err := For(cfg)
	require.NoError(t, err)
	return r
}

func TestForSharesRegistryPerRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := Config{Enabled: true, Registry: reg}

	a := mustFor(t, cfg)
	b := mustFor(t, cfg)
	assert.Same(t, a, b)

	other := mustFor(t, Config{Enabled: true, Registry: reg, Namespace: "other"})
	assert.NotSame(t, a, other)

	assert.Same(t, DefaultRegistry, mustFor(t, DefaultConfig()))
	assert.Same(t, DefaultRegistry, mustFor(t, Config{Enabled: true}))
}

func TestForKeysOnLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := mustFor(t, Config{Registry: reg, Labels: prometheus.Labels{"env": "a", "zone": "1"}})
	b := mustFor(t, Config{Registry: reg, Labels: prometheus.Labels{"env": "b", "zone": "1"}})
	again := mustFor(t, Config{Registry: reg, Labels: prometheus.Labels{"zone": "1", "env": "a"}})

	assert.NotSame(t, a, b)
	assert.Same(t, a, again)

	a.StreamRuns.WithLabelValues("s").Inc()
	b.StreamRuns.WithLabelValues("s").Add(2)

	expected := `
# HELP gostep_stream_runs_total Total number of stream runs started
# TYPE gostep_stream_runs_total counter
gostep_stream_runs_total{env="a",stream="s",zone="1"} 1
gostep_stream_runs_total{env="b",stream="s",zone="1"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "gostep_stream_runs_total"))
}

func TestForRejectsConflictingLabelNames(t *testing.T) {
	t.Run("default registerer", func(t *testing.T) {
		var (
			r   *Registry
			err error
		)
		assert.NotPanics(t, func() {
			r, err = For(Config{Enabled: true, Labels: prometheus.Labels{"env": "prod"}})
		})
		assert.Nil(t, r)
		require.Error(t, err)
		assert.True(t, gferrors.IsValidationError(err))
	})

	t.Run("custom registerer", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		mustFor(t, Config{Registry: reg, Labels: prometheus.Labels{"env": "a"}})

		_, err := For(Config{Registry: reg})
		require.Error(t, err)
		assert.True(t, gferrors.IsValidationError(err))

		_, err = For(Config{Registry: reg, Labels: prometheus.Labels{"region": "eu"}})
		require.Error(t, err)
	})

	t.Run("separate namespace", func(t *testing.T) {
		r := mustFor(t, Config{Namespace: "labelled", Labels: prometheus.Labels{"env": "prod"}})
		assert.NotSame(t, DefaultRegistry, r)
	})
}
