package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	gferrors "github.com/vnykmshr/gostep/pkg/common/errors"
)

const module = "metrics"

// Registry holds all metric instances for gostep components.
type Registry struct {
	// Stream Metrics
	StreamRuns     *prometheus.CounterVec
	StreamSteps    *prometheus.CounterVec
	StreamFailures *prometheus.CounterVec
	StreamRunYield *prometheus.HistogramVec

	// Source Metrics
	SourceCommands *prometheus.CounterVec
	SourceFailures *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by gostep components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	cfg := DefaultConfig()
	cfg.Registry = reg
	return NewRegistryWithConfig(cfg)
}

// NewRegistryWithConfig creates a metrics registry from cfg. The Enabled flag
// is left to the components that consume the registry.
func NewRegistryWithConfig(cfg Config) *Registry {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "gostep"
	}
	factory := promauto.With(cfg.Registry)
	ns, labels := cfg.Namespace, cfg.Labels

	return &Registry{
		// Stream Metrics
		StreamRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "stream",
				Name:        "runs_total",
				Help:        "Total number of stream runs started",
				ConstLabels: labels,
			},
			[]string{"stream"},
		),

		StreamSteps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "stream",
				Name:        "steps_total",
				Help:        "Total number of automaton steps by result kind",
				ConstLabels: labels,
			},
			[]string{"stream", "kind"},
		),

		StreamFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "stream",
				Name:        "failures_total",
				Help:        "Total number of steps that returned an error",
				ConstLabels: labels,
			},
			[]string{"stream"},
		),

		StreamRunYield: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "stream",
				Name:        "run_yields",
				Help:        "Number of elements yielded by completed runs",
				Buckets:     prometheus.ExponentialBuckets(1, 4, 10),
				ConstLabels: labels,
			},
			[]string{"stream"},
		),

		// Source Metrics
		SourceCommands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "source",
				Name:        "commands_total",
				Help:        "Total number of backend commands issued by stream sources",
				ConstLabels: labels,
			},
			[]string{"source", "command"},
		),

		SourceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "source",
				Name:        "failures_total",
				Help:        "Total number of failed backend commands issued by stream sources",
				ConstLabels: labels,
			},
			[]string{"source", "command"},
		),
	}
}

var (
	sharedMu    sync.Mutex
	sharedReg   = map[sharedKey]*Registry{}
	sharedNames = map[namespaceKey]string{}
)

type namespaceKey struct {
	reg       prometheus.Registerer
	namespace string
}

type sharedKey struct {
	namespaceKey
	labels string
}

// For returns the Registry for cfg, creating it on first use. Components that
// are built many times against the same Prometheus registerer share one
// Registry per namespace and constant label set, since registering the same
// collectors twice fails.
//
// Registries sharing a registerer and namespace must use the same constant
// label names; Prometheus rejects metrics whose label names differ. For returns
// a ValidationError for such a config, including any labelled config on the
// default registerer under the default namespace.
func For(cfg Config) (*Registry, error) {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "gostep"
	}
	if isDefault(cfg) {
		return DefaultRegistry, nil
	}

	ns := namespaceKey{reg: cfg.Registry, namespace: cfg.Namespace}
	key := sharedKey{namespaceKey: ns, labels: encodeLabels(cfg.Labels)}
	names := labelNames(cfg.Labels)

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if r, ok := sharedReg[key]; ok {
		return r, nil
	}
	if existing, ok := registeredNames(ns); ok && existing != names {
		return nil, gferrors.NewValidationError(module, "Labels", names,
			"label names differ from metrics already registered in namespace "+cfg.Namespace).
			WithHint("use the same label names, another namespace or a separate registry")
	}
	r := NewRegistryWithConfig(cfg)
	sharedReg[key] = r
	sharedNames[ns] = names
	return r, nil
}

func isDefault(cfg Config) bool {
	return cfg.Registry == prometheus.DefaultRegisterer && cfg.Namespace == "gostep" && len(cfg.Labels) == 0
}

// registeredNames reports the label names in use for ns. The default registry
// occupies the default namespace with no labels. Callers hold sharedMu.
func registeredNames(ns namespaceKey) (string, bool) {
	if ns.reg == prometheus.DefaultRegisterer && ns.namespace == "gostep" {
		return "", true
	}
	names, ok := sharedNames[ns]
	return names, ok
}

// encodeLabels renders labels in a canonical name-sorted form.
func encodeLabels(labels prometheus.Labels) string {
	var b strings.Builder
	for i, k := range sortedNames(labels) {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", k, labels[k])
	}
	return b.String()
}

func labelNames(labels prometheus.Labels) string {
	return strings.Join(sortedNames(labels), ",")
}

func sortedNames(labels prometheus.Labels) []string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
