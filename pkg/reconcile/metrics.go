package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// MetricsConfig configures the Prometheus metrics set.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "lumen").
	Namespace string

	// Subsystem is the metrics subsystem (default: "reconcile").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics set.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "lumen",
		Subsystem: "reconcile",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus metrics recorded by a Reconciler. A
// nil *Metrics disables recording.
//
// Metrics collected:
//   - lumen_reconcile_prop_writes_total: live property writes
//   - lumen_reconcile_prop_writes_skipped_total: writes avoided by read-before-write
//   - lumen_reconcile_attr_writes_total: attribute writes (plain and namespaced)
//   - lumen_reconcile_attr_removals_total: attribute removals
//   - lumen_reconcile_style_writes_total: per-declaration style writes
//   - lumen_reconcile_raw_replacements_total: raw markup overwrites
//   - lumen_reconcile_delegations_total: delegation registry calls by op
//   - lumen_reconcile_contract_violations_total: malformed event values tolerated
type Metrics struct {
	propWrites         prometheus.Counter
	propSkipped        prometheus.Counter
	attrWrites         prometheus.Counter
	attrRemovals       prometheus.Counter
	styleWrites        prometheus.Counter
	rawReplacements    prometheus.Counter
	delegations        *prometheus.CounterVec
	contractViolations prometheus.Counter
}

// NewMetrics creates and registers the metrics set.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		propWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "prop_writes_total",
			Help:        "Total live property writes against host nodes",
			ConstLabels: config.ConstLabels,
		}),
		propSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "prop_writes_skipped_total",
			Help:        "Writes avoided because the live value already matched",
			ConstLabels: config.ConstLabels,
		}),
		attrWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attr_writes_total",
			Help:        "Total attribute writes, plain and namespaced",
			ConstLabels: config.ConstLabels,
		}),
		attrRemovals: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attr_removals_total",
			Help:        "Total attribute removals",
			ConstLabels: config.ConstLabels,
		}),
		styleWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "style_writes_total",
			Help:        "Total per-declaration style writes",
			ConstLabels: config.ConstLabels,
		}),
		rawReplacements: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "raw_replacements_total",
			Help:        "Total raw markup overwrites",
			ConstLabels: config.ConstLabels,
		}),
		delegations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "delegations_total",
			Help:        "Delegation registry calls by operation",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),
		contractViolations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "contract_violations_total",
			Help:        "Malformed event property values tolerated as no-ops",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ContractViolations returns the current contract-violation count, so
// callers without a Prometheus scrape (the CLI) can report tolerated
// violations after a pass.
func (m *Metrics) ContractViolations() float64 {
	if m == nil {
		return 0
	}
	var pb dto.Metric
	if err := m.contractViolations.Write(&pb); err != nil {
		return 0
	}
	return pb.GetCounter().GetValue()
}

func (m *Metrics) incPropWrite() {
	if m != nil {
		m.propWrites.Inc()
	}
}

func (m *Metrics) incPropSkipped() {
	if m != nil {
		m.propSkipped.Inc()
	}
}

func (m *Metrics) incAttrWrite() {
	if m != nil {
		m.attrWrites.Inc()
	}
}

func (m *Metrics) incAttrRemoval() {
	if m != nil {
		m.attrRemovals.Inc()
	}
}

func (m *Metrics) incStyleWrite() {
	if m != nil {
		m.styleWrites.Inc()
	}
}

func (m *Metrics) incRawReplacement() {
	if m != nil {
		m.rawReplacements.Inc()
	}
}

func (m *Metrics) incDelegation(op string) {
	if m != nil {
		m.delegations.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) incContractViolation() {
	if m != nil {
		m.contractViolations.Inc()
	}
}
