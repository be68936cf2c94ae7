package reconcile

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/lumen-ui/lumen/internal/errors"
	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// Delegator is the event-delegation subsystem. The reconciler only
// registers and deregisters interest; it never assigns a delegated
// event type via a direct property or attribute.
type Delegator interface {
	Register(event string, h vdom.Handler, node host.Binding)
	Deregister(event string, node host.Binding)
}

// FormControl decides whether a form element's value is externally
// controlled and finalizes controlled-value behavior after mount.
type FormControl interface {
	IsControlled(props vdom.Props) bool
	Finalize(desc *vdom.VNode, node host.Binding, props vdom.Props, isMount, isControlled bool)
}

// Releaser releases a prior child representation before a raw markup
// overwrite orphans it.
type Releaser interface {
	Release(child *vdom.VNode)
	ReleaseAll(children []*vdom.VNode)
}

// Target carries the per-node flags for one reconciliation pass.
type Target struct {
	// Node is the live host node being mutated.
	Node host.Binding

	// Namespaced marks an SVG/foreign-namespace context, where known
	// prefixed attributes are written with their namespace URI.
	Namespaced bool

	// ControlledValue marks "value" as owned by the form-control
	// collaborator; the reconciler never writes it when set.
	ControlledValue bool

	// Prior is the previously rendered description of Node's content,
	// consulted (and cleared) when a raw markup payload replaces it.
	Prior *vdom.VNode
}

// Reconciler applies property maps to host nodes.
type Reconciler struct {
	delegator Delegator
	form      FormControl
	releaser  Releaser

	log     *zap.Logger
	dev     bool
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDelegator sets the event-delegation subsystem.
func WithDelegator(d Delegator) Option {
	return func(r *Reconciler) { r.delegator = d }
}

// WithFormControl sets the controlled-form-element collaborator.
func WithFormControl(f FormControl) Option {
	return func(r *Reconciler) { r.form = f }
}

// WithReleaser overrides the default child-representation releaser.
func WithReleaser(rel Releaser) Option {
	return func(r *Reconciler) { r.releaser = rel }
}

// WithLogger sets the logger used for development diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(r *Reconciler) { r.log = log }
}

// WithDevMode enables developer-facing diagnostics for contract
// violations. In production mode violations are tolerated silently
// apart from the contract_violations metric.
func WithDevMode(dev bool) Option {
	return func(r *Reconciler) { r.dev = dev }
}

// WithMetrics attaches a Prometheus metrics set.
func WithMetrics(m *Metrics) Option {
	return func(r *Reconciler) { r.metrics = m }
}

// New creates a Reconciler. Without options it runs with no
// delegation, no form collaborator, a nop logger, and the default
// subtree releaser.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.releaser == nil {
		r.releaser = subtreeReleaser{delegator: r.delegator}
	}
	return r
}

// contractViolation records a malformed property value under its
// registered error code. Deployed builds tolerate the value as a
// no-op; the violation stays visible through the metric, and
// development builds log the coded diagnostic.
func (r *Reconciler) contractViolation(code, name string, value any) {
	r.metrics.incContractViolation()
	if r.dev {
		e := errors.New(code)
		r.log.Warn(e.Message,
			zap.String("code", e.Code),
			zap.String("prop", name),
			zap.String("type", fmt.Sprintf("%T", value)))
	}
}
