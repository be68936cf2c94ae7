package reconcile

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// MountProperties applies an entire property map to a freshly created
// node. Every entry goes through the same per-property dispatch as
// updates, with no previous value.
//
// For form elements the controlled decision is made up front from the
// full property set, and the form collaborator's post-mount hook runs
// strictly after all property assignments.
func (r *Reconciler) MountProperties(ctx context.Context, desc *vdom.VNode, props vdom.Props, node host.Binding, namespaced bool) {
	_, span := r.startSpan(ctx, "reconcile.mount", node.Tag())

	formElement := isFormTag(node.Tag()) && r.form != nil
	controlled := false
	if formElement {
		controlled = r.form.IsControlled(props)
	}

	t := &Target{
		Node:            node,
		Namespaced:      namespaced,
		ControlledValue: controlled,
		Prior:           desc,
	}
	for name, value := range props {
		r.ApplyProperty(name, nil, value, t)
	}

	if desc != nil {
		desc.Ref = node
	}

	if formElement {
		r.form.Finalize(desc, node, props, true, controlled)
	}

	if span != nil {
		span.SetAttributes(attribute.Int("lumen.props.mounted", len(props)))
		span.End()
	}
}
