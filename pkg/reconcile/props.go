package reconcile

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/lumen-ui/lumen/pkg/vdom"
)

// ApplyProperty brings one live property in line with its next
// declared value.
//
// Callers invoke it only for entries whose value actually differs
// (removals go through RemoveProperty). Dispatch follows the fixed
// classification precedence; the two value-dependent steps (the
// controlled-value skip and null-valued removal) are handled here
// because they depend on the target flags and the value, not the name.
func (r *Reconciler) ApplyProperty(name string, prev, next any, t *Target) {
	class := vdom.Classify(name)

	if class == vdom.ClassSkip || (t.ControlledValue && name == "value") {
		// Controlled values are owned by the form collaborator.
		return
	}

	switch class {
	case vdom.ClassDelegated:
		// A delegator-less reconciler never touches delegated events,
		// through the subsystem or the host.
		if r.delegator == nil {
			return
		}
		event, _ := vdom.DelegatedEvent(name)
		if next == nil {
			r.delegator.Deregister(event, t.Node)
			r.metrics.incDelegation("deregister")
			return
		}
		h, ok := r.normalizeHandler(name, next)
		if !ok {
			return
		}
		r.delegator.Register(event, h, t.Node)
		r.metrics.incDelegation("register")

	case vdom.ClassBoolean:
		prop := name
		// Hosts expose this one under its lower-cased name.
		if strings.EqualFold(name, "autofocus") {
			prop = "autofocus"
		}
		t.Node.SetProp(prop, vdom.Truthy(next))
		r.metrics.incPropWrite()

	case vdom.ClassStrict:
		value := next
		if value == nil {
			value = ""
		}
		// Read before writing: a redundant write to "value" would
		// reposition the cursor in a focused input.
		if vdom.Equal(t.Node.GetProp(name), value) {
			r.metrics.incPropSkipped()
			return
		}
		t.Node.SetProp(name, value)
		r.metrics.incPropWrite()

	case vdom.ClassEvent:
		r.applyEventProperty(name, prev, next, t.Node)

	default:
		if next == nil {
			t.Node.RemoveAttr(name)
			r.metrics.incAttrRemoval()
			return
		}
		switch class {
		case vdom.ClassStyle:
			r.applyStyle(prev, next, t.Node)
		case vdom.ClassRawHTML:
			r.applyRawHTML(prev, next, t)
		default:
			if t.Namespaced {
				if ns, ok := vdom.NamespaceFor(name); ok {
					t.Node.SetAttrNS(ns, name, vdom.ToString(next))
					r.metrics.incAttrWrite()
					return
				}
			}
			t.Node.SetAttr(name, vdom.ToString(next))
			r.metrics.incAttrWrite()
		}
	}
}

// RemoveProperty applies the removal path for one property. It
// mirrors the same category dispatch as ApplyProperty for the
// categories with asymmetric removal semantics, so removing a
// delegated event deregisters it rather than clearing an attribute.
func (r *Reconciler) RemoveProperty(name string, prev any, t *Target) {
	if event, ok := vdom.DelegatedEvent(name); ok {
		if r.delegator != nil {
			r.delegator.Deregister(event, t.Node)
			r.metrics.incDelegation("deregister")
		}
		return
	}

	switch {
	case name == "value" && isValueHolder(t.Node.Tag()):
		// Empty string is itself a meaningful selection for selects,
		// so selectable controls reset to nil instead.
		if isSelectLike(t.Node.Tag()) {
			t.Node.SetProp("value", nil)
		} else {
			t.Node.SetProp("value", "")
		}
		r.metrics.incPropWrite()
	case name == "style":
		t.Node.RemoveAttr("style")
		r.metrics.incAttrRemoval()
	case vdom.IsEventProp(name):
		r.applyEventProperty(name, prev, nil, t.Node)
	case name == vdom.RawHTMLProp:
		t.Node.SetHTML("")
	default:
		t.Node.RemoveAttr(name)
		r.metrics.incAttrRemoval()
	}
}

// UpdateProperties runs a full reconciliation pass for one node:
// removals for names gone from nextProps, then per-entry application
// for names whose value changed. Unchanged entries never reach the
// per-property dispatch. Callers embedding their own tree differ can
// compute the sets themselves and call ApplyProperty/RemoveProperty
// directly.
func (r *Reconciler) UpdateProperties(ctx context.Context, desc *vdom.VNode, prevProps, nextProps vdom.Props, t *Target) {
	_, span := r.startSpan(ctx, "reconcile.update", t.Node.Tag())

	if !t.ControlledValue && r.form != nil && isFormTag(t.Node.Tag()) {
		t.ControlledValue = r.form.IsControlled(nextProps)
	}
	if t.Prior == nil {
		t.Prior = desc
	}

	var changed, removed int
	for name, prevVal := range prevProps {
		if _, ok := nextProps[name]; !ok {
			r.RemoveProperty(name, prevVal, t)
			removed++
		}
	}
	for name, nextVal := range nextProps {
		prevVal, ok := prevProps[name]
		if ok && vdom.Equal(prevVal, nextVal) {
			continue
		}
		r.ApplyProperty(name, prevVal, nextVal, t)
		changed++
	}

	if span != nil {
		span.SetAttributes(
			attribute.Int("lumen.props.changed", changed),
			attribute.Int("lumen.props.removed", removed),
		)
		span.End()
	}
}

// isFormTag reports whether the tag names a form element with
// controlled-value semantics.
func isFormTag(tag string) bool {
	switch tag {
	case "input", "textarea", "select":
		return true
	}
	return false
}

// isValueHolder reports whether the tag names a control whose "value"
// removal resets the live property instead of removing an attribute.
func isValueHolder(tag string) bool {
	switch tag {
	case "input", "textarea", "select", "option":
		return true
	}
	return false
}

func isSelectLike(tag string) bool {
	return tag == "select" || tag == "option"
}
