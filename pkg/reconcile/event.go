package reconcile

import (
	"strings"

	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// applyEventProperty assigns a direct (non-delegated) event property.
// Host event slots are case-normalized, so the property name is
// lower-cased for the lookup.
func (r *Reconciler) applyEventProperty(name string, prev, next any, node host.Binding) {
	slot := strings.ToLower(name)

	if next == nil {
		// A slot holding a handler owned by another subsystem is not
		// ours to clear.
		if owned, ok := node.GetProp(slot).(vdom.OwnedHandler); ok && owned.Owner != "" {
			return
		}
		node.SetProp(slot, nil)
		r.metrics.incPropWrite()
		return
	}

	if owned, ok := next.(vdom.OwnedHandler); ok {
		node.SetProp(slot, owned)
		r.metrics.incPropWrite()
		return
	}

	h, ok := r.normalizeHandler(name, next)
	if !ok {
		return
	}
	node.SetProp(slot, h)
	r.metrics.incPropWrite()
}

// normalizeHandler converts an event prop value into a callable
// Handler. A LinkedEvent is wrapped so the listener is invoked as
// Fn(Data, event). Anything that is neither callable nor a
// well-formed linked event is a contract violation and yields no
// handler.
func (r *Reconciler) normalizeHandler(name string, value any) (vdom.Handler, bool) {
	switch h := value.(type) {
	case vdom.Handler:
		if h == nil {
			r.contractViolation("E001", name, value)
			return nil, false
		}
		return h, true
	case func(vdom.Event):
		if h == nil {
			r.contractViolation("E001", name, value)
			return nil, false
		}
		return vdom.Handler(h), true
	case vdom.LinkedEvent:
		return r.wrapLinked(name, h)
	case *vdom.LinkedEvent:
		if h == nil {
			r.contractViolation("E001", name, value)
			return nil, false
		}
		return r.wrapLinked(name, *h)
	default:
		r.contractViolation("E001", name, value)
		return nil, false
	}
}

func (r *Reconciler) wrapLinked(name string, linked vdom.LinkedEvent) (vdom.Handler, bool) {
	if linked.Fn == nil {
		r.contractViolation("E001", name, linked)
		return nil, false
	}
	fn, data := linked.Fn, linked.Data
	return func(evt vdom.Event) { fn(data, evt) }, true
}
