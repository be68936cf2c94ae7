package reconcile

import (
	"context"
	"testing"

	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// spyForm records form-collaborator calls.
type spyForm struct {
	controlled    bool
	finalized     int
	gotIsMount    bool
	gotControlled bool
	valueAtFinal  any
}

func (s *spyForm) IsControlled(props vdom.Props) bool { return s.controlled }

func (s *spyForm) Finalize(desc *vdom.VNode, node host.Binding, props vdom.Props, isMount, isControlled bool) {
	s.finalized++
	s.gotIsMount = isMount
	s.gotControlled = isControlled
	s.valueAtFinal = node.GetProp("checked")
}

func TestMountAppliesAllProperties(t *testing.T) {
	r := New()
	n := host.NewMemNode("div")
	desc := vdom.El("div", nil)

	r.MountProperties(context.Background(), desc, vdom.Props{
		"class":    "card",
		"hidden":   true,
		"tabindex": 2,
	}, n, false)

	if v, _ := n.Attr("class"); v != "card" {
		t.Errorf("class = %q, want card", v)
	}
	if got := n.GetProp("hidden"); got != true {
		t.Errorf("hidden = %v, want true", got)
	}
	if v, _ := n.Attr("tabindex"); v != "2" {
		t.Errorf("tabindex = %q, want 2", v)
	}
	if desc.Ref != host.Binding(n) {
		t.Error("mount must link the descriptor to the live node")
	}
}

func TestMountFinalizesFormElementAfterAssignment(t *testing.T) {
	form := &spyForm{}
	r := New(WithFormControl(form))
	n := host.NewMemNode("input")

	r.MountProperties(context.Background(), vdom.El("input", nil), vdom.Props{
		"checked": true,
		"type":    "checkbox",
	}, n, false)

	if form.finalized != 1 {
		t.Fatalf("finalized %d times, want 1", form.finalized)
	}
	if !form.gotIsMount {
		t.Error("finalize must see isMount = true")
	}
	// Finalize runs strictly after property assignment.
	if form.valueAtFinal != true {
		t.Errorf("checked at finalize = %v, want true", form.valueAtFinal)
	}
}

func TestMountControlledValueDeferred(t *testing.T) {
	form := &spyForm{controlled: true}
	r := New(WithFormControl(form))
	n := host.NewMemNode("input")

	r.MountProperties(context.Background(), vdom.El("input", nil), vdom.Props{
		"value": "typed",
	}, n, false)

	if got := n.WriteCount(host.MutSetProp, "value"); got != 0 {
		t.Errorf("controlled mount wrote value %d times, want 0", got)
	}
	if !form.gotControlled {
		t.Error("finalize must see isControlled = true")
	}
}

func TestMountNonFormSkipsCollaborator(t *testing.T) {
	form := &spyForm{}
	r := New(WithFormControl(form))
	n := host.NewMemNode("div")

	r.MountProperties(context.Background(), vdom.El("div", nil), vdom.Props{"class": "x"}, n, false)

	if form.finalized != 0 {
		t.Errorf("finalized %d times for a non-form element, want 0", form.finalized)
	}
}

func TestMountWithTracingEnabled(t *testing.T) {
	// The default tracer provider is a no-op; the pass must still run.
	r := New(WithTracing(""))
	n := host.NewMemNode("div")

	r.MountProperties(context.Background(), vdom.El("div", nil), vdom.Props{"id": "x"}, n, false)

	if v, _ := n.Attr("id"); v != "x" {
		t.Errorf("id = %q, want x", v)
	}
}
