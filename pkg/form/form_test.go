package form

import (
	"testing"

	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

func TestIsControlled(t *testing.T) {
	c := New()
	handler := vdom.Handler(func(vdom.Event) {})

	tests := []struct {
		name  string
		props vdom.Props
		want  bool
	}{
		{"value with input handler", vdom.Props{"value": "a", "oninput": handler}, true},
		{"value with change handler", vdom.Props{"value": "a", "onChange": handler}, true},
		{"checked with handler", vdom.Props{"checked": true, "onchange": handler}, true},
		{"value without handler", vdom.Props{"value": "a"}, false},
		{"handler without value", vdom.Props{"oninput": handler}, false},
		{"nil handler", vdom.Props{"value": "a", "oninput": nil}, false},
		{"empty", vdom.Props{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsControlled(tt.props); got != tt.want {
				t.Errorf("IsControlled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinalizeControlledMount(t *testing.T) {
	c := New()
	n := host.NewMemNode("input")
	props := vdom.Props{"value": "a", "oninput": vdom.Handler(func(vdom.Event) {})}

	c.Finalize(nil, n, props, true, true)

	if got := n.GetProp("value"); got != "a" {
		t.Errorf("value = %v, want a", got)
	}
	owned, ok := n.GetProp("onfocus").(vdom.OwnedHandler)
	if !ok || owned.Owner != "form" {
		t.Errorf("onfocus = %v, want form-owned handler", n.GetProp("onfocus"))
	}
}

func TestFinalizeUncontrolledMountSeedsDefaults(t *testing.T) {
	c := New()
	n := host.NewMemNode("input")

	c.Finalize(nil, n, vdom.Props{"value": "seed", "checked": true}, true, false)

	if got := n.GetProp("value"); got != "seed" {
		t.Errorf("value = %v, want seed", got)
	}
	if got := n.GetProp("defaultValue"); got != "seed" {
		t.Errorf("defaultValue = %v, want seed", got)
	}
	if got := n.GetProp("defaultChecked"); got != true {
		t.Errorf("defaultChecked = %v, want true", got)
	}
}

func TestFinalizeIsMountOnly(t *testing.T) {
	c := New()
	n := host.NewMemNode("input")

	c.Finalize(nil, n, vdom.Props{"value": "a"}, false, false)

	if len(n.Mutations()) != 0 {
		t.Errorf("non-mount finalize caused %d writes, want 0", len(n.Mutations()))
	}
}
