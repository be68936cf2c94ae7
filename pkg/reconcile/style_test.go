package reconcile

import (
	"testing"

	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

func TestStyleStructuredDelta(t *testing.T) {
	r := New()
	target, n := newTarget("div")

	prev := vdom.Style{"color": "1px", "margin": "2px"}
	next := vdom.Style{"color": "1px", "padding": "3px"}
	r.ApplyProperty("style", prev, next, target)

	// Identical key: untouched.
	if got := n.WriteCount(host.MutSetStyle, "color"); got != 0 {
		t.Errorf("color write count = %d, want 0", got)
	}
	// Vanished key: cleared to empty string.
	if got := n.WriteCount(host.MutSetStyle, "margin"); got != 1 {
		t.Errorf("margin write count = %d, want 1", got)
	}
	if _, ok := n.StyleProp("margin"); ok {
		t.Error("margin should be cleared")
	}
	// New key: written.
	if v, _ := n.StyleProp("padding"); v != "3px" {
		t.Errorf("padding = %q, want 3px", v)
	}
}

func TestStyleUnitRule(t *testing.T) {
	r := New()
	target, n := newTarget("div")

	r.ApplyProperty("style", nil, vdom.Style{"width": 10, "opacity": 0.5, "z-index": 3}, target)

	if v, _ := n.StyleProp("width"); v != "10px" {
		t.Errorf("width = %q, want 10px", v)
	}
	if v, _ := n.StyleProp("opacity"); v != "0.5" {
		t.Errorf("opacity = %q, want 0.5", v)
	}
	if v, _ := n.StyleProp("z-index"); v != "3" {
		t.Errorf("z-index = %q, want 3", v)
	}
}

func TestStyleStringIsAtomicOverride(t *testing.T) {
	r := New()
	target, n := newTarget("div")
	n.SetStyleProp("color", "red")

	r.ApplyProperty("style", vdom.Style{"color": "red"}, "margin: 0; color: blue", target)

	if n.CSSText() != "margin: 0; color: blue" {
		t.Errorf("CSSText = %q", n.CSSText())
	}
	if _, ok := n.StyleProp("color"); ok {
		t.Error("structured state should be replaced by the text form")
	}
}

func TestStyleAfterStringWritesEveryKey(t *testing.T) {
	r := New()
	target, n := newTarget("div")

	// A string previous is incompatible with a structured diff.
	r.ApplyProperty("style", "color: red", vdom.Style{"width": "5px", "height": 4}, target)

	if v, _ := n.StyleProp("width"); v != "5px" {
		t.Errorf("width = %q, want 5px", v)
	}
	if v, _ := n.StyleProp("height"); v != "4px" {
		t.Errorf("height = %q, want 4px", v)
	}
}

func TestStyleNilValueClearsKey(t *testing.T) {
	r := New()
	target, n := newTarget("div")

	prev := vdom.Style{"color": "red"}
	next := vdom.Style{"color": nil, "width": "1px"}
	r.ApplyProperty("style", prev, next, target)

	if _, ok := n.StyleProp("color"); ok {
		t.Error("nil value should clear the declaration")
	}
	if v, _ := n.StyleProp("width"); v != "1px" {
		t.Errorf("width = %q, want 1px", v)
	}
}

func TestStylePlainMapAccepted(t *testing.T) {
	r := New()
	target, n := newTarget("div")

	r.ApplyProperty("style", nil, map[string]any{"color": "red"}, target)

	if v, _ := n.StyleProp("color"); v != "red" {
		t.Errorf("color = %q, want red", v)
	}
}
