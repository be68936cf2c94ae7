package delegate

import (
	"testing"

	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

func TestRegisterDeregisterRoundTrip(t *testing.T) {
	g := New()
	n := host.NewMemNode("button")

	g.Register("click", func(vdom.Event) {}, n)
	if !g.Registered("click", n) {
		t.Fatal("expected registration to be visible")
	}

	g.Deregister("click", n)
	if g.Registered("click", n) {
		t.Error("expected registration to be gone")
	}

	// Deregistering twice is harmless.
	g.Deregister("click", n)
}

func TestDispatchToNearestRegisteredNode(t *testing.T) {
	g := New()

	root := host.NewMemNode("div").WithID("root")
	list := host.NewMemNode("ul").WithID("list").WithParent(root)
	item := host.NewMemNode("li").WithID("item").WithParent(list)

	var hit []string
	g.Register("click", func(vdom.Event) { hit = append(hit, "root") }, root)
	g.Register("click", func(vdom.Event) { hit = append(hit, "list") }, list)

	// The origin itself has no handler; the nearest ancestor wins.
	if !g.Dispatch(vdom.Event{Type: "click"}, item) {
		t.Fatal("expected dispatch to find a handler")
	}
	if len(hit) != 1 || hit[0] != "list" {
		t.Errorf("hit = %v, want [list]", hit)
	}
}

func TestDispatchNoHandler(t *testing.T) {
	g := New()
	n := host.NewMemNode("div")

	if g.Dispatch(vdom.Event{Type: "click"}, n) {
		t.Error("expected dispatch to report no handler")
	}
}

func TestDispatchEventPayload(t *testing.T) {
	g := New()
	n := host.NewMemNode("input").WithID("name")

	var got vdom.Event
	g.Register("input", func(evt vdom.Event) { got = evt }, n)

	g.Dispatch(vdom.Event{Type: "input", Value: "abc", Target: "name"}, n)

	if got.Value != "abc" || got.Target != "name" {
		t.Errorf("event = %+v", got)
	}
}
