package delegate

import (
	"sync"

	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// Registry tracks which nodes are interested in which delegated
// events. Registration happens on the reconciliation pass (single
// goroutine per node), dispatch may come from an event loop, so the
// table is guarded.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]map[host.Binding]vdom.Handler
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]map[host.Binding]vdom.Handler),
	}
}

// Register records interest of node in the given event.
func (g *Registry) Register(event string, h vdom.Handler, node host.Binding) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.handlers[event] == nil {
		g.handlers[event] = make(map[host.Binding]vdom.Handler)
	}
	g.handlers[event][node] = h
}

// Deregister removes the node's interest in the given event. Unknown
// registrations are ignored.
func (g *Registry) Deregister(event string, node host.Binding) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.handlers[event], node)
}

// Registered reports whether the node currently has a handler for the
// event.
func (g *Registry) Registered(event string, node host.Binding) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.handlers[event][node]
	return ok
}

// Dispatch delivers an event originating at origin to the nearest
// registered node, walking the parent chain. It returns true when a
// handler was invoked.
func (g *Registry) Dispatch(evt vdom.Event, origin host.Binding) bool {
	for node := origin; node != nil; {
		g.mu.RLock()
		h, ok := g.handlers[evt.Type][node]
		g.mu.RUnlock()
		if ok {
			h(evt)
			return true
		}
		parented, hasParent := node.(host.Parented)
		if !hasParent {
			return false
		}
		node = parented.ParentNode()
	}
	return false
}
