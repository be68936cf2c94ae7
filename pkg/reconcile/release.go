package reconcile

import (
	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// subtreeReleaser is the default Releaser. It walks a prior child
// representation depth-first, deregisters delegated listeners from
// the live nodes the children rendered to, and drops the host
// references so the representation is invalid afterwards.
type subtreeReleaser struct {
	delegator Delegator
}

// Release implements Releaser.
func (s subtreeReleaser) Release(child *vdom.VNode) {
	if child == nil {
		return
	}
	if b, ok := child.Ref.(host.Binding); ok && b != nil && s.delegator != nil {
		for name := range child.Props {
			if event, ok := vdom.DelegatedEvent(name); ok {
				s.delegator.Deregister(event, b)
			}
		}
	}
	for _, c := range child.Children {
		s.Release(c)
	}
	child.Ref = nil
}

// ReleaseAll implements Releaser.
func (s subtreeReleaser) ReleaseAll(children []*vdom.VNode) {
	for _, c := range children {
		s.Release(c)
	}
}
