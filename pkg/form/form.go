package form

import (
	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// Controller is the default controlled-form-element collaborator.
type Controller struct{}

// New creates a Controller.
func New() *Controller { return &Controller{} }

// IsControlled reports whether the property set marks the control's
// value as externally owned: a declared value or checked state
// together with a change or input handler.
func (c *Controller) IsControlled(props vdom.Props) bool {
	_, hasValue := props["value"]
	_, hasChecked := props["checked"]
	if !hasValue && !hasChecked {
		return false
	}
	for _, name := range []string{"oninput", "onchange", "onInput", "onChange"} {
		if h, ok := props[name]; ok && h != nil {
			return true
		}
	}
	return false
}

// Finalize runs once after mount property application. For controlled
// controls it installs the ownership-tagged slots so later passes do
// not clobber them; for uncontrolled controls it seeds the live value
// from the declared initial state.
func (c *Controller) Finalize(desc *vdom.VNode, node host.Binding, props vdom.Props, isMount, isControlled bool) {
	if !isMount {
		return
	}

	if isControlled {
		// The value slot is owned here from now on; generic property
		// assignment skips it on every later pass.
		if v, ok := props["value"]; ok {
			node.SetProp("value", vdom.ToString(v))
		}
		if v, ok := props["checked"]; ok {
			node.SetProp("checked", vdom.Truthy(v))
		}
		node.SetProp("onfocus", vdom.OwnedHandler{
			Fn:    func(vdom.Event) {},
			Owner: "form",
		})
		return
	}

	// Uncontrolled: the declared value is only the initial state.
	if v, ok := props["value"]; ok {
		if node.GetProp("value") == nil {
			node.SetProp("value", vdom.ToString(v))
		}
		node.SetProp("defaultValue", vdom.ToString(v))
	}
	if v, ok := props["checked"]; ok {
		node.SetProp("defaultChecked", vdom.Truthy(v))
	}
}
