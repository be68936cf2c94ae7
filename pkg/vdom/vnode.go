package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a declarative description of a rendered node. For nodes
// that have been mounted, Ref holds the live host node so a later raw
// markup overwrite can release the subtree it is about to orphan.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes, properties, and event handlers
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key
	Text     string   // For KindText and KindRaw
	Ref      any      // Live host node this vnode rendered to
}

// Props holds attributes, live properties, and event handlers.
type Props map[string]any

// Style is the structured form of the "style" prop. Values may be
// strings or numbers; numbers get a "px" suffix unless the CSS
// property is in the unitless set.
type Style map[string]any

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// El creates an element node.
func El(tag string, props Props, children ...*VNode) *VNode {
	return &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: children,
	}
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}
