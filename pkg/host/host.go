package host

// Binding is the capability surface of one live host node. The
// reconciler mutates a node exclusively through this interface, which
// keeps it testable against an in-memory implementation.
//
// Implementations are not safe for concurrent mutation; exactly one
// reconciliation pass may be in flight against a node at a time.
type Binding interface {
	// Tag returns the element tag name, lower-cased.
	Tag() string

	// GetProp reads a live property by name.
	GetProp(name string) any
	// SetProp writes a live property by name. A nil value clears it.
	SetProp(name string, value any)

	// SetAttr sets a plain attribute.
	SetAttr(name, value string)
	// RemoveAttr removes a plain attribute.
	RemoveAttr(name string)

	// SetAttrNS sets a namespaced attribute by namespace URI and
	// qualified name.
	SetAttrNS(ns, name, value string)
	// RemoveAttrNS removes a namespaced attribute.
	RemoveAttrNS(ns, name string)

	// SetStyleProp writes one CSS declaration. An empty value clears
	// the declaration without touching the rest of the style state.
	SetStyleProp(name, value string)
	// SetCSSText replaces the entire style state with raw style text.
	SetCSSText(css string)

	// SetHTML replaces the node's rendered content with raw markup.
	SetHTML(html string)
	// HTMLMatches compares candidate markup against the node's actual
	// rendered content. Hosts may normalize markup on assignment, so
	// this is the host's own equality, not string comparison.
	HTMLMatches(candidate string) bool
}

// Parented is implemented by bindings that expose their parent node,
// which the delegation registry uses to walk from an event's origin
// to the nearest registered node.
type Parented interface {
	ParentNode() Binding
}

// MutationKind discriminates recorded host writes.
type MutationKind string

const (
	MutSetProp      MutationKind = "set-prop"
	MutSetAttr      MutationKind = "set-attr"
	MutRemoveAttr   MutationKind = "remove-attr"
	MutSetAttrNS    MutationKind = "set-attr-ns"
	MutRemoveAttrNS MutationKind = "remove-attr-ns"
	MutSetStyle     MutationKind = "set-style"
	MutSetCSSText   MutationKind = "set-css-text"
	MutSetHTML      MutationKind = "set-html"
)

// Mutation is one recorded write against a MemNode.
type Mutation struct {
	Node  string       `json:"node,omitempty"`
	Kind  MutationKind `json:"kind"`
	Name  string       `json:"name,omitempty"`
	NS    string       `json:"ns,omitempty"`
	Value string       `json:"value,omitempty"`
}
