package host

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MemNode is an in-memory Binding. It keeps full node state, records
// every write as a Mutation, and counts writes per (kind, name) so
// tests can assert that unchanged values produce no host traffic.
type MemNode struct {
	id     string
	tag    string
	parent *MemNode

	props   map[string]any
	attrs   map[string]string
	nsAttrs map[string]map[string]string
	styles  map[string]string
	cssText string
	html    string

	mutations []Mutation
	writes    map[string]int
	observers []func(Mutation)
}

// NewMemNode creates an in-memory node with the given tag.
func NewMemNode(tag string) *MemNode {
	return &MemNode{
		tag:     strings.ToLower(tag),
		props:   make(map[string]any),
		attrs:   make(map[string]string),
		nsAttrs: make(map[string]map[string]string),
		styles:  make(map[string]string),
		writes:  make(map[string]int),
	}
}

// WithID assigns an identifier used in mutation records and event
// dispatch.
func (n *MemNode) WithID(id string) *MemNode {
	n.id = id
	return n
}

// WithParent links the node under a parent, forming the chain the
// delegation registry walks.
func (n *MemNode) WithParent(parent *MemNode) *MemNode {
	n.parent = parent
	return n
}

// ID returns the node identifier.
func (n *MemNode) ID() string { return n.id }

// Tag implements Binding.
func (n *MemNode) Tag() string { return n.tag }

// ParentNode implements Parented.
func (n *MemNode) ParentNode() Binding {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Observe registers a callback invoked for every recorded mutation.
func (n *MemNode) Observe(fn func(Mutation)) {
	n.observers = append(n.observers, fn)
}

func (n *MemNode) record(m Mutation) {
	m.Node = n.id
	n.mutations = append(n.mutations, m)
	n.writes[string(m.Kind)+"\x00"+m.Name]++
	for _, fn := range n.observers {
		fn(m)
	}
}

// GetProp implements Binding.
func (n *MemNode) GetProp(name string) any { return n.props[name] }

// SetProp implements Binding.
func (n *MemNode) SetProp(name string, value any) {
	n.props[name] = value
	n.record(Mutation{Kind: MutSetProp, Name: name, Value: valueString(value)})
}

// SetAttr implements Binding.
func (n *MemNode) SetAttr(name, value string) {
	n.attrs[name] = value
	n.record(Mutation{Kind: MutSetAttr, Name: name, Value: value})
}

// RemoveAttr implements Binding.
func (n *MemNode) RemoveAttr(name string) {
	delete(n.attrs, name)
	if name == "style" {
		n.styles = make(map[string]string)
		n.cssText = ""
	}
	n.record(Mutation{Kind: MutRemoveAttr, Name: name})
}

// SetAttrNS implements Binding.
func (n *MemNode) SetAttrNS(ns, name, value string) {
	if n.nsAttrs[ns] == nil {
		n.nsAttrs[ns] = make(map[string]string)
	}
	n.nsAttrs[ns][name] = value
	n.record(Mutation{Kind: MutSetAttrNS, NS: ns, Name: name, Value: value})
}

// RemoveAttrNS implements Binding.
func (n *MemNode) RemoveAttrNS(ns, name string) {
	delete(n.nsAttrs[ns], name)
	n.record(Mutation{Kind: MutRemoveAttrNS, NS: ns, Name: name})
}

// SetStyleProp implements Binding. An empty value clears the
// declaration.
func (n *MemNode) SetStyleProp(name, value string) {
	if value == "" {
		delete(n.styles, name)
	} else {
		n.styles[name] = value
	}
	n.record(Mutation{Kind: MutSetStyle, Name: name, Value: value})
}

// SetCSSText implements Binding.
func (n *MemNode) SetCSSText(css string) {
	n.styles = make(map[string]string)
	n.cssText = css
	n.record(Mutation{Kind: MutSetCSSText, Value: css})
}

// SetHTML implements Binding. Markup is stored normalized, the way a
// real host re-serializes assigned markup.
func (n *MemNode) SetHTML(markup string) {
	n.html = normalizeHTML(markup)
	n.record(Mutation{Kind: MutSetHTML, Value: markup})
}

// HTMLMatches implements Binding.
func (n *MemNode) HTMLMatches(candidate string) bool {
	return n.html == normalizeHTML(candidate)
}

// Attr returns a plain attribute and whether it is present.
func (n *MemNode) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// AttrNS returns a namespaced attribute and whether it is present.
func (n *MemNode) AttrNS(ns, name string) (string, bool) {
	v, ok := n.nsAttrs[ns][name]
	return v, ok
}

// StyleProp returns one CSS declaration and whether it is set.
func (n *MemNode) StyleProp(name string) (string, bool) {
	v, ok := n.styles[name]
	return v, ok
}

// CSSText returns the raw style text, if the style was last set
// wholesale.
func (n *MemNode) CSSText() string { return n.cssText }

// HTML returns the node's rendered (normalized) markup.
func (n *MemNode) HTML() string { return n.html }

// Mutations returns every write recorded so far, in order.
func (n *MemNode) Mutations() []Mutation { return n.mutations }

// WriteCount returns how many writes of the given kind hit the given
// name.
func (n *MemNode) WriteCount(kind MutationKind, name string) int {
	return n.writes[string(kind)+"\x00"+name]
}

// snapshot is the JSON shape of a MemNode's state.
type snapshot struct {
	ID      string                       `json:"id,omitempty"`
	Tag     string                       `json:"tag"`
	Attrs   map[string]string            `json:"attrs,omitempty"`
	NSAttrs map[string]map[string]string `json:"nsAttrs,omitempty"`
	Styles  map[string]string            `json:"styles,omitempty"`
	CSSText string                       `json:"cssText,omitempty"`
	HTML    string                       `json:"html,omitempty"`
	Props   map[string]string            `json:"props,omitempty"`
}

// Snapshot serializes the node state to JSON.
func (n *MemNode) Snapshot() ([]byte, error) {
	props := make(map[string]string, len(n.props))
	for k, v := range n.props {
		props[k] = valueString(v)
	}
	return json.MarshalIndent(snapshot{
		ID:      n.id,
		Tag:     n.tag,
		Attrs:   n.attrs,
		NSAttrs: n.nsAttrs,
		Styles:  n.styles,
		CSSText: n.cssText,
		HTML:    n.html,
		Props:   props,
	}, "", "  ")
}

// EncodeMutations serializes a mutation list to JSON.
func EncodeMutations(muts []Mutation) ([]byte, error) {
	return json.Marshal(muts)
}

// valueString renders a property value for the mutation log. Handlers
// and other non-scalar values are shown by type only.
func valueString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

// normalizeHTML parses markup as a fragment and re-renders it, which
// collapses serialization differences (attribute quoting, implied
// tags) the way browsers do when markup is assigned and read back.
func normalizeHTML(markup string) string {
	if markup == "" {
		return ""
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return markup
	}
	var b strings.Builder
	for _, node := range nodes {
		if err := html.Render(&b, node); err != nil {
			return markup
		}
	}
	return b.String()
}
