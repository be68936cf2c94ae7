package host

import (
	"strings"
	"testing"
)

func TestMemNodeProps(t *testing.T) {
	n := NewMemNode("input")

	n.SetProp("value", "hello")
	if got := n.GetProp("value"); got != "hello" {
		t.Errorf("GetProp(value) = %v, want hello", got)
	}

	n.SetProp("value", nil)
	if got := n.GetProp("value"); got != nil {
		t.Errorf("GetProp(value) = %v, want nil after clear", got)
	}

	if got := n.WriteCount(MutSetProp, "value"); got != 2 {
		t.Errorf("WriteCount(set-prop, value) = %d, want 2", got)
	}
}

func TestMemNodeAttrs(t *testing.T) {
	n := NewMemNode("div")

	n.SetAttr("class", "card")
	if v, ok := n.Attr("class"); !ok || v != "card" {
		t.Errorf("Attr(class) = %q, %v", v, ok)
	}

	n.RemoveAttr("class")
	if _, ok := n.Attr("class"); ok {
		t.Error("class should be removed")
	}
}

func TestMemNodeNamespacedAttrs(t *testing.T) {
	const xlink = "http://www.w3.org/1999/xlink"
	n := NewMemNode("use")

	n.SetAttrNS(xlink, "xlink:href", "#icon")
	if v, ok := n.AttrNS(xlink, "xlink:href"); !ok || v != "#icon" {
		t.Errorf("AttrNS = %q, %v", v, ok)
	}

	n.RemoveAttrNS(xlink, "xlink:href")
	if _, ok := n.AttrNS(xlink, "xlink:href"); ok {
		t.Error("namespaced attr should be removed")
	}
}

func TestMemNodeStyle(t *testing.T) {
	n := NewMemNode("div")

	n.SetStyleProp("color", "red")
	n.SetStyleProp("width", "10px")
	if v, _ := n.StyleProp("color"); v != "red" {
		t.Errorf("StyleProp(color) = %q, want red", v)
	}

	// Empty value clears one declaration only.
	n.SetStyleProp("color", "")
	if _, ok := n.StyleProp("color"); ok {
		t.Error("color should be cleared")
	}
	if _, ok := n.StyleProp("width"); !ok {
		t.Error("width must survive clearing color")
	}

	// Removing the style attribute resets all style state.
	n.SetCSSText("margin: 0")
	n.RemoveAttr("style")
	if n.CSSText() != "" {
		t.Errorf("CSSText = %q, want empty after attribute removal", n.CSSText())
	}
}

func TestMemNodeHTMLNormalization(t *testing.T) {
	n := NewMemNode("div")

	n.SetHTML(`<p class=a>hi</p>`)
	if !n.HTMLMatches(`<p class="a">hi</p>`) {
		t.Error("expected quote normalization to make markup match")
	}
	if n.HTMLMatches(`<p class="b">hi</p>`) {
		t.Error("different markup must not match")
	}
	if !strings.Contains(n.HTML(), `class="a"`) {
		t.Errorf("HTML() = %q, want normalized attribute quoting", n.HTML())
	}
}

func TestMemNodeMutationLog(t *testing.T) {
	n := NewMemNode("div").WithID("n1")

	var seen []Mutation
	n.Observe(func(m Mutation) { seen = append(seen, m) })

	n.SetAttr("id", "x")
	n.SetProp("disabled", true)

	muts := n.Mutations()
	if len(muts) != 2 {
		t.Fatalf("len(Mutations) = %d, want 2", len(muts))
	}
	if muts[0].Kind != MutSetAttr || muts[0].Name != "id" || muts[0].Node != "n1" {
		t.Errorf("first mutation = %+v", muts[0])
	}
	if muts[1].Kind != MutSetProp || muts[1].Value != "true" {
		t.Errorf("second mutation = %+v", muts[1])
	}
	if len(seen) != 2 {
		t.Errorf("observer saw %d mutations, want 2", len(seen))
	}
}

func TestMemNodeSnapshotJSON(t *testing.T) {
	n := NewMemNode("input").WithID("n1")
	n.SetAttr("type", "text")
	n.SetProp("value", "abc")

	data, err := n.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	for _, want := range []string{`"tag": "input"`, `"type": "text"`, `"value": "abc"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("snapshot missing %s:\n%s", want, data)
		}
	}
}

func TestEncodeMutations(t *testing.T) {
	data, err := EncodeMutations([]Mutation{{Kind: MutSetAttr, Name: "id", Value: "x"}})
	if err != nil {
		t.Fatalf("EncodeMutations() error: %v", err)
	}
	if !strings.Contains(string(data), `"set-attr"`) {
		t.Errorf("encoded mutations = %s", data)
	}
}

func TestMemNodeParentChain(t *testing.T) {
	root := NewMemNode("div").WithID("root")
	child := NewMemNode("button").WithID("btn").WithParent(root)

	if child.ParentNode() != Binding(root) {
		t.Error("ParentNode should return the parent binding")
	}
	if root.ParentNode() != nil {
		t.Error("root has no parent")
	}
}
