package vdom

import "strings"

// PropClass identifies how a property name is applied to a host node.
type PropClass uint8

const (
	ClassGeneric   PropClass = iota // Plain (possibly namespaced) attribute
	ClassDelegated                  // Event routed through the delegation registry
	ClassSkip                       // Internal bookkeeping, never written to the host
	ClassBoolean                    // Live boolean property
	ClassStrict                     // Live property, written only when the value changed
	ClassEvent                      // Direct event property ("on" naming convention)
	ClassStyle                      // Style object or style text
	ClassRawHTML                    // Raw markup payload
)

// String returns the string representation of the PropClass.
func (c PropClass) String() string {
	switch c {
	case ClassGeneric:
		return "Generic"
	case ClassDelegated:
		return "Delegated"
	case ClassSkip:
		return "Skip"
	case ClassBoolean:
		return "Boolean"
	case ClassStrict:
		return "Strict"
	case ClassEvent:
		return "Event"
	case ClassStyle:
		return "Style"
	case ClassRawHTML:
		return "RawHTML"
	default:
		return "Unknown"
	}
}

// RawHTMLProp marks a raw markup payload in Props. Its value must be
// a RawHTML (or *RawHTML); the payload is diffed by the HTML string,
// not by object identity.
const RawHTMLProp = "unsafeHTML"

// delegatedEvents lists the bubbling events handled by a single
// listener at a shared root. Keys omit the "on" prefix.
var delegatedEvents = map[string]bool{
	"click":       true,
	"dblclick":    true,
	"input":       true,
	"change":      true,
	"submit":      true,
	"reset":       true,
	"keydown":     true,
	"keyup":       true,
	"mousedown":   true,
	"mouseup":     true,
	"pointerdown": true,
	"pointerup":   true,
	"touchstart":  true,
	"touchend":    true,
	"focusin":     true,
	"focusout":    true,
}

// skipProps are never written to the host. Underscore-prefixed names
// are internal bookkeeping and are skipped as well.
var skipProps = map[string]bool{
	"key":      true,
	"children": true,
	"ref":      true,
}

var booleanProps = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// strictProps are assigned as live properties but only after reading
// the current value back. Writing "value" unconditionally would reset
// the cursor position on every pass.
var strictProps = map[string]bool{
	"value":  true,
	"volume": true,
}

// namespaceURIs maps attribute name prefixes to XML namespace URIs,
// used for SVG foreign attributes.
var namespaceURIs = map[string]string{
	"xlink": "http://www.w3.org/1999/xlink",
	"xml":   "http://www.w3.org/XML/1998/namespace",
	"xmlns": "http://www.w3.org/2000/xmlns/",
}

// unitlessStyles are the CSS properties whose numeric values are
// written bare. Every other property gets a "px" suffix.
var unitlessStyles = map[string]bool{
	"animation-iteration-count": true,
	"column-count":              true,
	"fill-opacity":              true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"grid-column":               true,
	"grid-row":                  true,
	"line-height":               true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"stop-opacity":              true,
	"stroke-dashoffset":         true,
	"stroke-opacity":            true,
	"stroke-width":              true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
}

// Classify maps a property name to its host-application class.
//
// The precedence order is fixed and total: delegated events win over
// the skip set, which wins over boolean properties, then strict
// properties, the "on" naming convention, style, the raw HTML marker,
// and finally the generic attribute fallback. Precedence matters
// because some names would otherwise match several rules ("onclick"
// is both delegated and an event property by naming convention).
//
// The value-dependent precedence steps of property application (the
// controlled-value skip and null-valued removal) are branches in the
// reconciler, not here: Classify depends on the name alone.
func Classify(name string) PropClass {
	switch {
	case IsDelegated(name):
		return ClassDelegated
	case skipProps[name] || strings.HasPrefix(name, "_"):
		return ClassSkip
	case booleanProps[strings.ToLower(name)]:
		return ClassBoolean
	case strictProps[name]:
		return ClassStrict
	case IsEventProp(name):
		return ClassEvent
	case name == "style":
		return ClassStyle
	case name == RawHTMLProp:
		return ClassRawHTML
	default:
		return ClassGeneric
	}
}

// IsEventProp returns true if the name follows the event property
// naming convention ("on" prefix). The check is case-insensitive, so
// onClick and ONCLICK also match.
func IsEventProp(name string) bool {
	return len(name) > 2 && strings.EqualFold(name[:2], "on")
}

// IsDelegated returns true if the property names a delegated event.
func IsDelegated(name string) bool {
	_, ok := DelegatedEvent(name)
	return ok
}

// DelegatedEvent returns the delegated event name (without the "on"
// prefix) for a property name, if the event is delegated.
func DelegatedEvent(name string) (string, bool) {
	if !IsEventProp(name) {
		return "", false
	}
	event := strings.ToLower(name[2:])
	if !delegatedEvents[event] {
		return "", false
	}
	return event, true
}

// NamespaceFor returns the XML namespace URI for a prefixed attribute
// name like "xlink:href". Unprefixed and unknown-prefix names have no
// namespace.
func NamespaceFor(name string) (string, bool) {
	idx := strings.IndexByte(name, ':')
	if idx <= 0 {
		return "", false
	}
	uri, ok := namespaceURIs[name[:idx]]
	return uri, ok
}

// IsUnitless returns true if the CSS property takes bare numeric
// values.
func IsUnitless(cssProp string) bool {
	return unitlessStyles[strings.ToLower(cssProp)]
}
