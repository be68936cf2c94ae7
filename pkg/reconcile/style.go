package reconcile

import (
	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// applyStyle reconciles the "style" prop. The caller guarantees next
// is non-nil; removal goes through RemoveProperty.
//
// A style string replaces the whole style state unconditionally. Two
// structured maps get a per-key delta: changed keys are written,
// vanished keys are cleared to empty string, identical keys produce no
// host write. When the previous value is absent or was itself a
// string there is no usable delta and every key is written.
func (r *Reconciler) applyStyle(prev, next any, node host.Binding) {
	if css, ok := next.(string); ok {
		node.SetCSSText(css)
		r.metrics.incStyleWrite()
		return
	}

	nextMap := styleMap(next)
	if nextMap == nil {
		r.contractViolation("E002", "style", next)
		return
	}

	prevMap := styleMap(prev)
	if prevMap == nil {
		for key, value := range nextMap {
			if value == nil {
				continue
			}
			node.SetStyleProp(key, styleValue(key, value))
			r.metrics.incStyleWrite()
		}
		return
	}

	for key, value := range nextMap {
		if value == nil {
			continue
		}
		if prevVal, ok := prevMap[key]; ok && vdom.Equal(prevVal, value) {
			continue
		}
		node.SetStyleProp(key, styleValue(key, value))
		r.metrics.incStyleWrite()
	}
	for key := range prevMap {
		if value, ok := nextMap[key]; !ok || value == nil {
			node.SetStyleProp(key, "")
			r.metrics.incStyleWrite()
		}
	}
}

// styleMap extracts the structured form of a style value, nil when
// the value is absent or raw style text.
func styleMap(v any) vdom.Style {
	switch m := v.(type) {
	case vdom.Style:
		return m
	case map[string]any:
		return vdom.Style(m)
	default:
		return nil
	}
}

// styleValue renders one declaration value. Numbers get a "px" suffix
// unless the CSS property takes bare numbers.
func styleValue(key string, v any) string {
	if s, ok := vdom.Numeric(v); ok {
		if vdom.IsUnitless(key) {
			return s
		}
		return s + "px"
	}
	return vdom.ToString(v)
}
