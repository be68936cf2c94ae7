package reconcile

import (
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// applyRawHTML reconciles a raw markup payload. Payloads compare by
// their HTML string, then against the host's own rendered content.
// Hosts normalize markup on assignment, so the payload string alone
// cannot tell whether a write is redundant.
func (r *Reconciler) applyRawHTML(prev, next any, t *Target) {
	lastHTML, _ := rawString(prev)
	nextHTML, ok := rawString(next)
	if !ok {
		r.contractViolation("E003", vdom.RawHTMLProp, next)
		return
	}

	if lastHTML == nextHTML {
		return
	}
	if nextHTML == "" {
		// Clearing raw content is the removal path's job.
		return
	}
	if t.Node.HTMLMatches(nextHTML) {
		return
	}

	// The prior subtree must be fully released before the overwrite,
	// or its delegated listener registrations leak.
	if t.Prior != nil && len(t.Prior.Children) > 0 {
		if len(t.Prior.Children) == 1 {
			r.releaser.Release(t.Prior.Children[0])
		} else {
			r.releaser.ReleaseAll(t.Prior.Children)
		}
		t.Prior.Children = nil
	}

	t.Node.SetHTML(nextHTML)
	r.metrics.incRawReplacement()
}

// rawString extracts the markup from a raw payload value. The second
// result is false when the value is neither a payload nor absent.
func rawString(v any) (string, bool) {
	switch p := v.(type) {
	case vdom.RawHTML:
		return p.HTML, true
	case *vdom.RawHTML:
		if p != nil {
			return p.HTML, true
		}
		return "", true
	case string:
		return p, true
	case nil:
		return "", true
	}
	return "", false
}
