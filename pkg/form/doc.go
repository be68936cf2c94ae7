// Package form owns controlled-value semantics for form elements.
//
// A form control is controlled when its value (or checked state) is
// declared together with a handler that feeds edits back into
// application state; the displayed value is then owned by this
// collaborator rather than by generic property assignment. The
// reconciler consults IsControlled before a pass and calls Finalize
// once after mount, strictly after all property assignments.
package form
