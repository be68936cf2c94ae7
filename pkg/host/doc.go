// Package host abstracts the live node being reconciled.
//
// The reconciler never touches a rendering surface directly; it is
// handed a Binding, a capability interface over one live node: get or
// set an arbitrary property, set or remove plain and namespaced
// attributes, write style state, and sink raw markup. Failures in a
// real binding are expected to propagate to the caller of the
// reconciliation pass; the reconciler performs no local recovery.
//
// MemNode is a complete in-memory Binding used by tests, the CLI, and
// the live inspector. It records every write as a Mutation, counts
// writes per target so idempotence can be asserted, and normalizes
// markup when comparing raw HTML the way a real host normalizes
// assigned markup.
package host
