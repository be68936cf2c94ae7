// Package reconcile applies declarative property descriptions to live
// host nodes.
//
// Given a previous and a next value for one property, the reconciler
// computes and performs the minimal host mutation: booleans become
// live property writes, strict properties are read before writing,
// style objects get per-key deltas, event properties route to the
// delegation registry or a direct slot, and raw markup payloads
// release the prior subtree before injecting new content. Removals go
// through the same category dispatch as updates, so removing a
// delegated event deregisters it instead of clearing an attribute.
//
// The reconciler is synchronous and performs no internal queuing or
// retries. Callers sequence passes node by node; exactly one pass may
// be in flight against a given node at a time. Host binding failures
// are not caught; a broken host has no meaningful local recovery.
//
// # Collaborators
//
// Delegator registers interest in delegated events, FormControl owns
// controlled-value semantics for form elements, and Releaser tears
// down a prior child representation before a raw markup overwrite.
// All three are injected; tests use spies, and the delegate and form
// packages ship working defaults.
package reconcile
