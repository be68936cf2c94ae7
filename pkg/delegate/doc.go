// Package delegate implements the event-delegation registry.
//
// Instead of one listener per node, delegated event types are handled
// by a single listener at a shared root. Nodes register interest
// through Register; when an event arrives, Dispatch walks from the
// originating node up the parent chain and invokes the handler of the
// nearest registered node.
//
// The registry satisfies the reconciler's Delegator interface.
package delegate
