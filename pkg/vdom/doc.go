// Package vdom defines the declarative node model consumed by the
// reconciler.
//
// A VNode describes an element and its Props: attributes, live
// properties, event handlers, style, and raw markup payloads. The
// package also owns the property classification tables: the fixed,
// process-wide lookup structures that decide how a property name is
// applied to a live host node.
//
// # Classification
//
// Classify maps a property name to exactly one PropClass. The mapping
// is a pure total function with a fixed precedence order, so the same
// name always takes the same host-application path:
//
//	delegated event > skip > boolean > strict > event property >
//	style > raw HTML > generic attribute
//
// The tables are initialized once at package load and never mutated,
// so they are safe to share across concurrent reconciliation passes
// against different nodes.
//
// # Event values
//
// Handler is a plain event callback. LinkedEvent bundles a callback
// with auxiliary data and is invoked as Fn(Data, event), which lets a
// listener stay referentially distinguishable from a plain handler
// while its data changes. OwnedHandler tags a handler installed by
// another subsystem so the reconciler never clears a slot it does not
// own.
package vdom
