// Package errors provides structured, coded errors for the lumen CLI
// and reconciler. Every registered code carries a category, a message,
// and a documentation link, and errors render either as a rich terminal
// block or as a compact single line.
package errors
