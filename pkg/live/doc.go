// Package live streams host mutations to attached inspector clients
// over WebSocket. It is a development aid: point an Inspector at a
// MemNode and every write the reconciler performs is broadcast as it
// happens, with HTTP endpoints for the current node snapshot and the
// accumulated mutation log.
package live
