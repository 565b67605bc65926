// Package buffer provides the float64 sample storage used by the playback
// and delay engines: a growable Buffer, a sync.Pool-backed Pool, and Owner,
// the single-slot holder through which an engine owns its storage.
//
// Ownership is exclusive and immediate. When an Owner replaces or releases a
// Buffer, the old Buffer goes back to its Pool at once; any slice previously
// obtained from it must no longer be used.
package buffer
