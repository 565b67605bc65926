// Package sampler plays a sample buffer forward or backward at any speed,
// restricted to an in/out range with an optional loop range, and records
// incoming audio into a new buffer that can replace the one being played.
//
// A Sampler is driven by one caller, once per sample (Process) or once per
// block (ProcessBlock). Nothing runs in the background: buffer replacement,
// recording promotion and listener notification all happen inside the call
// that triggers them.
//
// Buffer lifetime: a Sampler either borrows a buffer (SetBuffer, WithBuffer)
// or owns one (WithLength, EndRecording). Owned storage is handed back to the
// buffer pool the moment it is replaced, so a Buffer obtained from Buffer()
// must not be used after the next SetBuffer or EndRecording.
package sampler
