// Package sample defines the sample encodings a playback buffer may hold and
// the exact conversions between each encoding and normalized float64 values
// in [-1, 1].
//
// The set of encodings is closed. Each Format carries its own normalize and
// denormalize function, and each encoding has a matching Buffer type, so an
// engine picks the conversion once when the buffer is installed:
//
//	unsigned 8-bit:  (raw / 255) * 2 - 1
//	signed 8-bit:    ((raw + 128) / 255) * 2 - 1
//	unsigned 16-bit: (raw / 65535) * 2 - 1
//	signed 16-bit:   ((raw + 32768) / 65535) * 2 - 1
//	float:           identity
package sample
