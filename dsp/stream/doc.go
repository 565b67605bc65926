// Package stream plays an unbounded signal through a small fixed buffer.
//
// The buffer is split into equal segments. Whenever the read cursor crosses
// a segment border the Stream asks its Provider to overwrite one segment,
// chosen relative to the crossed border by the update offset, so that data
// is replaced after the cursor has left it and before it returns.
//
// Refills run synchronously inside Process. Providers must therefore be
// cheap enough for the audio thread or be backed by precomputed data.
package stream
