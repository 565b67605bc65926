package buffer

// Buffer is a float64 sample slice that can be resized and appended to
// while reusing its backing array.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps s without copying.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Reserve makes room for at least n samples without changing the length,
// so that later appends up to n do not allocate.
func (b *Buffer) Reserve(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]float64, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Append adds samples at the end.
func (b *Buffer) Append(samples ...float64) {
	b.samples = append(b.samples, samples...)
}

// Resize sets the length to n. Elements past the previous length are zeroed
// even when the backing array is reused.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n > cap(b.samples) {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
		return
	}
	b.samples = b.samples[:n]
	if n > oldLen {
		clear(b.samples[oldLen:])
	}
}

// Truncate drops all samples but keeps the capacity.
func (b *Buffer) Truncate() {
	b.samples = b.samples[:0]
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}
