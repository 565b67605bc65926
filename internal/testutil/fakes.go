package testutil

// CountingListener counts completion notifications.
type CountingListener struct {
	Calls int
}

// Done records one notification.
func (l *CountingListener) Done() { l.Calls++ }

// FillCall describes one provider invocation.
type FillCall struct {
	Len   int
	Value float64
}

// RecordingProvider fills every requested range with an increasing constant
// (1, 2, 3, ...) and remembers each call, so tests can tell which refill
// wrote which samples.
type RecordingProvider struct {
	Calls []FillCall
}

// Fill writes the next constant into dst.
func (p *RecordingProvider) Fill(dst []float64) {
	v := float64(len(p.Calls) + 1)
	for i := range dst {
		dst[i] = v
	}
	p.Calls = append(p.Calls, FillCall{Len: len(dst), Value: v})
}
