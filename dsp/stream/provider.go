package stream

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sampler/dsp/sample"
)

// Provider writes the next len(dst) samples of a signal into dst.
type Provider interface {
	Fill(dst []float64)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(dst []float64)

// Fill calls f(dst).
func (f ProviderFunc) Fill(dst []float64) { f(dst) }

// Silence fills with zeros.
var Silence Provider = ProviderFunc(func(dst []float64) { clear(dst) })

// Looping returns a Provider that cycles through buf. An empty buf yields
// silence. buf is read, never modified.
func Looping(buf sample.Buffer) Provider {
	if buf == nil || buf.Len() == 0 {
		return Silence
	}
	return &looping{buf: buf}
}

type looping struct {
	buf sample.Buffer
	pos int
}

func (l *looping) Fill(dst []float64) {
	n := l.buf.Len()
	for i := range dst {
		dst[i] = l.buf.At(l.pos)
		l.pos++
		if l.pos == n {
			l.pos = 0
		}
	}
}

// Scaled multiplies everything p writes by gain.
func Scaled(p Provider, gain float64) Provider {
	if p == nil {
		p = Silence
	}
	return ProviderFunc(func(dst []float64) {
		p.Fill(dst)
		vecmath.ScaleBlockInPlace(dst, gain)
	})
}
