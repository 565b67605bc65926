package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sampler/dsp/core"
)

// Oscillator is a sine source whose phase carries over between Fill calls,
// so it can feed a stream segment by segment without discontinuities.
type Oscillator struct {
	sampleRate float64
	freq       float64
	amplitude  float64
	phase      float64
}

// NewOscillator returns an Oscillator at freqHz.
func NewOscillator(sampleRate, freqHz, amplitude float64) (*Oscillator, error) {
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("oscillator sample rate must be > 0: %f", sampleRate)
	}
	return &Oscillator{sampleRate: sampleRate, freq: freqHz, amplitude: amplitude}, nil
}

// SetFrequency changes the pitch without resetting phase.
func (o *Oscillator) SetFrequency(freqHz float64) { o.freq = freqHz }

// Frequency returns the pitch in Hz.
func (o *Oscillator) Frequency() float64 { return o.freq }

// Fill writes the next len(dst) samples.
func (o *Oscillator) Fill(dst []float64) {
	inc := 2 * math.Pi * o.freq / o.sampleRate
	for i := range dst {
		dst[i] = o.amplitude * math.Sin(o.phase)
		o.phase += inc
		if o.phase >= 2*math.Pi {
			o.phase -= 2 * math.Pi
		}
	}
}

// Reset returns the phase to 0.
func (o *Oscillator) Reset() { o.phase = 0 }
