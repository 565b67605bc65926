package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sampler/dsp/buffer"
	"github.com/cwbudde/algo-sampler/dsp/core"
	"github.com/cwbudde/algo-sampler/dsp/cursor"
)

// Line is a circular feedback delay. Reading and writing share one head,
// so the echo is exactly Len samples behind the input.
type Line struct {
	sampleRate float64
	echoLength float64
	decayRate  float64
	wet        float64

	owner   *buffer.Owner
	pos     int
	pending bool
}

// New returns a Line with a 0.5 s echo, decay 0.75 and wet 0.8 unless
// overridden.
func New(sampleRate float64, opts ...Option) (*Line, error) {
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("delay sample rate must be > 0: %f", sampleRate)
	}
	cfg := config{
		echoLength: defaultEchoLength,
		decayRate:  defaultDecayRate,
		wet:        defaultWet,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if math.IsNaN(cfg.echoLength) || math.IsInf(cfg.echoLength, 0) {
		return nil, fmt.Errorf("delay echo length must be finite: %f", cfg.echoLength)
	}

	d := &Line{
		sampleRate: sampleRate,
		decayRate:  cfg.decayRate,
		owner:      buffer.NewOwner(cfg.pool),
	}
	d.SetWet(cfg.wet)
	d.SetEchoLength(cfg.echoLength)
	d.resize()
	return d, nil
}

// SetEchoLength requests a new echo length in seconds. It takes effect at
// the next ProcessSample. Negative lengths resolve to 0, which turns the
// Line into a pass-through.
func (d *Line) SetEchoLength(seconds float64) {
	d.echoLength = seconds
	d.pending = true
}

// EchoLength returns the most recently requested echo length in seconds.
func (d *Line) EchoLength() float64 { return d.echoLength }

// SetDecayRate sets the feedback gain. Values above 1 grow without bound.
func (d *Line) SetDecayRate(r float64) { d.decayRate = r }

// DecayRate returns the feedback gain.
func (d *Line) DecayRate() float64 { return d.decayRate }

// SetWet sets the wet share of the output, clamped to [0, 1].
func (d *Line) SetWet(w float64) { d.wet = core.Clamp(w, 0, 1) }

// Wet returns the wet share of the output.
func (d *Line) Wet() float64 { return d.wet }

// SampleRate returns the sample rate in Hz.
func (d *Line) SampleRate() float64 { return d.sampleRate }

// Len returns the current delay in samples. A pending length change is not
// reflected until the next ProcessSample.
func (d *Line) Len() int { return d.owner.Len() }

// ProcessSample processes one sample.
func (d *Line) ProcessSample(input float64) float64 {
	input = core.FlushDenormals(input)
	if d.pending {
		d.resize()
	}
	buf := d.owner.Samples()
	if len(buf) == 0 {
		return input
	}

	echo := buf[d.pos]
	out := input*(1-d.wet) + echo*d.wet
	buf[d.pos] = input + echo*d.decayRate
	d.pos++
	if d.pos == len(buf) {
		d.pos = 0
	}
	return out
}

// ProcessInPlace applies the delay to buf in place.
func (d *Line) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}

// Reset clears the echo history.
func (d *Line) Reset() {
	if b := d.owner.Buffer(); b != nil {
		b.Zero()
	}
	d.pos = 0
}

// resize applies the requested length. The newest min(old, new) samples are
// moved to the tail of the new storage and the head is placed on the oldest
// of them, so the echo continues without a gap.
func (d *Line) resize() {
	d.pending = false
	n := core.SecondsToSamples(d.echoLength, d.sampleRate)
	old := d.owner.Samples()
	if n == len(old) {
		return
	}
	if n == 0 {
		d.owner.Release()
		d.pos = 0
		return
	}

	next := d.owner.Acquire(n)
	dst := next.Samples()
	count := min(len(old), n)
	start := d.pos - count
	for i := 0; i < count; i++ {
		dst[n-count+i] = old[cursor.Circular(start+i, len(old))]
	}
	d.owner.Replace(next)
	d.pos = n - count
	if d.pos == n {
		d.pos = 0
	}
}
