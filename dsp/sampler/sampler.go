package sampler

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sampler/dsp/buffer"
	"github.com/cwbudde/algo-sampler/dsp/core"
	"github.com/cwbudde/algo-sampler/dsp/cursor"
	"github.com/cwbudde/algo-sampler/dsp/interp"
	"github.com/cwbudde/algo-sampler/dsp/sample"
)

var errBufferAndLength = errors.New("sampler: WithBuffer and WithLength are mutually exclusive")

// Sampler plays back and records sample buffers.
type Sampler struct {
	sampleRate float64

	data  sample.Buffer
	owner *buffer.Owner

	cur     cursor.Cursor
	region  cursor.Region
	forward bool

	speed     float64
	step      float64
	frequency float64
	tuned     float64
	amplitude float64
	mode      interp.Mode
	edgeFade  int

	playing     bool
	flaggedDone bool
	listeners   []Listener

	recording bool
	scratch   *buffer.Buffer
}

// New returns a stopped Sampler at speed 1 and amplitude 1. Without
// WithBuffer or WithLength it has an empty buffer and outputs silence.
func New(sampleRate float64, opts ...Option) (*Sampler, error) {
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("sampler sample rate must be > 0: %f", sampleRate)
	}
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.length < 0 {
		return nil, fmt.Errorf("sampler length must be >= 0: %d", cfg.length)
	}
	if cfg.buf != nil && cfg.length > 0 {
		return nil, errBufferAndLength
	}

	s := &Sampler{
		sampleRate: sampleRate,
		owner:      buffer.NewOwner(cfg.pool),
		forward:    true,
		speed:      1,
		tuned:      1,
		amplitude:  1,
		mode:       cfg.mode,
		edgeFade:   max(cfg.edgeFade, 0),
		scratch:    buffer.New(0),
	}
	s.scratch.Reserve(cfg.recordingCap)

	switch {
	case cfg.buf != nil:
		s.install(cfg.buf, nil)
	case cfg.length > 0:
		owned := s.owner.Acquire(cfg.length)
		s.install(sample.Float64s(owned.Samples()), owned)
	default:
		s.install(nil, nil)
	}
	return s, nil
}

// SetBuffer plays buf from now on. Previously owned storage is released,
// the in/out range is reset to the whole buffer, loop points are cleared
// and the cursor is rewound.
func (s *Sampler) SetBuffer(buf sample.Buffer) {
	s.install(buf, nil)
}

func (s *Sampler) install(data sample.Buffer, owned *buffer.Buffer) {
	if data == nil {
		data = sample.Float64s(nil)
	}
	s.data = data
	s.owner.Replace(owned)

	looping := s.region.Looping
	s.region = cursor.Full(data.Len())
	s.region.Looping = looping

	s.SetSpeed(s.speed)
	s.Rewind()
}

// Buffer returns the buffer being played.
func (s *Sampler) Buffer() sample.Buffer { return s.data }

// Owned reports whether the current buffer belongs to the Sampler.
func (s *Sampler) Owned() bool { return s.owner.Buffer() != nil }

// Len returns the length of the current buffer.
func (s *Sampler) Len() int { return s.data.Len() }

// SampleRate returns the sample rate in Hz.
func (s *Sampler) SampleRate() float64 { return s.sampleRate }

// SetAmplitude sets the output gain.
func (s *Sampler) SetAmplitude(a float64) { s.amplitude = a }

// Amplitude returns the output gain.
func (s *Sampler) Amplitude() float64 { return s.amplitude }

// SetInterpolation selects how fractional positions are read.
func (s *Sampler) SetInterpolation(m interp.Mode) { s.mode = m }

// Interpolation returns the interpolation mode.
func (s *Sampler) Interpolation() interp.Mode { return s.mode }

// SetEdgeFade sets the fade length in samples at both hard bounds; 0 disables it.
func (s *Sampler) SetEdgeFade(n int) { s.edgeFade = max(n, 0) }

// EdgeFade returns the fade length in samples.
func (s *Sampler) EdgeFade() int { return s.edgeFade }

// Play starts playback and discards any recording that was not ended.
func (s *Sampler) Play() {
	s.playing = true
	s.scratch.Truncate()
}

// Stop halts playback. The next Process call notifies listeners.
func (s *Sampler) Stop() { s.playing = false }

// IsPlaying reports whether playback is running.
func (s *Sampler) IsPlaying() bool { return s.playing }

// Rewind moves the cursor to the start bound for the current direction.
func (s *Sampler) Rewind() {
	if s.forward {
		s.cur.Set(s.region.In, 0)
	} else {
		s.cur.Set(s.region.Out, 0)
	}
}

// Forward moves the cursor to the end bound for the current direction.
func (s *Sampler) Forward() {
	if s.forward {
		s.cur.Set(s.region.Out, 0)
	} else {
		s.cur.Set(s.region.In, 0)
	}
}

// Position returns the integer cursor position inside the in/out range.
func (s *Sampler) Position() int {
	idx, _ := cursor.Split(s.cur.Pos)
	return s.region.Clamp(idx)
}

// PositionFraction returns the fractional part of the cursor position.
func (s *Sampler) PositionFraction() float64 {
	_, frac := cursor.Split(s.cur.Pos)
	return frac
}

// PositionNormalized returns the cursor position relative to the buffer
// length, or 0 for an empty buffer.
func (s *Sampler) PositionNormalized() float64 {
	n := s.data.Len()
	if n == 0 {
		return 0
	}
	return (float64(s.Position()) + s.PositionFraction()) / float64(n)
}

// Process advances the cursor by one step and returns the next output
// sample. It returns 0 and notifies listeners when the buffer is empty,
// playback is stopped, or the cursor moved past the terminal bound.
func (s *Sampler) Process() float64 {
	n := s.data.Len()
	if n == 0 || !s.playing {
		s.notifyDone()
		return 0
	}
	s.validateBounds(n)

	idx, frac := s.cur.Advance()
	idx = s.region.Loop(idx, s.forward)
	if s.region.Beyond(idx, s.forward) {
		s.park()
		s.notifyDone()
		return 0
	}
	idx = s.region.Clamp(idx)
	s.cur.Set(idx, frac)
	s.flaggedDone = false

	v := s.read(idx, frac) * s.amplitude

	if s.edgeFade > 0 {
		fade := float64(s.edgeFade)
		if d := idx - s.region.In; d < s.edgeFade {
			v *= float64(d) / fade
		} else if d := s.region.Out - idx; d < s.edgeFade {
			v *= float64(d) / fade
		}
	}
	return v
}

// ProcessBlock fills dst with consecutive Process results.
func (s *Sampler) ProcessBlock(dst []float64) {
	for i := range dst {
		dst[i] = s.Process()
	}
}

func (s *Sampler) read(idx int, frac float64) float64 {
	x0 := s.data.At(idx)
	if frac == 0 {
		return x0
	}
	switch s.mode {
	case interp.Linear:
		next := s.region.Wrap(idx+1, true)
		return interp.Linear2(frac, x0, s.data.At(next))
	case interp.Hermite:
		prev := s.region.Wrap(idx-1, false)
		next := s.region.Wrap(idx+1, true)
		after := s.region.Wrap(next+1, true)
		return interp.Hermite4(frac, s.data.At(prev), x0, s.data.At(next), s.data.At(after))
	}
	return x0
}

// park leaves the cursor one index past the terminal bound so that further
// calls stay at the end until the cursor is moved or a loop takes over.
func (s *Sampler) park() {
	if s.forward {
		s.cur.Set(s.region.Out+1, 0)
	} else {
		s.cur.Set(s.region.In-1, 0)
	}
}

func (s *Sampler) validateBounds(n int) {
	s.region.In = core.ClampInt(s.region.In, 0, n-1)
	s.region.Out = core.ClampInt(s.region.Out, s.region.In, n-1)
}
