package stream

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/cwbudde/algo-sampler/dsp/buffer"
	"github.com/cwbudde/algo-sampler/dsp/cursor"
	"github.com/cwbudde/algo-sampler/dsp/interp"
)

// NoEvent is returned by Sector before any segment has been refilled.
const NoEvent = -1

// ErrDivisions reports a division count that does not split the buffer
// into equal segments.
var ErrDivisions = errors.New("stream: divisions must be >= 1 and divide the buffer length")

// Stream is a circular playback buffer refilled segment by segment.
type Stream struct {
	provider Provider
	buf      *buffer.Buffer

	divisions int
	segLen    int
	offset    int

	cur       cursor.Cursor
	mode      interp.Mode
	amplitude float64

	sector int
	logger *log.Logger
}

// New returns a Stream with a buffer of length samples, filled once from
// provider. A nil provider plays silence.
func New(provider Provider, length int, opts ...Option) (*Stream, error) {
	if length < 0 {
		return nil, fmt.Errorf("stream length must be >= 0: %d", length)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.divisions < 1 || length%cfg.divisions != 0 {
		return nil, fmt.Errorf("%w: %d divisions for %d samples", ErrDivisions, cfg.divisions, length)
	}
	if provider == nil {
		provider = Silence
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}

	s := &Stream{
		provider:  provider,
		buf:       buffer.New(length),
		divisions: cfg.divisions,
		segLen:    length / cfg.divisions,
		offset:    cursor.Circular(cfg.offset, cfg.divisions),
		cur:       cursor.Cursor{Step: cfg.speed},
		mode:      cfg.mode,
		amplitude: cfg.amplitude,
		sector:    NoEvent,
		logger:    cfg.logger,
	}
	s.provider.Fill(s.buf.Samples())
	return s, nil
}

// Process advances the cursor, returns the next sample and refills one
// segment for every border crossed by the step.
func (s *Stream) Process() float64 {
	n := s.buf.Len()
	if n == 0 {
		return 0
	}

	start := s.cur.Pos
	idx, frac := s.cur.Advance()
	end := s.cur.Pos
	idx = cursor.Circular(idx, n)
	s.cur.Set(idx, frac)

	v := s.read(idx, frac) * s.amplitude

	s.refillCrossed(start, end)
	return v
}

// ProcessBlock fills dst with consecutive Process results.
func (s *Stream) ProcessBlock(dst []float64) {
	for i := range dst {
		dst[i] = s.Process()
	}
}

// ReplaceSegment overwrites segment i from the provider. Out-of-range
// indices are logged and ignored.
func (s *Stream) ReplaceSegment(i int) {
	if i < 0 || i >= s.divisions {
		s.logger.Printf("stream: segment index %d out of range [0, %d)", i, s.divisions)
		return
	}
	start := i * s.segLen
	s.provider.Fill(s.buf.Samples()[start : start+s.segLen])
}

// refillCrossed refills a segment for each border in the unwrapped span
// moved from start to end, in the order the borders were passed. Border k
// lies at k*segLen; wrapped laps map back onto k mod divisions.
func (s *Stream) refillCrossed(start, end float64) {
	if start == end || math.IsNaN(end) || math.IsInf(end, 0) {
		return
	}
	seg := float64(s.segLen)
	if end > start {
		// start < border <= end
		for k := int(math.Floor(start/seg)) + 1; k <= int(math.Floor(end/seg)); k++ {
			s.refill(cursor.Circular(k, s.divisions))
		}
		return
	}
	// end < border <= start
	for k := int(math.Floor(start / seg)); k > int(math.Floor(end/seg)); k-- {
		s.refill(cursor.Circular(k, s.divisions))
	}
}

func (s *Stream) refill(border int) {
	s.sector = s.target(border)
	s.ReplaceSegment(s.sector)
}

// target maps a crossed border to the segment to refill. Moving forward the
// segment before border i was just left; moving backward it is segment i.
func (s *Stream) target(border int) int {
	if s.cur.Step > 0 {
		return cursor.Circular(border-s.offset, s.divisions)
	}
	return cursor.Circular(border+s.offset-1, s.divisions)
}

func (s *Stream) read(idx int, frac float64) float64 {
	data := s.buf.Samples()
	n := len(data)
	x0 := data[idx]
	if frac == 0 {
		return x0
	}
	switch s.mode {
	case interp.Linear:
		return interp.Linear2(frac, x0, data[cursor.Circular(idx+1, n)])
	case interp.Hermite:
		return interp.Hermite4(frac,
			data[cursor.Circular(idx-1, n)], x0,
			data[cursor.Circular(idx+1, n)], data[cursor.Circular(idx+2, n)])
	}
	return x0
}

// Sector returns the segment refilled most recently, or NoEvent.
func (s *Stream) Sector() int { return s.sector }

// Divisions returns the number of segments.
func (s *Stream) Divisions() int { return s.divisions }

// Len returns the buffer length in samples.
func (s *Stream) Len() int { return s.buf.Len() }

// Buffer returns the playback buffer. It is overwritten by refills.
func (s *Stream) Buffer() []float64 { return s.buf.Samples() }

// Position returns the fractional read position.
func (s *Stream) Position() float64 { return s.cur.Pos }

// Speed returns the step per output sample.
func (s *Stream) Speed() float64 { return s.cur.Step }

// SetSpeed sets the step per output sample. Negative values play backward.
func (s *Stream) SetSpeed(speed float64) { s.cur.Step = speed }

// SetAmplitude sets the output gain.
func (s *Stream) SetAmplitude(a float64) { s.amplitude = a }

// Amplitude returns the output gain.
func (s *Stream) Amplitude() float64 { return s.amplitude }

// SetInterpolation selects how fractional positions are read.
func (s *Stream) SetInterpolation(m interp.Mode) { s.mode = m }

// Interpolation returns the interpolation mode.
func (s *Stream) Interpolation() interp.Mode { return s.mode }
