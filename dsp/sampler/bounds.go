package sampler

import (
	"math"

	"github.com/cwbudde/algo-sampler/dsp/core"
	"github.com/cwbudde/algo-sampler/dsp/cursor"
)

// NoLoopPoint is the value of an unset loop point.
const NoLoopPoint = cursor.NoLoopPoint

func (s *Sampler) last() int { return s.data.Len() - 1 }

// SetIn sets the start of the playback range, clamped to the buffer and to
// the current out point.
func (s *Sampler) SetIn(p int) {
	p = core.ClampInt(p, 0, s.last())
	if p > s.region.Out {
		p = s.region.Out
	}
	s.region.In = p
}

// In returns the start of the playback range.
func (s *Sampler) In() int { return s.region.In }

// SetOut sets the end of the playback range, clamped to the buffer and to
// the current in point.
func (s *Sampler) SetOut(p int) {
	p = core.ClampInt(p, 0, s.last())
	if p < s.region.In {
		p = s.region.In
	}
	s.region.Out = p
}

// Out returns the end of the playback range.
func (s *Sampler) Out() int { return s.region.Out }

// EnableLoop turns evaluation of the loop range on or off. Loop points stay
// as they are.
func (s *Sampler) EnableLoop(on bool) { s.region.Looping = on }

// IsLooping reports whether the loop range is evaluated.
func (s *Sampler) IsLooping() bool { return s.region.Looping }

// SetLooping loops the whole buffer.
func (s *Sampler) SetLooping() {
	s.region.Looping = true
	s.region.LoopIn = 0
	s.region.LoopOut = max(s.last(), 0)
}

// SetLoopIn sets the loop start; NoLoopPoint unsets it.
func (s *Sampler) SetLoopIn(p int) {
	s.region.LoopIn = core.ClampInt(p, NoLoopPoint, s.last())
}

// LoopIn returns the loop start or NoLoopPoint.
func (s *Sampler) LoopIn() int { return s.region.LoopIn }

// SetLoopOut sets the loop end; NoLoopPoint unsets it.
func (s *Sampler) SetLoopOut(p int) {
	s.region.LoopOut = core.ClampInt(p, NoLoopPoint, s.last())
}

// LoopOut returns the loop end or NoLoopPoint.
func (s *Sampler) LoopOut() int { return s.region.LoopOut }

// SetLoopInNormalized sets the loop start as a fraction of the last index.
func (s *Sampler) SetLoopInNormalized(v float64) {
	s.SetLoopIn(s.denormalizeIndex(v))
}

// LoopInNormalized returns the loop start as a fraction of the last index,
// or 0 when unset or the buffer is shorter than two samples.
func (s *Sampler) LoopInNormalized() float64 {
	return s.normalizeIndex(s.region.LoopIn)
}

// SetLoopOutNormalized sets the loop end as a fraction of the last index.
func (s *Sampler) SetLoopOutNormalized(v float64) {
	s.SetLoopOut(s.denormalizeIndex(v))
}

// LoopOutNormalized returns the loop end as a fraction of the last index,
// or 0 when unset or the buffer is shorter than two samples.
func (s *Sampler) LoopOutNormalized() float64 {
	return s.normalizeIndex(s.region.LoopOut)
}

func (s *Sampler) normalizeIndex(p int) float64 {
	if s.data.Len() < 2 || p == NoLoopPoint {
		return 0
	}
	return float64(p) / float64(s.last())
}

func (s *Sampler) denormalizeIndex(v float64) int {
	if math.IsNaN(v) {
		return NoLoopPoint
	}
	return int(math.Round(core.Clamp(v, 0, 1) * float64(max(s.last(), 0))))
}
