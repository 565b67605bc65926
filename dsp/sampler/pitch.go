package sampler

import (
	"math"

	"github.com/cwbudde/algo-sampler/dsp/core"
)

// SetSpeed sets playback speed relative to the natural rate of the buffer.
// The sign selects the direction; zero stops the cursor and keeps the
// direction.
func (s *Sampler) SetSpeed(speed float64) {
	s.speed = speed
	if speed > 0 {
		s.forward = true
	} else if speed < 0 {
		s.forward = false
	}
	s.step = math.Abs(speed)
	if n := s.data.Len(); n > 0 {
		s.frequency = s.step * s.tuned * s.sampleRate / float64(n)
	} else {
		s.frequency = 0
	}
	s.syncStep()
}

// Speed returns the signed playback speed.
func (s *Sampler) Speed() float64 { return s.speed }

// SetFrequency plays the buffer as if it held one period of a waveform at
// the tuned frequency (see TuneFrequencyTo), transposed to f Hz. The sign
// of f is ignored; direction is unchanged.
func (s *Sampler) SetFrequency(f float64) {
	s.frequency = math.Abs(f)
	s.step = s.frequency / s.tuned * float64(s.data.Len()) / s.sampleRate
	if s.forward {
		s.speed = s.step
	} else {
		s.speed = -s.step
	}
	s.syncStep()
}

// Frequency returns the playback frequency in Hz.
func (s *Sampler) Frequency() float64 { return s.frequency }

// TuneFrequencyTo declares the fundamental the buffer is assumed to contain.
// It takes effect at the next SetFrequency or NoteOn. Non-positive values
// are ignored.
func (s *Sampler) TuneFrequencyTo(f float64) {
	if f > 0 {
		s.tuned = f
	}
}

// TunedFrequency returns the assumed fundamental of the buffer.
func (s *Sampler) TunedFrequency() float64 { return s.tuned }

// SetDuration sets a forward speed so that the whole buffer plays in the
// given number of seconds. It does nothing for an empty buffer or zero
// seconds.
func (s *Sampler) SetDuration(seconds float64) {
	n := s.data.Len()
	if n == 0 || seconds == 0 {
		return
	}
	s.SetSpeed(float64(n) / s.sampleRate / seconds)
}

// Duration returns the time one pass over the whole buffer takes at the
// current speed, or 0 when the buffer is empty or the speed is zero.
func (s *Sampler) Duration() float64 {
	n := s.data.Len()
	if n == 0 || s.speed == 0 {
		return 0
	}
	return float64(n) / s.sampleRate / math.Abs(s.speed)
}

// NoteOn sets frequency from a MIDI note (A4 = 69 = 440 Hz) and amplitude
// from velocity/127, then triggers looped playback from the start.
func (s *Sampler) NoteOn(note, velocity int) {
	s.SetFrequency(core.MIDINoteToFrequency(note))
	s.SetAmplitude(core.VelocityToAmplitude(velocity))
	s.Trigger()
}

// Trigger rewinds, starts playback and enables looping.
func (s *Sampler) Trigger() {
	s.Rewind()
	s.Play()
	s.EnableLoop(true)
}

// NoteOff disables looping. Playback continues to the out point so the
// release part of the buffer is heard.
func (s *Sampler) NoteOff() {
	s.EnableLoop(false)
}

func (s *Sampler) syncStep() {
	if s.forward {
		s.cur.Step = s.step
	} else {
		s.cur.Step = -s.step
	}
}
