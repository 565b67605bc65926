package sampler

import "github.com/cwbudde/algo-sampler/dsp/sample"

// StartRecording starts appending recorded samples.
func (s *Sampler) StartRecording() { s.recording = true }

// ResumeRecording continues a paused recording.
func (s *Sampler) ResumeRecording() { s.recording = true }

// PauseRecording stops appending without discarding what was recorded.
func (s *Sampler) PauseRecording() { s.recording = false }

// IsRecording reports whether Record appends.
func (s *Sampler) IsRecording() bool { return s.recording }

// Record appends x while recording.
func (s *Sampler) Record(x float64) {
	if s.recording {
		s.scratch.Append(x)
	}
}

// RecordBlock appends buf while recording.
func (s *Sampler) RecordBlock(buf []float64) {
	if s.recording {
		s.scratch.Append(buf...)
	}
}

// DeleteRecording discards the recorded samples.
func (s *Sampler) DeleteRecording() { s.scratch.Truncate() }

// RecordingLength returns the number of recorded samples.
func (s *Sampler) RecordingLength() int { return s.scratch.Len() }

// EndRecording stops recording, copies the take into a new owned buffer and
// installs it for playback as SetBuffer would. It returns the length of the
// new buffer.
func (s *Sampler) EndRecording() int {
	s.recording = false
	take := s.scratch.Samples()
	owned := s.owner.Acquire(len(take))
	copy(owned.Samples(), take)
	s.scratch.Truncate()
	s.install(sample.Float64s(owned.Samples()), owned)
	return owned.Len()
}
