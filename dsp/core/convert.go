package core

import "math"

// SecondsToSamples converts a duration to a whole number of samples,
// rounding to nearest. Negative or NaN durations give 0.
func SecondsToSamples(seconds, sampleRate float64) int {
	n := math.Round(seconds * sampleRate)
	if !(n > 0) {
		return 0
	}
	return int(n)
}

// MIDINoteToFrequency maps a MIDI note number to Hz in twelve-tone equal
// temperament with note 69 = 440 Hz.
func MIDINoteToFrequency(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// VelocityToAmplitude maps a MIDI velocity to [0, 1], clamping to 0..127.
func VelocityToAmplitude(velocity int) float64 {
	return float64(ClampInt(velocity, 0, 127)) / 127
}
