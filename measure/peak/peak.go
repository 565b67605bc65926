// Package peak estimates the dominant frequency of a rendered signal.
package peak

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sampler/dsp/core"
	"github.com/cwbudde/algo-sampler/dsp/window"
)

var (
	// ErrTooShort is returned for signals with fewer than four samples.
	ErrTooShort = errors.New("peak: signal too short")
	// ErrSilent is returned when the spectrum has no energy above DC.
	ErrSilent = errors.New("peak: no spectral peak")
)

// Frequency returns the frequency in Hz of the strongest spectral component
// of signal, refined by parabolic interpolation around the peak bin. The
// signal is Hann-windowed and zero-padded to a power of two.
func Frequency(signal []float64, sampleRate float64) (float64, error) {
	if !core.IsFinitePositive(sampleRate) {
		return 0, fmt.Errorf("peak sample rate must be > 0: %f", sampleRate)
	}
	if len(signal) < 4 {
		return 0, ErrTooShort
	}

	windowed := append([]float64(nil), signal...)
	window.Apply(window.TypeHann, windowed)

	size := nextPowerOf2(len(signal))
	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return 0, fmt.Errorf("peak: fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("peak: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range re {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	k := 1
	for i := 2; i < bins-1; i++ {
		if mag[i] > mag[k] {
			k = i
		}
	}
	if mag[k] == 0 {
		return 0, ErrSilent
	}

	a, b, c := mag[k-1], mag[k], mag[k+1]
	delta := 0.0
	if den := a - 2*b + c; den != 0 {
		delta = core.Clamp(0.5*(a-c)/den, -0.5, 0.5)
	}
	return (float64(k) + delta) * sampleRate / float64(size), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
