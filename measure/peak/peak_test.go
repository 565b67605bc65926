package peak

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sampler/internal/testutil"
)

func TestFrequencyOfSine(t *testing.T) {
	tests := []struct {
		freq, rate float64
		n          int
	}{
		{freq: 440, rate: 48000, n: 8192},
		{freq: 1000, rate: 44100, n: 6000},
		{freq: 123.4, rate: 8000, n: 4096},
	}
	for _, tt := range tests {
		sig := testutil.DeterministicSine(tt.freq, tt.rate, 0.7, tt.n)
		got, err := Frequency(sig, tt.rate)
		if err != nil {
			t.Fatalf("Frequency(%v Hz): %v", tt.freq, err)
		}
		if math.Abs(got-tt.freq) > 3 {
			t.Fatalf("Frequency(%v Hz) = %v", tt.freq, got)
		}
	}
}

func TestFrequencyErrors(t *testing.T) {
	if _, err := Frequency([]float64{1, 2, 3}, 48000); !errors.Is(err, ErrTooShort) {
		t.Fatalf("short signal: got %v", err)
	}
	if _, err := Frequency(make([]float64, 64), 48000); !errors.Is(err, ErrSilent) {
		t.Fatalf("silence: got %v", err)
	}
	if _, err := Frequency(make([]float64, 64), 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestNextPowerOf2(t *testing.T) {
	for n, want := range map[int]int{1: 1, 2: 2, 3: 4, 1000: 1024, 4096: 4096} {
		if got := nextPowerOf2(n); got != want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", n, got, want)
		}
	}
}
