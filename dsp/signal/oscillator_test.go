package signal

import (
	"testing"

	"github.com/cwbudde/algo-sampler/dsp/core"
	"github.com/cwbudde/algo-sampler/internal/testutil"
)

func TestOscillatorPhaseContinuity(t *testing.T) {
	whole, err := NewOscillator(48000, 440, 0.8)
	if err != nil {
		t.Fatalf("NewOscillator: %v", err)
	}
	parts, err := NewOscillator(48000, 440, 0.8)
	if err != nil {
		t.Fatalf("NewOscillator: %v", err)
	}

	want := make([]float64, 300)
	whole.Fill(want)

	got := make([]float64, 300)
	for _, r := range [][2]int{{0, 7}, {7, 128}, {128, 129}, {129, 300}} {
		parts.Fill(got[r[0]:r[1]])
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestOscillatorMatchesGenerator(t *testing.T) {
	osc, err := NewOscillator(48000, 1000, 1)
	if err != nil {
		t.Fatalf("NewOscillator: %v", err)
	}
	got := make([]float64, 96)
	osc.Fill(got)

	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(48000)})
	want, err := g.Sine(1000, 1, 96)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestOscillatorReset(t *testing.T) {
	osc, err := NewOscillator(8, 1, 1)
	if err != nil {
		t.Fatalf("NewOscillator: %v", err)
	}
	osc.SetFrequency(2)
	if osc.Frequency() != 2 {
		t.Fatalf("Frequency() = %v", osc.Frequency())
	}
	buf := make([]float64, 3)
	osc.Fill(buf)
	osc.Reset()
	osc.Fill(buf[:1])
	if buf[0] != 0 {
		t.Fatalf("first sample after Reset = %v, want 0", buf[0])
	}
	if _, err := NewOscillator(0, 1, 1); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
