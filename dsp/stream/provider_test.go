package stream

import (
	"testing"

	"github.com/cwbudde/algo-sampler/dsp/sample"
	"github.com/cwbudde/algo-sampler/internal/testutil"
)

func TestSilence(t *testing.T) {
	dst := []float64{1, 2, 3}
	Silence.Fill(dst)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0, 0, 0}, 0)
}

func TestLoopingCyclesAcrossCalls(t *testing.T) {
	p := Looping(sample.Int8s{-128, 127, -128})
	a := make([]float64, 4)
	b := make([]float64, 3)
	p.Fill(a)
	p.Fill(b)
	testutil.RequireSliceNearlyEqual(t, a, []float64{-1, 1, -1, -1}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, b, []float64{1, -1, -1}, 1e-12)
}

func TestLoopingEmptyIsSilent(t *testing.T) {
	dst := []float64{4, 4}
	Looping(sample.Float64s{}).Fill(dst)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0, 0}, 0)
}

func TestScaled(t *testing.T) {
	p := Scaled(Looping(sample.Float64s{1, -2}), 0.5)
	dst := make([]float64, 4)
	p.Fill(dst)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0.5, -1, 0.5, -1}, 0)

	Scaled(nil, 3).Fill(dst)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0, 0, 0, 0}, 0)
}
