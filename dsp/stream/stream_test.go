package stream

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sampler/dsp/interp"
	"github.com/cwbudde/algo-sampler/dsp/sample"
	"github.com/cwbudde/algo-sampler/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, -1); err == nil {
		t.Fatal("expected error for negative length")
	}
	for _, n := range []int{0, -2, 3} {
		_, err := New(nil, 16, WithDivisions(n))
		if !errors.Is(err, ErrDivisions) {
			t.Fatalf("divisions %d: got %v, want ErrDivisions", n, err)
		}
	}
	s, err := New(nil, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Divisions() != 4 || s.Len() != 16 || s.Speed() != 1 || s.Sector() != NoEvent {
		t.Fatalf("defaults: divisions=%d len=%d speed=%v sector=%d", s.Divisions(), s.Len(), s.Speed(), s.Sector())
	}
	if s.Interpolation() != interp.Linear || s.Amplitude() != 1 {
		t.Fatalf("defaults: mode=%v amp=%v", s.Interpolation(), s.Amplitude())
	}
}

func TestConstructorFillsWholeBuffer(t *testing.T) {
	p := &testutil.RecordingProvider{}
	s, err := New(p, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(p.Calls) != 1 || p.Calls[0].Len != 16 {
		t.Fatalf("calls = %+v, want one fill of 16", p.Calls)
	}
	for i, v := range s.Buffer() {
		if v != 1 {
			t.Fatalf("sample %d = %v, want 1", i, v)
		}
	}
}

func TestZeroLengthIsSilent(t *testing.T) {
	s, err := New(ProviderFunc(func(dst []float64) {
		for i := range dst {
			dst[i] = 1
		}
	}), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 4; i++ {
		if got := s.Process(); got != 0 {
			t.Fatalf("got %v, want 0", got)
		}
	}
}

func TestOneRefillPerCrossingForward(t *testing.T) {
	p := &testutil.RecordingProvider{}
	s, err := New(p, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	events := map[int]int{}
	for call := 1; call <= 16; call++ {
		before := len(p.Calls)
		s.Process()
		switch len(p.Calls) - before {
		case 0:
		case 1:
			events[call] = s.Sector()
			if p.Calls[len(p.Calls)-1].Len != 4 {
				t.Fatalf("call %d refilled %d samples, want 4", call, p.Calls[len(p.Calls)-1].Len)
			}
		default:
			t.Fatalf("call %d triggered %d refills", call, len(p.Calls)-before)
		}
	}

	// Border i is crossed at position 4i; with offset 1 the segment just
	// left is refilled.
	want := map[int]int{4: 0, 8: 1, 12: 2, 16: 3}
	if len(events) != len(want) {
		t.Fatalf("refill events = %v, want %v", events, want)
	}
	for call, seg := range want {
		if events[call] != seg {
			t.Fatalf("call %d refilled segment %d, want %d", call, events[call], seg)
		}
	}
}

func TestStreamContinuity(t *testing.T) {
	p := &testutil.RecordingProvider{}
	s, err := New(p, 16, WithInterpolation(interp.None))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	collectN := func(n int) []float64 {
		out := make([]float64, n)
		s.ProcessBlock(out)
		return out
	}

	first := collectN(16)
	for i, v := range first[:15] {
		if v != 1 {
			t.Fatalf("first pass sample %d = %v, want 1", i, v)
		}
	}
	if first[15] != 2 {
		t.Fatalf("wrapped sample = %v, want refilled value 2", first[15])
	}

	want := []float64{2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5}
	testutil.RequireSliceNearlyEqual(t, collectN(15), want, 0)
}

func TestNoDoubleRefillAtFractionalSpeed(t *testing.T) {
	p := &testutil.RecordingProvider{}
	s, err := New(p, 16, WithSpeed(0.75))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var targets []int
	for i := 0; i < 64; i++ {
		before := len(p.Calls)
		s.Process()
		if len(p.Calls) > before {
			targets = append(targets, s.Sector())
		}
	}

	if len(targets) != 12 {
		t.Fatalf("got %d refills over three passes, want 12: %v", len(targets), targets)
	}
	for i, seg := range targets {
		if seg != i%4 {
			t.Fatalf("refill %d targeted segment %d, want %d (%v)", i, seg, i%4, targets)
		}
	}
}

func TestStepLongerThanSegmentRefillsEveryCrossing(t *testing.T) {
	tests := []struct {
		speed float64
		want  []int
	}{
		{speed: 6, want: []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3}},
		{speed: -6, want: []int{0, 3, 2, 1, 0, 3, 2, 1, 0, 3, 2, 1}},
	}
	for _, tt := range tests {
		p := &testutil.RecordingProvider{}
		s, err := New(p, 16, WithSpeed(tt.speed))
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		// Each refill writes the next constant, so the segments written
		// during one call, ordered by value, give the refill order.
		var targets []int
		for i := 0; i < 8; i++ {
			before := float64(len(p.Calls))
			s.Process()
			fresh := map[float64]int{}
			for seg := 0; seg < 4; seg++ {
				if v := s.Buffer()[seg*4]; v > before {
					fresh[v] = seg
				}
			}
			for v := before + 1; v <= float64(len(p.Calls)); v++ {
				seg, ok := fresh[v]
				if !ok {
					t.Fatalf("speed %v call %d: refill %v overwritten in the same call", tt.speed, i, v)
				}
				targets = append(targets, seg)
			}
		}

		// 8 steps of 6 samples pass 12 borders of 4-sample segments.
		if len(targets) != len(tt.want) {
			t.Fatalf("speed %v: refills %v, want %v", tt.speed, targets, tt.want)
		}
		for i := range targets {
			if targets[i] != tt.want[i] {
				t.Fatalf("speed %v: refills %v, want %v", tt.speed, targets, tt.want)
			}
		}
		if last := tt.want[len(tt.want)-1]; s.Sector() != last {
			t.Fatalf("speed %v: sector = %d, want %d", tt.speed, s.Sector(), last)
		}
	}
}

func TestUpdateOffset(t *testing.T) {
	tests := []struct {
		offset int
		want   int
	}{
		{offset: 0, want: 1},
		{offset: 1, want: 0},
		{offset: 2, want: 3},
		{offset: 5, want: 0},
		{offset: -1, want: 2},
	}
	for _, tt := range tests {
		s, err := New(nil, 16, WithUpdateOffset(tt.offset))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		for i := 0; i < 4; i++ {
			s.Process()
		}
		if s.Sector() != tt.want {
			t.Fatalf("offset %d: crossing border 1 refilled %d, want %d", tt.offset, s.Sector(), tt.want)
		}
	}
}

func TestBackwardRefillsEachSegmentOnce(t *testing.T) {
	p := &testutil.RecordingProvider{}
	s, err := New(p, 16, WithSpeed(-1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	events := map[int]int{}
	for call := 1; call <= 16; call++ {
		before := len(p.Calls)
		s.Process()
		if n := len(p.Calls) - before; n > 1 {
			t.Fatalf("call %d triggered %d refills", call, n)
		} else if n == 1 {
			events[call] = s.Sector()
		}
	}

	want := map[int]int{1: 0, 5: 3, 9: 2, 13: 1}
	if len(events) != len(want) {
		t.Fatalf("refill events = %v, want %v", events, want)
	}
	for call, seg := range want {
		if events[call] != seg {
			t.Fatalf("call %d refilled segment %d, want %d", call, events[call], seg)
		}
	}
}

func TestReplaceSegmentOutOfRange(t *testing.T) {
	var logs bytes.Buffer
	p := &testutil.RecordingProvider{}
	s, err := New(p, 8, WithDivisions(2), WithLogger(log.New(&logs, "", 0)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.ReplaceSegment(2)
	s.ReplaceSegment(-1)
	if len(p.Calls) != 1 {
		t.Fatalf("out-of-range refill reached the provider: %+v", p.Calls)
	}
	if !strings.Contains(logs.String(), "out of range") {
		t.Fatalf("log = %q, want an out of range report", logs.String())
	}

	s.ReplaceSegment(1)
	buf := s.Buffer()
	if buf[3] != 1 || buf[4] != 2 || buf[7] != 2 {
		t.Fatalf("buffer after ReplaceSegment(1) = %v", buf)
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	s, err := New(nil, 4, WithLogger(nil))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.ReplaceSegment(9)
}

func TestLinearInterpolationWraps(t *testing.T) {
	s, err := New(Looping(sample.Float64s{0, 1, 2, 3}), 4, WithDivisions(1), WithSpeed(0.5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []float64{0.5, 1, 1.5, 2, 2.5, 3, 1.5, 0}
	got := make([]float64, len(want))
	s.ProcessBlock(got)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestAmplitude(t *testing.T) {
	s, err := New(Looping(sample.Float64s{1}), 4, WithAmplitude(0.25))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.Process(); got != 0.25 {
		t.Fatalf("got %v, want 0.25", got)
	}
	s.SetAmplitude(2)
	if got := s.Process(); got != 2 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestProcessBlockMatchesProcess(t *testing.T) {
	mk := func() *Stream {
		s, err := New(Looping(sample.Float64s(testutil.DeterministicSine(5, 64, 1, 64))), 32,
			WithSpeed(1.3), WithInterpolation(interp.Hermite))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return s
	}
	a, b := mk(), mk()
	block := make([]float64, 200)
	a.ProcessBlock(block)
	for i, v := range block {
		if got := b.Process(); got != v {
			t.Fatalf("sample %d: block %v, single %v", i, v, got)
		}
	}
}
