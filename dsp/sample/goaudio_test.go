package sample

import (
	"errors"
	"testing"

	"github.com/go-audio/audio"
)

func TestFromIntBuffer16(t *testing.T) {
	in := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:           []int{-32768, 0, 32767, 40000},
		SourceBitDepth: 16,
	}
	b, err := FromIntBuffer(in)
	if err != nil {
		t.Fatalf("FromIntBuffer: %v", err)
	}
	if b.Format() != Int16 || b.Len() != 4 {
		t.Fatalf("got %v with %d samples", b.Format(), b.Len())
	}
	if b.At(0) != -1 || b.At(3) != 1 {
		t.Fatalf("At(0)=%v At(3)=%v, want -1 and 1 (clamped)", b.At(0), b.At(3))
	}
}

func TestFromIntBuffer8IsUnsigned(t *testing.T) {
	b, err := FromIntBuffer(&audio.IntBuffer{Data: []int{0, 255}, SourceBitDepth: 8})
	if err != nil {
		t.Fatalf("FromIntBuffer: %v", err)
	}
	if b.Format() != Uint8 || b.At(0) != -1 || b.At(1) != 1 {
		t.Fatalf("unexpected 8-bit conversion: %v %v %v", b.Format(), b.At(0), b.At(1))
	}
}

func TestFromIntBufferRejects(t *testing.T) {
	if _, err := FromIntBuffer(nil); !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("nil: err = %v", err)
	}
	_, err := FromIntBuffer(&audio.IntBuffer{Data: []int{0}, SourceBitDepth: 24})
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("24-bit: err = %v", err)
	}
	_, err = FromIntBuffer(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2},
		Data:           []int{0, 0},
		SourceBitDepth: 16,
	})
	if !errors.Is(err, ErrNotMono) {
		t.Fatalf("stereo: err = %v", err)
	}
}

func TestFromFloatBufferSharesData(t *testing.T) {
	data := []float64{0.25, -0.5}
	b, err := FromFloatBuffer(&audio.FloatBuffer{Data: data})
	if err != nil {
		t.Fatalf("FromFloatBuffer: %v", err)
	}
	data[0] = 0.75
	if b.At(0) != 0.75 {
		t.Fatal("FromFloatBuffer should not copy")
	}
}

func TestIntBufferRoundTrip(t *testing.T) {
	in := []float64{-1, -0.5, 0, 0.5, 1}
	ib, err := IntBuffer(in, 48000, 16)
	if err != nil {
		t.Fatalf("IntBuffer: %v", err)
	}
	if ib.Format.SampleRate != 48000 || ib.Format.NumChannels != 1 || ib.SourceBitDepth != 16 {
		t.Fatalf("unexpected format: %+v depth=%d", ib.Format, ib.SourceBitDepth)
	}
	b, err := FromIntBuffer(ib)
	if err != nil {
		t.Fatalf("FromIntBuffer: %v", err)
	}
	for i, want := range in {
		if got := b.At(i); got-want > 2.0/65535 || want-got > 2.0/65535 {
			t.Fatalf("index %d: got %v, want %v", i, got, want)
		}
	}
	if _, err := IntBuffer(in, 48000, 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("12-bit: err = %v", err)
	}
}
