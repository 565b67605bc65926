package sample

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-sampler/dsp/core"
)

// FromIntBuffer copies a mono go-audio integer buffer into the matching
// encoding: 8-bit data becomes Uint8s (the WAV convention), 16-bit data
// becomes Int16s. Out-of-range values are clamped.
func FromIntBuffer(b *audio.IntBuffer) (Buffer, error) {
	if b == nil {
		return nil, ErrNilBuffer
	}
	if err := checkMono(b.Format); err != nil {
		return nil, err
	}
	switch b.SourceBitDepth {
	case 8:
		out := make(Uint8s, len(b.Data))
		for i, v := range b.Data {
			out[i] = uint8(core.ClampInt(v, 0, 255))
		}
		return out, nil
	case 16:
		out := make(Int16s, len(b.Data))
		for i, v := range b.Data {
			out[i] = int16(core.ClampInt(v, -32768, 32767))
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, b.SourceBitDepth)
}

// FromFloatBuffer wraps the data of a mono go-audio float buffer without
// copying.
func FromFloatBuffer(b *audio.FloatBuffer) (Buffer, error) {
	if b == nil {
		return nil, ErrNilBuffer
	}
	if err := checkMono(b.Format); err != nil {
		return nil, err
	}
	return Float64s(b.Data), nil
}

// IntBuffer encodes normalized samples as a mono go-audio integer buffer at
// the given bit depth (8 or 16), using the same rounding as Denormalize.
func IntBuffer(samples []float64, sampleRate, bitDepth int) (*audio.IntBuffer, error) {
	data := make([]int, len(samples))
	switch bitDepth {
	case 8:
		for i, x := range samples {
			data[i] = int(DenormalizeUint8(x))
		}
	case 16:
		for i, x := range samples {
			data[i] = int(DenormalizeInt16(x))
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}

func checkMono(f *audio.Format) error {
	if f != nil && f.NumChannels > 1 {
		return fmt.Errorf("%w: got %d", ErrNotMono, f.NumChannels)
	}
	return nil
}
