package main

import (
	"fmt"
	"os"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-sampler/dsp/sample"
)

// writeFile encodes normalized mono samples to path.
func writeFile(path, format string, samples []float64, sampleRate, bits int) error {
	if format == "aiff" && bits != 16 {
		return fmt.Errorf("aiff output supports 16 bits, got %d", bits)
	}
	if format != "wav" && format != "aiff" {
		return fmt.Errorf("unknown output format %q", format)
	}
	buf, err := sample.IntBuffer(samples, sampleRate, bits)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, format, buf, sampleRate, bits); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(f *os.File, format string, buf *audio.IntBuffer, sampleRate, bits int) error {
	if format == "aiff" {
		enc := aiff.NewEncoder(f, sampleRate, bits, 1)
		if err := enc.Write(buf); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := wav.NewEncoder(f, sampleRate, bits, 1, 1)
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
