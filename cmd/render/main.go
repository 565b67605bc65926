// Command render plays a short scene through the sampler, stream and delay
// engines, mixes it and writes the result as a mono audio file.
//
// Usage:
//
//	render [flags]
//
// Examples:
//
//	render -out scene.wav
//	render -note 57 -seconds 4 -echo 0.25 -wet 0.5
//	render -format aiff -out scene.aiff -interp hermite
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cwbudde/algo-sampler/dsp/core"
	"github.com/cwbudde/algo-sampler/dsp/interp"
	"github.com/cwbudde/algo-sampler/dsp/signal"
	"github.com/cwbudde/algo-sampler/measure/peak"
)

func main() {
	cfg := defaultScene()
	out := flag.String("out", "render.wav", "output file")
	format := flag.String("format", "wav", "output format: wav or aiff")
	bits := flag.Int("bits", 16, "output bit depth (8 or 16; aiff supports 16)")
	mode := flag.String("interp", cfg.mode.String(), "sampler interpolation: none, linear or hermite")
	quiet := flag.Bool("q", false, "suppress engine diagnostics")
	flag.IntVar(&cfg.sampleRate, "rate", cfg.sampleRate, "sample rate in Hz")
	flag.IntVar(&cfg.blockSize, "block", cfg.blockSize, "mixing block size in samples")
	flag.Float64Var(&cfg.seconds, "seconds", cfg.seconds, "scene length in seconds")
	flag.IntVar(&cfg.note, "note", cfg.note, "MIDI note played by the sampler")
	flag.IntVar(&cfg.velocity, "velocity", cfg.velocity, "MIDI velocity (0-127)")
	flag.Float64Var(&cfg.release, "release", cfg.release, "note-off time as a fraction of the scene")
	flag.Float64Var(&cfg.streamFreq, "stream-freq", cfg.streamFreq, "stream oscillator frequency in Hz")
	streamDB := flag.Float64("stream-db", -10, "stream level in dB")
	flag.Float64Var(&cfg.echo, "echo", cfg.echo, "sampler echo length in seconds")
	flag.Float64Var(&cfg.decay, "decay", cfg.decay, "sampler echo decay rate")
	flag.Float64Var(&cfg.wet, "wet", cfg.wet, "sampler echo wet share (0-1)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: render [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a sampler note, a streamed oscillator and an echo into one file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	m, err := interp.ParseMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	cfg.mode = m
	cfg.streamGain = core.DBToLinear(*streamDB)
	cfg.logger = log.New(os.Stderr, "render: ", 0)
	if *quiet {
		cfg.logger = nil
	}

	samples, err := renderScene(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := signal.Normalize(samples, 0.9); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := writeFile(*out, strings.ToLower(*format), samples, cfg.sampleRate, *bits); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s: %d samples at %d Hz\n", *out, len(samples), cfg.sampleRate)
	if f, err := peak.Frequency(samples[:min(len(samples), 1<<15)], float64(cfg.sampleRate)); err == nil {
		fmt.Printf("dominant frequency: %.1f Hz\n", f)
	}
}
