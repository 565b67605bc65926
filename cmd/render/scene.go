package main

import (
	"fmt"
	"io"
	"log"

	"github.com/cwbudde/algo-sampler/dsp/core"
	"github.com/cwbudde/algo-sampler/dsp/delay"
	"github.com/cwbudde/algo-sampler/dsp/interp"
	"github.com/cwbudde/algo-sampler/dsp/mix"
	"github.com/cwbudde/algo-sampler/dsp/sampler"
	"github.com/cwbudde/algo-sampler/dsp/signal"
	"github.com/cwbudde/algo-sampler/dsp/stream"
)

// The sampler plays a one second take of a sine at takeHz. A whole second
// holds a whole number of periods, so looping the take is seamless.
const (
	takeHz      = 220
	takeSeconds = 1
	streamLen   = 4096
)

type sceneConfig struct {
	sampleRate int
	blockSize  int
	seconds    float64

	note     int
	velocity int
	release  float64
	mode     interp.Mode

	streamFreq float64
	streamGain float64

	echo  float64
	decay float64
	wet   float64

	logger *log.Logger
}

func defaultScene() sceneConfig {
	return sceneConfig{
		sampleRate: 48000,
		blockSize:  256,
		seconds:    2,
		note:       69,
		velocity:   100,
		release:    0.5,
		mode:       interp.Linear,
		streamFreq: 110,
		streamGain: 0.3,
		echo:       0.3,
		decay:      0.5,
		wet:        0.4,
	}
}

type doneLogger struct {
	logger *log.Logger
	name   string
}

func (d doneLogger) Done() { d.logger.Printf("%s finished", d.name) }

// renderScene plays a looped recorded note that is released part way
// through, with an echo on the note and a streamed oscillator underneath.
func renderScene(cfg sceneConfig) ([]float64, error) {
	logger := cfg.logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sr := float64(cfg.sampleRate)
	coreOpts := []core.ProcessorOption{core.WithSampleRate(sr), core.WithBlockSize(cfg.blockSize)}
	if err := core.ApplyProcessorOptions(coreOpts...).Validate(); err != nil {
		return nil, err
	}
	if cfg.seconds <= 0 {
		return nil, fmt.Errorf("scene length must be > 0: %f", cfg.seconds)
	}

	gen := signal.NewGenerator(coreOpts)
	take, err := gen.Sine(takeHz, 1, core.SecondsToSamples(takeSeconds, sr))
	if err != nil {
		return nil, err
	}

	smp, err := sampler.New(sr,
		sampler.WithInterpolation(cfg.mode),
		sampler.WithRecordingCapacity(len(take)))
	if err != nil {
		return nil, err
	}
	smp.StartRecording()
	smp.RecordBlock(take)
	smp.EndRecording()
	smp.TuneFrequencyTo(takeHz)
	smp.SetLooping()
	smp.AddListener(doneLogger{logger: logger, name: "sampler"})

	osc, err := signal.NewOscillator(sr, cfg.streamFreq, 1)
	if err != nil {
		return nil, err
	}
	st, err := stream.New(stream.Scaled(osc, cfg.streamGain), streamLen, stream.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	echo, err := delay.New(sr,
		delay.WithEchoLength(cfg.echo),
		delay.WithDecayRate(cfg.decay),
		delay.WithWet(cfg.wet))
	if err != nil {
		return nil, err
	}

	bus, err := mix.New(coreOpts...)
	if err != nil {
		return nil, err
	}
	bus.Add(smp, 1, echo)
	bus.Add(st, 1)

	total := core.SecondsToSamples(cfg.seconds, sr)
	releaseAt := int(core.Clamp(cfg.release, 0, 1) * float64(total))
	out := make([]float64, total)

	smp.NoteOn(cfg.note, cfg.velocity)
	bus.ProcessBlock(out[:releaseAt])
	smp.NoteOff()
	bus.ProcessBlock(out[releaseAt:])
	return out, nil
}
