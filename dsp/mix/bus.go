// Package mix sums block sources into one output with per-channel gain and
// insert processors.
package mix

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sampler/dsp/core"
)

// Source produces consecutive output blocks. Sampler and Stream satisfy it.
type Source interface {
	ProcessBlock(dst []float64)
}

// Insert transforms a channel block in place. delay.Line satisfies it.
type Insert interface {
	ProcessInPlace(buf []float64)
}

type channel struct {
	src     Source
	gain    float64
	inserts []Insert
}

// Bus mixes channels in chunks of the configured block size.
type Bus struct {
	cfg      core.ProcessorConfig
	channels []channel
	master   float64
	scratch  []float64
}

// New returns an empty Bus.
func New(opts ...core.ProcessorOption) (*Bus, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mix: %w", err)
	}
	return &Bus{
		cfg:     cfg,
		master:  1,
		scratch: make([]float64, cfg.BlockSize),
	}, nil
}

// Config returns the processor configuration.
func (b *Bus) Config() core.ProcessorConfig { return b.cfg }

// Add appends a channel and returns its index. Inserts run in order on the
// channel signal before the gain is applied.
func (b *Bus) Add(src Source, gain float64, inserts ...Insert) int {
	b.channels = append(b.channels, channel{src: src, gain: gain, inserts: inserts})
	return len(b.channels) - 1
}

// Channels returns the number of channels.
func (b *Bus) Channels() int { return len(b.channels) }

// SetGain changes the gain of channel i.
func (b *Bus) SetGain(i int, gain float64) error {
	if i < 0 || i >= len(b.channels) {
		return fmt.Errorf("mix: channel %d out of range [0, %d)", i, len(b.channels))
	}
	b.channels[i].gain = gain
	return nil
}

// Gain returns the gain of channel i, or 0 for an unknown channel.
func (b *Bus) Gain(i int) float64 {
	if i < 0 || i >= len(b.channels) {
		return 0
	}
	return b.channels[i].gain
}

// SetMaster sets the gain applied to the sum.
func (b *Bus) SetMaster(gain float64) { b.master = gain }

// Master returns the gain applied to the sum.
func (b *Bus) Master() float64 { return b.master }

// ProcessBlock overwrites dst with the mix of all channels.
func (b *Bus) ProcessBlock(dst []float64) {
	for start := 0; start < len(dst); start += b.cfg.BlockSize {
		end := min(start+b.cfg.BlockSize, len(dst))
		b.processChunk(dst[start:end])
	}
}

func (b *Bus) processChunk(out []float64) {
	clear(out)
	tmp := b.scratch[:len(out)]
	for _, ch := range b.channels {
		ch.src.ProcessBlock(tmp)
		for _, ins := range ch.inserts {
			ins.ProcessInPlace(tmp)
		}
		vecmath.ScaleBlockInPlace(tmp, ch.gain)
		vecmath.AddBlockInPlace(out, tmp)
	}
	if b.master != 1 {
		vecmath.ScaleBlockInPlace(out, b.master)
	}
}

// Render returns the next n mixed samples.
func (b *Bus) Render(n int) []float64 {
	out := make([]float64, max(n, 0))
	b.ProcessBlock(out)
	return out
}
