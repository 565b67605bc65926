package sampler

import (
	"github.com/cwbudde/algo-sampler/dsp/buffer"
	"github.com/cwbudde/algo-sampler/dsp/interp"
	"github.com/cwbudde/algo-sampler/dsp/sample"
)

type config struct {
	buf          sample.Buffer
	length       int
	pool         *buffer.Pool
	mode         interp.Mode
	edgeFade     int
	recordingCap int
}

// Option configures a Sampler at construction.
type Option func(*config)

// WithBuffer plays buf. The Sampler borrows it and never releases it.
func WithBuffer(buf sample.Buffer) Option {
	return func(c *config) { c.buf = buf }
}

// WithLength allocates an owned, silent float64 buffer of n samples.
func WithLength(n int) Option {
	return func(c *config) { c.length = n }
}

// WithPool sets the pool owned buffers are drawn from and returned to.
func WithPool(p *buffer.Pool) Option {
	return func(c *config) { c.pool = p }
}

// WithInterpolation selects how fractional positions are read.
func WithInterpolation(m interp.Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithEdgeFade fades the output linearly within n samples of the in and
// out points.
func WithEdgeFade(n int) Option {
	return func(c *config) { c.edgeFade = n }
}

// WithRecordingCapacity reserves room for n recorded samples so that
// recording up to that length does not allocate.
func WithRecordingCapacity(n int) Option {
	return func(c *config) { c.recordingCap = n }
}
