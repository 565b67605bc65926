package stream

import (
	"log"

	"github.com/cwbudde/algo-sampler/dsp/interp"
)

const (
	defaultDivisions    = 4
	defaultUpdateOffset = 1
)

type config struct {
	divisions int
	offset    int
	speed     float64
	mode      interp.Mode
	amplitude float64
	logger    *log.Logger
}

func defaultConfig() config {
	return config{
		divisions: defaultDivisions,
		offset:    defaultUpdateOffset,
		speed:     1,
		mode:      interp.Linear,
		amplitude: 1,
		logger:    log.Default(),
	}
}

// Option configures a Stream at construction.
type Option func(*config)

// WithDivisions sets the number of equal segments. It must be at least 1
// and divide the buffer length.
func WithDivisions(n int) Option {
	return func(c *config) { c.divisions = n }
}

// WithUpdateOffset selects which segment is refilled relative to the border
// just crossed. The default of 1 refills the segment the cursor just left.
// The value is taken modulo the number of divisions.
func WithUpdateOffset(k int) Option {
	return func(c *config) { c.offset = k }
}

// WithSpeed sets the initial step per output sample.
func WithSpeed(speed float64) Option {
	return func(c *config) { c.speed = speed }
}

// WithInterpolation selects how fractional positions are read.
func WithInterpolation(m interp.Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithAmplitude sets the output gain.
func WithAmplitude(a float64) Option {
	return func(c *config) { c.amplitude = a }
}

// WithLogger sets where rejected calls are reported. nil discards them.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}
