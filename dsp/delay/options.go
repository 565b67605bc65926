package delay

import "github.com/cwbudde/algo-sampler/dsp/buffer"

const (
	defaultEchoLength = 0.5
	defaultDecayRate  = 0.75
	defaultWet        = 0.8
)

type config struct {
	echoLength float64
	decayRate  float64
	wet        float64
	pool       *buffer.Pool
}

// Option configures a Line at construction.
type Option func(*config)

// WithEchoLength sets the echo length in seconds.
func WithEchoLength(seconds float64) Option {
	return func(c *config) { c.echoLength = seconds }
}

// WithDecayRate sets the feedback gain applied to each echo.
func WithDecayRate(r float64) Option {
	return func(c *config) { c.decayRate = r }
}

// WithWet sets the wet share of the output, clamped to [0, 1].
func WithWet(w float64) Option {
	return func(c *config) { c.wet = w }
}

// WithPool sets the pool delay storage is drawn from and returned to.
func WithPool(p *buffer.Pool) Option {
	return func(c *config) { c.pool = p }
}
