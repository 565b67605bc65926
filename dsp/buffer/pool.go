package buffer

import "sync"

// Pool recycles Buffers between engine resizes so that repeated length
// changes settle into reusing a few backing arrays.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

var defaultPool = NewPool()

// DefaultPool returns the package-wide pool used when an engine is not given
// its own.
func DefaultPool() *Pool {
	return defaultPool
}

// Get returns a zeroed Buffer of the requested length.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Put hands b back to the pool. b must not be used afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	b.Truncate()
	p.pool.Put(b)
}
