package buffer

// Owner holds at most one Buffer on behalf of an engine. The held Buffer is
// exclusively owned: Replace and Release return it to the pool immediately.
type Owner struct {
	pool *Pool
	buf  *Buffer
}

// NewOwner returns an empty Owner drawing from pool. A nil pool selects
// DefaultPool.
func NewOwner(pool *Pool) *Owner {
	if pool == nil {
		pool = defaultPool
	}
	return &Owner{pool: pool}
}

// Acquire returns a zeroed Buffer of length n from the pool. It is not held
// until passed to Replace.
func (o *Owner) Acquire(n int) *Buffer {
	return o.pool.Get(n)
}

// Replace installs b and returns the previously held Buffer to the pool.
// Replacing with the held Buffer is a no-op.
func (o *Owner) Replace(b *Buffer) {
	if b == o.buf {
		return
	}
	old := o.buf
	o.buf = b
	o.pool.Put(old)
}

// Release returns the held Buffer to the pool and leaves the Owner empty.
func (o *Owner) Release() {
	o.Replace(nil)
}

// Buffer returns the held Buffer, or nil.
func (o *Owner) Buffer() *Buffer {
	return o.buf
}

// Samples returns the held samples, or nil when nothing is held.
func (o *Owner) Samples() []float64 {
	if o.buf == nil {
		return nil
	}
	return o.buf.samples
}

// Len returns the number of held samples.
func (o *Owner) Len() int {
	if o.buf == nil {
		return 0
	}
	return len(o.buf.samples)
}
