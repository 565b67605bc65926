package cursor

// NoLoopPoint marks an unset loop point.
const NoLoopPoint = -1

// Region is a hard playback range [In, Out] with an optional loop
// sub-range [LoopIn, LoopOut] that is honored while Looping is set.
type Region struct {
	In, Out         int
	LoopIn, LoopOut int
	Looping         bool
}

// Full returns a region spanning a buffer of length n with no loop points.
func Full(n int) Region {
	return Region{
		In:      0,
		Out:     max(n-1, 0),
		LoopIn:  NoLoopPoint,
		LoopOut: NoLoopPoint,
	}
}

// loopBounds returns the loop points clipped into the hard range.
func (r Region) loopBounds() (int, int) {
	return max(r.LoopIn, r.In), min(r.LoopOut, r.Out)
}

// LoopActive reports whether looping is on and both loop points are set and
// ordered once clipped into [In, Out].
func (r Region) LoopActive() bool {
	if !r.Looping || r.LoopIn == NoLoopPoint || r.LoopOut == NoLoopPoint {
		return false
	}
	in, out := r.loopBounds()
	return in <= out
}

// Loop sends an index that ran past the loop end (in the direction of
// travel) back to the opposite loop point. Indices are returned unchanged
// when the loop is not active.
func (r Region) Loop(i int, forward bool) int {
	if !r.LoopActive() {
		return i
	}
	in, out := r.loopBounds()
	if forward {
		if i > out {
			return in
		}
	} else if i < in {
		return out
	}
	return i
}

// Beyond reports whether i lies past the terminal hard bound for the
// direction of travel.
func (r Region) Beyond(i int, forward bool) bool {
	if forward {
		return i > r.Out
	}
	return i < r.In
}

// Clamp limits i to [In, Out].
func (r Region) Clamp(i int) int {
	if i > r.Out {
		return r.Out
	}
	if i < r.In {
		return r.In
	}
	return i
}

// Wrap applies the loop and then the hard bounds, so a loop configured
// outside the hard range can never move an index out of it.
func (r Region) Wrap(i int, forward bool) int {
	return r.Clamp(r.Loop(i, forward))
}
