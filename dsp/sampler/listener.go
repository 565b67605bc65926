package sampler

// Listener is told when a Sampler stops producing audio: the buffer is
// empty, playback was stopped, or the cursor ran past its terminal bound.
//
// Listeners are compared by identity, so implementations should be pointer
// types. Done is called synchronously from Process and must not add or
// remove listeners.
type Listener interface {
	Done()
}

// AddListener registers l.
func (s *Sampler) AddListener(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// RemoveListener unregisters the first listener identical to l and reports
// whether one was found.
func (s *Sampler) RemoveListener(l Listener) bool {
	for i, x := range s.listeners {
		if x == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// notifyDone fires once per transition into the stopped state; producing a
// sample again re-arms it.
func (s *Sampler) notifyDone() {
	if s.flaggedDone {
		return
	}
	s.flaggedDone = true
	for _, l := range s.listeners {
		l.Done()
	}
}
