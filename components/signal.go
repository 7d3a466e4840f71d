package components

// Signal is a zero-argument notification with any number of listeners,
// invoked in the order they were added.
type Signal struct {
	listeners []func()
}

// AddListener registers fn to run on every Invoke.
func (s *Signal) AddListener(fn func()) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// RemoveAllListeners drops every registered listener.
func (s *Signal) RemoveAllListeners() {
	s.listeners = nil
}

// ListenerCount returns the number of registered listeners.
func (s *Signal) ListenerCount() int {
	return len(s.listeners)
}

// Invoke runs every listener.
func (s *Signal) Invoke() {
	for _, fn := range s.listeners {
		fn()
	}
}
