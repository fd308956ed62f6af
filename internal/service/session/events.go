package session

import "github.com/heartmarshall/precinct-records/internal/domain"

// Event is an auth state change.
type Event string

const (
	EventSignedUp  Event = "SIGNED_UP"
	EventSignedIn  Event = "SIGNED_IN"
	EventSignedOut Event = "SIGNED_OUT"
)

// Listener receives auth state changes. It is called synchronously on the
// goroutine that triggered the change and must not block.
type Listener func(ev Event, id domain.Identity)

// Subscribe registers fn and returns a function that removes it.
func (s *Service) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Service) emit(ev Event, id domain.Identity) {
	s.mu.RLock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(ev, id)
	}
}
