// Package host provides an in-process stand-in for the BrainDrive host's
// page-context service bridge. The real host's navigation engine is outside
// this plugin; the Simulator exists so the watch command and integration
// tests have a bridge to attach to.
package host

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/BrainDriveAI/pagecontext/internal/pagecontext"
)

// Simulator is a host bridge that walks a fixed set of pages. It implements
// both bridge capabilities (retrieveCurrent and subscribe) and is safe for
// concurrent use.
type Simulator struct {
	mu          sync.Mutex
	pages       []pagecontext.Context
	index       int
	started     bool // false until the first navigation; no current page yet
	retrieveErr error

	listeners map[uint64]func(pagecontext.Context)
	order     []uint64
	nextID    uint64
}

// NewSimulator creates a Simulator over the given pages. Pages without an ID
// get a generated one. The simulator starts on the first page when at least
// one is supplied.
func NewSimulator(pages ...pagecontext.Context) *Simulator {
	for i := range pages {
		if pages[i].ID == "" {
			pages[i].ID = uuid.NewString()
		}
	}
	return &Simulator{
		pages:     pages,
		started:   len(pages) > 0,
		listeners: make(map[uint64]func(pagecontext.Context)),
	}
}

// RetrieveCurrent implements the retrieval capability. It returns nil when
// the simulator has no pages.
func (s *Simulator) RetrieveCurrent() (*pagecontext.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.retrieveErr != nil {
		return nil, s.retrieveErr
	}
	if !s.started {
		return nil, nil
	}
	cp := s.pages[s.index]
	return &cp, nil
}

// Subscribe implements the notification capability. The returned stop
// function is idempotent.
func (s *Simulator) Subscribe(listener func(pagecontext.Context)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners[id] = listener
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
		})
	}
}

// Navigate moves the simulator to the page with the given ID and notifies
// subscribers.
func (s *Simulator) Navigate(pageID string) error {
	s.mu.Lock()
	for i, p := range s.pages {
		if p.ID == pageID {
			s.index = i
			s.started = true
			current := s.pages[i]
			s.mu.Unlock()
			s.notify(current)
			return nil
		}
	}
	s.mu.Unlock()
	return fmt.Errorf("host: no page with id %q", pageID)
}

// Advance moves to the next page in the set, wrapping around, and notifies
// subscribers. It returns the new current page.
func (s *Simulator) Advance() pagecontext.Context {
	s.mu.Lock()
	if len(s.pages) == 0 {
		s.mu.Unlock()
		return pagecontext.Context{}
	}
	if s.started {
		s.index = (s.index + 1) % len(s.pages)
	}
	s.started = true
	current := s.pages[s.index]
	s.mu.Unlock()

	s.notify(current)
	return current
}

// Rename changes the current page's name and notifies subscribers, as the
// host does when a page is retitled in place.
func (s *Simulator) Rename(name string) {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.pages[s.index].Name = name
	current := s.pages[s.index]
	s.mu.Unlock()

	s.notify(current)
}

// SetRoute changes the current page's route and notifies subscribers.
func (s *Simulator) SetRoute(route string) {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.pages[s.index].Route = route
	current := s.pages[s.index]
	s.mu.Unlock()

	s.notify(current)
}

// Emit delivers an arbitrary payload to subscribers without changing the
// simulator's own state. Tests use it to model a host sending malformed data.
func (s *Simulator) Emit(ctx pagecontext.Context) {
	s.notify(ctx)
}

// FailRetrieval makes subsequent RetrieveCurrent calls return err.
// Passing nil restores normal behavior.
func (s *Simulator) FailRetrieval(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retrieveErr = err
}

// ListenerCount returns the number of active subscriptions.
func (s *Simulator) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// notify dispatches to subscribers in registration order.
func (s *Simulator) notify(ctx pagecontext.Context) {
	s.mu.Lock()
	snapshot := make([]func(pagecontext.Context), 0, len(s.listeners))
	for _, id := range s.order {
		if fn, ok := s.listeners[id]; ok {
			snapshot = append(snapshot, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range snapshot {
		fn(ctx)
	}
}
