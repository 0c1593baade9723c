package store

import (
	"sync"

	"github.com/jonathan/ae-qualify/internal/types"
)

// Subscriber receives a deep-copied snapshot after every applied intent.
// Callbacks run synchronously on the dispatching goroutine, so they should
// hand heavy work off rather than block Dispatch.
type Subscriber func(types.DashboardState)

// Store owns the dashboard state tree. All access goes through Dispatch and
// Snapshot; both are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	state  types.DashboardState
	subs   map[int]Subscriber
	nextID int
	closed bool
}

// New creates a store seeded with the given initial state.
func New(initial types.DashboardState) *Store {
	return &Store{
		state: cloneState(initial),
		subs:  make(map[int]Subscriber),
	}
}

// Dispatch applies an intent and notifies subscribers with the resulting
// state. Dispatch on a closed store is a no-op.
func (s *Store) Dispatch(intent Intent) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = Reduce(s.state, intent)
	snapshot := cloneState(s.state)
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Snapshot returns a deep copy of the current state. Mutating the returned
// value has no effect on the store.
func (s *Store) Snapshot() types.DashboardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Subscribe registers a callback for future state changes and returns a
// function that removes it. Unsubscribing twice is harmless.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Close drops all subscribers and rejects further dispatches. Snapshot
// continues to work so shutdown paths can read the final state.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]Subscriber)
}
