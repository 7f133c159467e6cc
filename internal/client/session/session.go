// Package session holds the client process's authentication state. There is
// exactly one Store per process; it is written only by the auth bootstrapper
// and read by everything else (single writer, many readers).
package session

import (
	"sync"

	"github.com/dmitrijs2005/tracker/internal/client/authz"
	"github.com/dmitrijs2005/tracker/internal/client/models"
)

// State is an atomic whole-record snapshot of the session. When
// Authenticated is false, User is nil, Roles is empty and every permission
// is false.
type State struct {
	Authenticated bool
	User          *models.User
	Roles         []string
	Permissions   authz.Permissions
}

// Store is a broadcast register over State. Permissions are computed once,
// from the role claims, at the moment the session is populated.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextSubID   int
}

func NewStore() *Store {
	return &Store{subscribers: make(map[int]func(State))}
}

// Set replaces the session with an authenticated state for the given user
// and role claims.
func (s *Store) Set(user *models.User, roles []string) {
	rolesCopy := make([]string, len(roles))
	copy(rolesCopy, roles)

	s.mu.Lock()
	s.state = State{
		Authenticated: true,
		User:          user,
		Roles:         rolesCopy,
		Permissions:   authz.Evaluate(rolesCopy),
	}
	state := s.state
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Clear resets the session to unauthenticated. Clearing an already empty
// session is a no-op that still notifies subscribers.
func (s *Store) Clear() {
	s.mu.Lock()
	s.state = State{}
	state := s.state
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Snapshot returns the current state. The returned roles slice is a copy.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	if state.Roles != nil {
		roles := make([]string, len(state.Roles))
		copy(roles, state.Roles)
		state.Roles = roles
	}
	return state
}

// Subscribe registers fn to be called on every Set/Clear. The returned
// function cancels the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// snapshotSubscribers must be called with mu held.
func (s *Store) snapshotSubscribers() []func(State) {
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}
