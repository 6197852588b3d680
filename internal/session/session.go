// Package session tracks the currently authenticated username for the
// lifetime of the process. A fresh process always starts logged out.
package session

import "sync"

// Session is a process-scoped slot holding at most one username. It is set
// only by a successful login and cleared only by logout; other components
// must treat it as read-only.
type Session struct {
	mu       sync.RWMutex
	username string
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Set records the authenticated username.
func (s *Session) Set(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
}

// Clear removes any authenticated username. Clearing an empty session is a
// no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
}

// Current returns the authenticated username, if any. Pure read, no side
// effects.
func (s *Session) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, s.username != ""
}
