package http

import (
	"sync"

	"github.com/paperpress/paperpress/internal/selection"
)

// SessionRegistry hands out one selection session per authenticated
// subject, so consecutive generation calls by the same user never repeat
// a question until the user clears their session.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*selection.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: map[string]*selection.Session{}}
}

func (r *SessionRegistry) For(sub string) *selection.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sub]
	if !ok {
		s = selection.NewSession()
		r.sessions[sub] = s
	}
	return s
}

func (r *SessionRegistry) Clear(sub string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[sub]; ok {
		s.Clear()
	}
}
