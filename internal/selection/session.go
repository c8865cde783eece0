package selection

import "sync"

// Session tracks question IDs already placed on a paper so that repeated
// selection calls never hand out the same question twice. Callers own the
// session's scope: one per user, per request batch, or per generation run.
// Clear makes subsequent runs independent again.
type Session struct {
	mu   sync.Mutex
	used map[string]struct{}
}

func NewSession() *Session {
	return &Session{used: map[string]struct{}{}}
}

func (s *Session) MarkUsed(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.used[id] = struct{}{}
	}
}

func (s *Session) Used(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.used[id]
	return ok
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.used)
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.used = map[string]struct{}{}
}
