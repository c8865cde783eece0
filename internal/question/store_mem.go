package question

import (
	"context"
	"strings"
	"sync"
)

// MemStore is an in-memory bank used by tests and the offline seeder.
type MemStore struct {
	mu        sync.RWMutex
	questions []Question
}

func NewMemStore(qs ...Question) *MemStore {
	return &MemStore{questions: append([]Question(nil), qs...)}
}

func (m *MemStore) Add(qs ...Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions = append(m.questions, qs...)
}

func (m *MemStore) Query(ctx context.Context, classID, subjectID string, chapterIDs []string, typ Type) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wantChapter := map[string]bool{}
	for _, ch := range chapterIDs {
		wantChapter[ch] = true
	}
	var out []Question
	for _, q := range m.questions {
		if q.ClassID != classID || !strings.EqualFold(q.SubjectID, subjectID) {
			continue
		}
		if len(wantChapter) > 0 && !wantChapter[q.ChapterID] {
			continue
		}
		if typ != "" && q.Type != typ {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (m *MemStore) ChapterStats(ctx context.Context, classID, subjectID string) (map[string]TypeCounts, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := map[string]TypeCounts{}
	for _, q := range m.questions {
		if q.ClassID != classID || !strings.EqualFold(q.SubjectID, subjectID) {
			continue
		}
		c := stats[q.ChapterID]
		c.add(q.Type)
		stats[q.ChapterID] = c
	}
	return stats, nil
}
