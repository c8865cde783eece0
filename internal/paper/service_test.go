package paper_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/paperpress/paperpress/internal/paper"
	"github.com/paperpress/paperpress/internal/question"
	"github.com/paperpress/paperpress/internal/selection"
)

type memPaperStore struct {
	mu     sync.Mutex
	papers map[string]paper.Paper
}

func newMemPaperStore() *memPaperStore {
	return &memPaperStore{papers: map[string]paper.Paper{}}
}

func (m *memPaperStore) Put(ctx context.Context, p paper.Paper, req paper.GenerateRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.papers[p.ID] = p
	return nil
}

func (m *memPaperStore) Get(ctx context.Context, id string) (paper.Paper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.papers[id]
	if !ok {
		return paper.Paper{}, paper.ErrNotFound
	}
	return p, nil
}

func (m *memPaperStore) List(ctx context.Context, limit int) ([]paper.Paper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []paper.Paper
	for _, p := range m.papers {
		out = append(out, p)
	}
	return out, nil
}

func bank() *question.MemStore {
	store := question.NewMemStore()
	add := func(typ question.Type, marks, n int) {
		for i := 0; i < n; i++ {
			store.Add(question.Question{
				ID:        fmt.Sprintf("%s-%d", typ, i),
				ClassID:   "9th",
				SubjectID: "physics",
				ChapterID: "ch1",
				Type:      typ,
				Marks:     marks,
				Text:      fmt.Sprintf("%s stem %d", typ, i),
				Options:   [4]string{"a", "b", "c", "d"},
			})
		}
	}
	add(question.TypeMCQ, 1, 20)
	add(question.TypeShort, 2, 30)
	add(question.TypeLong, 9, 6)
	return store
}

func newService(store paper.Store) *paper.Service {
	return paper.NewService(selection.NewEngine(bank(), nil), store, nil)
}

func request() paper.GenerateRequest {
	return paper.GenerateRequest{
		Selection: selection.Config{
			ClassID:    "9th",
			SubjectID:  "physics",
			MCQCount:   12,
			ShortCount: 24,
			LongCount:  3,
			Seed:       12345,
		},
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	store := newMemPaperStore()
	svc := newService(store)
	sess := selection.NewSession()

	res, err := svc.Generate(context.Background(), sess, request())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Paper.ID == "" {
		t.Fatal("paper has no ID")
	}
	if res.Paper.TotalMarks != 12*1+24*2+3*9 {
		t.Errorf("total marks = %d, want %d", res.Paper.TotalMarks, 12+48+27)
	}
	for _, want := range []string{"<!DOCTYPE html>", "Q1:", "SUBJECTIVE SECTION", "(A)"} {
		if !strings.Contains(res.Paper.HTML, want) {
			t.Errorf("rendered paper missing %q", want)
		}
	}

	archived, err := store.Get(context.Background(), res.Paper.ID)
	if err != nil {
		t.Fatalf("paper not archived: %v", err)
	}
	if archived.HTML != res.Paper.HTML {
		t.Error("archived HTML differs from the returned one")
	}
	if sess.Len() != 12+24+3 {
		t.Errorf("session tracked %d used questions, want %d", sess.Len(), 39)
	}
}

func TestGenerateUnknownPatternWarns(t *testing.T) {
	svc := newService(nil)
	req := request()
	req.Selection.SubjectID = "astrology"
	req.Selection.ClassID = "5th"

	res, err := svc.Generate(context.Background(), selection.NewSession(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "no board pattern") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing fallback warning, got %v", res.Warnings)
	}
}

func TestGenerateDeclaredTotalMismatchWarns(t *testing.T) {
	svc := newService(nil)
	req := request()
	req.DeclaredTotal = 999

	res, err := svc.Generate(context.Background(), selection.NewSession(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "total marks mismatch") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing mismatch warning, got %v", res.Warnings)
	}
}

func TestGenerateTwicePapersAreDisjoint(t *testing.T) {
	svc := newService(nil)
	sess := selection.NewSession()
	req := request()
	req.Selection.MCQCount, req.Selection.ShortCount, req.Selection.LongCount = 8, 10, 2

	first, err := svc.Generate(context.Background(), sess, req)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := svc.Generate(context.Background(), sess, req)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	used := map[string]bool{}
	for _, q := range append(append(first.Resolved.MCQs, first.Resolved.Shorts...), first.Resolved.Longs...) {
		used[q.ID] = true
	}
	for _, q := range append(append(second.Resolved.MCQs, second.Resolved.Shorts...), second.Resolved.Longs...) {
		if used[q.ID] {
			t.Errorf("question %s appears on both papers", q.ID)
		}
	}
}

func TestValidateAvailabilityPassthrough(t *testing.T) {
	svc := newService(nil)
	req := request()
	req.Selection.LongCount = 100

	rep, err := svc.ValidateAvailability(context.Background(), selection.NewSession(), req.Selection)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if rep.Valid {
		t.Error("report valid with only 6 long questions against 100")
	}
	if rep.Available.Long != 6 {
		t.Errorf("long available = %d, want 6", rep.Available.Long)
	}
}
