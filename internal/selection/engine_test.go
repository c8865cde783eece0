package selection_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/paperpress/paperpress/internal/question"
	"github.com/paperpress/paperpress/internal/selection"
)

func seedBank(mcq, short, long int) *question.MemStore {
	store := question.NewMemStore()
	add := func(typ question.Type, marks, n int) {
		for i := 0; i < n; i++ {
			diff := question.DifficultyMedium
			if i%3 == 0 {
				diff = question.DifficultyEasy
			}
			store.Add(question.Question{
				ID:         fmt.Sprintf("%s-%d", typ, i),
				ClassID:    "9th",
				SubjectID:  "physics",
				ChapterID:  fmt.Sprintf("ch%d", i%4+1),
				Type:       typ,
				Difficulty: diff,
				Marks:      marks,
				Text:       fmt.Sprintf("%s question %d", typ, i),
			})
		}
	}
	add(question.TypeMCQ, 1, mcq)
	add(question.TypeShort, 2, short)
	add(question.TypeLong, 5, long)
	return store
}

func baseConfig() selection.Config {
	return selection.Config{
		ClassID:    "9th",
		SubjectID:  "physics",
		MCQCount:   12,
		ShortCount: 8,
		LongCount:  3,
		Seed:       12345,
	}
}

func TestSelectCountsAndDisjointTypes(t *testing.T) {
	eng := selection.NewEngine(seedBank(30, 20, 10), nil)
	sess := selection.NewSession()

	res, err := eng.Select(context.Background(), sess, baseConfig())
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(res.MCQs) != 12 || len(res.Shorts) != 8 || len(res.Longs) != 3 {
		t.Fatalf("got %d/%d/%d questions, want 12/8/3",
			len(res.MCQs), len(res.Shorts), len(res.Longs))
	}
	want := 12*1 + 8*2 + 3*5
	if res.TotalMarks != want {
		t.Errorf("total marks = %d, want %d", res.TotalMarks, want)
	}

	seen := map[string]bool{}
	for _, qs := range [][]question.Question{res.MCQs, res.Shorts, res.Longs} {
		for _, q := range qs {
			if seen[q.ID] {
				t.Fatalf("question %s appears twice in one paper", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSelectSeedDeterminism(t *testing.T) {
	store := seedBank(30, 20, 10)
	cfg := baseConfig()

	ids := func() []string {
		eng := selection.NewEngine(store, nil)
		res, err := eng.Select(context.Background(), selection.NewSession(), cfg)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		var out []string
		for _, qs := range [][]question.Question{res.MCQs, res.Shorts, res.Longs} {
			for _, q := range qs {
				out = append(out, q.ID)
			}
		}
		return out
	}

	a, b := ids(), ids()
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different papers at index %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestSelectCrossCallExclusion(t *testing.T) {
	eng := selection.NewEngine(seedBank(30, 20, 10), nil)
	sess := selection.NewSession()
	cfg := baseConfig()
	cfg.MCQCount, cfg.ShortCount, cfg.LongCount = 10, 5, 2

	first, err := eng.Select(context.Background(), sess, cfg)
	if err != nil {
		t.Fatalf("first select: %v", err)
	}
	cfg.Seed = 67890
	second, err := eng.Select(context.Background(), sess, cfg)
	if err != nil {
		t.Fatalf("second select: %v", err)
	}

	used := map[string]bool{}
	for _, qs := range [][]question.Question{first.MCQs, first.Shorts, first.Longs} {
		for _, q := range qs {
			used[q.ID] = true
		}
	}
	for _, qs := range [][]question.Question{second.MCQs, second.Shorts, second.Longs} {
		for _, q := range qs {
			if used[q.ID] {
				t.Errorf("question %s reused across calls in one session", q.ID)
			}
		}
	}

	sess.Clear()
	if sess.Len() != 0 {
		t.Errorf("session not empty after clear: %d", sess.Len())
	}
}

func TestSelectChapterFilter(t *testing.T) {
	eng := selection.NewEngine(seedBank(40, 20, 8), nil)
	cfg := baseConfig()
	cfg.ChapterIDs = []string{"ch1", "ch2"}
	cfg.MCQCount, cfg.ShortCount, cfg.LongCount = 5, 3, 1

	res, err := eng.Select(context.Background(), selection.NewSession(), cfg)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	for _, qs := range [][]question.Question{res.MCQs, res.Shorts, res.Longs} {
		for _, q := range qs {
			if q.ChapterID != "ch1" && q.ChapterID != "ch2" {
				t.Errorf("question %s from chapter %s, want ch1 or ch2", q.ID, q.ChapterID)
			}
		}
	}
}

func TestSelectDifficultyFilter(t *testing.T) {
	eng := selection.NewEngine(seedBank(30, 12, 6), nil)
	cfg := baseConfig()
	cfg.Difficulty = question.DifficultyEasy
	cfg.MCQCount, cfg.ShortCount, cfg.LongCount = 4, 2, 1

	res, err := eng.Select(context.Background(), selection.NewSession(), cfg)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	for _, qs := range [][]question.Question{res.MCQs, res.Shorts, res.Longs} {
		for _, q := range qs {
			if q.Difficulty != question.DifficultyEasy {
				t.Errorf("question %s has difficulty %s, want easy", q.ID, q.Difficulty)
			}
		}
	}
}

func TestSelectShortfallReturnsWhatExists(t *testing.T) {
	eng := selection.NewEngine(seedBank(3, 2, 1), nil)
	res, err := eng.Select(context.Background(), selection.NewSession(), baseConfig())
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(res.MCQs) != 3 || len(res.Shorts) != 2 || len(res.Longs) != 1 {
		t.Errorf("got %d/%d/%d, want the whole pool 3/2/1",
			len(res.MCQs), len(res.Shorts), len(res.Longs))
	}
}

func TestValidateAvailability(t *testing.T) {
	eng := selection.NewEngine(seedBank(20, 8, 3), nil)
	sess := selection.NewSession()
	cfg := baseConfig()
	cfg.MCQCount = 1000

	rep, err := eng.ValidateAvailability(context.Background(), sess, cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if rep.Valid {
		t.Error("report valid with 20 mcqs against a demand of 1000")
	}
	if rep.Available.MCQ != 20 || rep.Required.MCQ != 1000 {
		t.Errorf("mcq available/required = %d/%d, want 20/1000", rep.Available.MCQ, rep.Required.MCQ)
	}
	if sess.Len() != 0 {
		t.Error("availability check consumed from the session")
	}

	cfg.MCQCount = 12
	rep, err = eng.ValidateAvailability(context.Background(), sess, cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !rep.Valid {
		t.Errorf("report invalid for a satisfiable request: %+v", rep)
	}
}

func TestValidateAvailabilityIgnoresDifficulty(t *testing.T) {
	eng := selection.NewEngine(seedBank(9, 0, 0), nil)
	cfg := baseConfig()
	cfg.Difficulty = question.DifficultyHard // bank has none
	cfg.MCQCount, cfg.ShortCount, cfg.LongCount = 9, 0, 0

	rep, err := eng.ValidateAvailability(context.Background(), selection.NewSession(), cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if rep.Available.MCQ != 9 {
		t.Errorf("availability applied the difficulty filter: got %d, want 9", rep.Available.MCQ)
	}
}

func TestSelectExcludeIDs(t *testing.T) {
	eng := selection.NewEngine(seedBank(5, 0, 0), nil)
	cfg := baseConfig()
	cfg.MCQCount, cfg.ShortCount, cfg.LongCount = 5, 0, 0
	cfg.ExcludeIDs = []string{"mcq-0", "mcq-1"}

	res, err := eng.Select(context.Background(), selection.NewSession(), cfg)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(res.MCQs) != 3 {
		t.Fatalf("got %d mcqs, want 3 after excluding 2 of 5", len(res.MCQs))
	}
	for _, q := range res.MCQs {
		if q.ID == "mcq-0" || q.ID == "mcq-1" {
			t.Errorf("excluded question %s selected", q.ID)
		}
	}
}
