package question_test

import (
	"context"
	"testing"
	"time"

	"github.com/paperpress/paperpress/internal/db"
	"github.com/paperpress/paperpress/internal/question"
)

func openTestDB(t *testing.T, name string) *question.SQLStore {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return question.NewSQLStore(dbh)
}

// Content imported from flat files must stay reachable through the SQL
// backend with the same class/subject arguments the gateway passes.
func TestSQLStoreServesImportedContent(t *testing.T) {
	fs := newFSStore(t)
	sqlStore := openTestDB(t, "bank_import")
	ctx := context.Background()

	imported, err := fs.Query(ctx, "9th", "physics", nil, "")
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	for _, q := range imported {
		if err := sqlStore.Upsert(ctx, q); err != nil {
			t.Fatalf("upsert %s: %v", q.ID, err)
		}
	}

	got, err := sqlStore.Query(ctx, "9th", "physics", nil, "")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != len(imported) {
		t.Fatalf("sql backend returned %d of %d imported questions", len(got), len(imported))
	}
	for _, q := range got {
		if q.SubjectID != "physics" {
			t.Errorf("question %s stored with subject_id %q, want the plain subject", q.ID, q.SubjectID)
		}
	}

	// Gateway requests are not case-normalized before they reach the store.
	got, err = sqlStore.Query(ctx, "9th", "Physics", nil, "")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != len(imported) {
		t.Errorf("mixed-case subject returned %d of %d questions", len(got), len(imported))
	}
}

func TestSQLStoreQueryFilters(t *testing.T) {
	sqlStore := openTestDB(t, "bank_filters")
	ctx := context.Background()

	seed := []question.Question{
		{ID: "m1", ClassID: "9th", SubjectID: "physics", ChapterID: "ch1", Type: question.TypeMCQ, Difficulty: question.DifficultyEasy, Marks: 1, Text: "a", Options: [4]string{"w", "x", "y", "z"}, CorrectOption: 2},
		{ID: "s1", ClassID: "9th", SubjectID: "physics", ChapterID: "ch1", Type: question.TypeShort, Difficulty: question.DifficultyMedium, Marks: 2, Text: "b"},
		{ID: "s2", ClassID: "9th", SubjectID: "physics", ChapterID: "ch2", Type: question.TypeShort, Difficulty: question.DifficultyMedium, Marks: 2, Text: "c"},
		{ID: "x1", ClassID: "9th", SubjectID: "chemistry", ChapterID: "ch1", Type: question.TypeMCQ, Difficulty: question.DifficultyMedium, Marks: 1, Text: "d"},
	}
	for _, q := range seed {
		if err := sqlStore.Upsert(ctx, q); err != nil {
			t.Fatalf("upsert %s: %v", q.ID, err)
		}
	}

	got, err := sqlStore.Query(ctx, "9th", "physics", []string{"ch1"}, "")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("chapter filter returned %d questions, want 2", len(got))
	}
	if got[0].ID != "m1" || got[0].Options[2] != "y" || got[0].CorrectOption != 2 {
		t.Errorf("mcq round trip wrong: %+v", got[0])
	}

	got, err = sqlStore.Query(ctx, "9th", "physics", nil, question.TypeShort)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("type filter returned %d questions, want 2", len(got))
	}

	stats, err := sqlStore.ChapterStats(ctx, "9th", "physics")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got := stats["ch1"]; got.MCQ != 1 || got.Short != 1 {
		t.Errorf("ch1 stats = %+v", got)
	}
	if got := stats["ch2"]; got.Short != 1 {
		t.Errorf("ch2 stats = %+v", got)
	}
}
