package marks_test

import (
	"strings"
	"testing"

	"github.com/paperpress/paperpress/internal/marks"
	"github.com/paperpress/paperpress/internal/question"
)

func questions(n int) []question.Question {
	out := make([]question.Question, n)
	for i := range out {
		out[i] = question.Question{ID: "q"}
	}
	return out
}

func TestCalculateDefaults(t *testing.T) {
	b := marks.Calculate(questions(10), questions(5), questions(3), nil, nil)

	if b.MCQ.Total != 10 {
		t.Errorf("mcq total = %d, want 10", b.MCQ.Total)
	}
	if b.Short.Total != 10 {
		t.Errorf("short total = %d, want 10", b.Short.Total)
	}
	if b.Long.Total != 15 {
		t.Errorf("long total = %d, want 15", b.Long.Total)
	}
	if b.Total != 35 {
		t.Errorf("total = %d, want 35 (sum of type totals)", b.Total)
	}
	if b.AttemptTotal != 35 {
		t.Errorf("attempt total = %d, want 35 when everything is attempted", b.AttemptTotal)
	}
}

func TestCalculateCustomMarks(t *testing.T) {
	custom := &marks.Custom{Short: 3, Long: 8}
	b := marks.Calculate(questions(10), questions(5), questions(3), nil, custom)

	if b.MCQ.MarksPerQuestion != marks.DefaultMCQMarks {
		t.Errorf("mcq per-question = %d, want the default %d", b.MCQ.MarksPerQuestion, marks.DefaultMCQMarks)
	}
	if b.Short.Total != 15 {
		t.Errorf("short total = %d, want 15 at 3 marks each", b.Short.Total)
	}
	if b.Long.Total != 24 {
		t.Errorf("long total = %d, want 24 at 8 marks each", b.Long.Total)
	}
	if b.Total != 10+15+24 {
		t.Errorf("total = %d, want %d", b.Total, 10+15+24)
	}
}

func TestCalculateAttemptRules(t *testing.T) {
	attempt := &marks.AttemptRules{ShortAttempt: 5, LongAttempt: 2}
	b := marks.Calculate(questions(12), questions(8), questions(3), attempt, nil)

	if b.Short.AttemptedMarks != 10 {
		t.Errorf("short attempted = %d, want 10 (5 of 8 at 2 each)", b.Short.AttemptedMarks)
	}
	if b.Long.AttemptedMarks != 10 {
		t.Errorf("long attempted = %d, want 10 (2 of 3 at 5 each)", b.Long.AttemptedMarks)
	}
	if b.AttemptTotal != 12+10+10 {
		t.Errorf("attempt total = %d, want %d", b.AttemptTotal, 12+10+10)
	}
	// Shown total still counts every printed question.
	if b.Total != 12+16+15 {
		t.Errorf("total = %d, want %d", b.Total, 12+16+15)
	}
}

func TestValidateMatch(t *testing.T) {
	v := marks.Validate(35, questions(10), questions(5), questions(3), nil)
	if !v.Valid || v.Mismatch != 0 || v.Err != "" {
		t.Errorf("want clean validation, got %+v", v)
	}
}

func TestValidateMismatchIsReportedNotRaised(t *testing.T) {
	v := marks.Validate(40, questions(10), questions(5), questions(3), nil)
	if v.Valid {
		t.Fatal("validation passed a 5-mark mismatch")
	}
	if v.Mismatch != 5 {
		t.Errorf("mismatch = %d, want 5", v.Mismatch)
	}
	if v.CalculatedTotal != 35 || v.HeaderTotal != 40 {
		t.Errorf("totals = %d/%d, want 35/40", v.CalculatedTotal, v.HeaderTotal)
	}
	if !strings.Contains(v.Err, "header shows 40") || !strings.Contains(v.Err, "calculated total is 35") {
		t.Errorf("unexpected message: %q", v.Err)
	}
}

func TestFormatBreakdownSkipsEmptyTypes(t *testing.T) {
	b := marks.Calculate(questions(10), nil, nil, nil, nil)
	s := marks.FormatBreakdown(b)
	if !strings.Contains(s, "MCQ: 10 × 1 = 10") {
		t.Errorf("missing mcq part: %q", s)
	}
	if strings.Contains(s, "Short") || strings.Contains(s, "Long") {
		t.Errorf("empty types should be omitted: %q", s)
	}
	if !strings.Contains(s, "Total: 10 marks") {
		t.Errorf("missing total: %q", s)
	}
}

func TestAttemptText(t *testing.T) {
	if got := marks.AttemptText(5, 8, 2); got != "Attempt any 5 (5 × 2 = 10 Marks)" {
		t.Errorf("partial attempt text = %q", got)
	}
	if got := marks.AttemptText(3, 3, 5); got != "Attempt all (3 × 5 = 15 Marks)" {
		t.Errorf("attempt-all text = %q", got)
	}
}
