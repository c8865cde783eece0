package pattern_test

import (
	"testing"

	"github.com/paperpress/paperpress/internal/pattern"
	"github.com/paperpress/paperpress/internal/question"
)

func shorts(n int) []question.Question {
	out := make([]question.Question, n)
	for i := range out {
		out[i] = question.Question{ID: string(rune('a' + i)), Type: question.TypeShort}
	}
	return out
}

func twoShortSections() []pattern.Section {
	return []pattern.Section{
		{QNumber: 2, TotalQuestions: 8, AttemptCount: 5, MarksPerQuestion: 2, Type: pattern.SectionShort},
		{QNumber: 3, TotalQuestions: 8, AttemptCount: 5, MarksPerQuestion: 2, Type: pattern.SectionShort},
	}
}

func TestSequentialFillsFrontToBack(t *testing.T) {
	got := pattern.Sequential{}.Distribute(twoShortSections(), shorts(16), 0)
	if len(got) != 2 {
		t.Fatalf("got %d assignments, want 2", len(got))
	}
	if len(got[0].Questions) != 8 || len(got[1].Questions) != 8 {
		t.Fatalf("got %d/%d questions, want 8/8", len(got[0].Questions), len(got[1].Questions))
	}
	if got[0].Questions[0].ID != "a" || got[1].Questions[0].ID != "i" {
		t.Error("sections did not slice the pool in order")
	}
	if got[0].EffectiveAttempt != 5 || got[0].EffectiveTotal != 10 {
		t.Errorf("effective attempt/total = %d/%d, want 5/10", got[0].EffectiveAttempt, got[0].EffectiveTotal)
	}
}

func TestSequentialDoesNotRebalance(t *testing.T) {
	// 10 questions over two 8-question sections: the first takes its full
	// declaration, the second gets whatever is left. No borrowing.
	got := pattern.Sequential{}.Distribute(twoShortSections(), shorts(10), 0)
	if len(got[0].Questions) != 8 {
		t.Errorf("first section got %d, want its full 8", len(got[0].Questions))
	}
	if len(got[1].Questions) != 2 {
		t.Errorf("second section got %d, want the remaining 2", len(got[1].Questions))
	}
	// The starved section's attempt is capped at what it actually shows.
	if got[1].EffectiveAttempt != 2 {
		t.Errorf("starved attempt = %d, want 2", got[1].EffectiveAttempt)
	}
	if got[1].EffectiveTotal != 4 {
		t.Errorf("starved total = %d, want 4", got[1].EffectiveTotal)
	}
}

func TestSequentialEmptyPool(t *testing.T) {
	got := pattern.Sequential{}.Distribute(twoShortSections(), nil, 0)
	for i, a := range got {
		if len(a.Questions) != 0 || a.EffectiveAttempt != 0 || a.EffectiveTotal != 0 {
			t.Errorf("assignment %d not empty: %+v", i, a)
		}
	}
}

func TestSequentialCustomMarksOverride(t *testing.T) {
	got := pattern.Sequential{}.Distribute(twoShortSections(), shorts(16), 3)
	if got[0].EffectiveTotal != 15 {
		t.Errorf("effective total = %d, want 15 at 3 marks each", got[0].EffectiveTotal)
	}
}

func TestLiveFormula(t *testing.T) {
	got := pattern.Sequential{}.Distribute(twoShortSections(), shorts(10), 0)
	if f := got[1].LiveFormula(0); f != "2 × 2 = 4" {
		t.Errorf("live formula for the starved section = %q, want the effective values", f)
	}
	if f := got[0].LiveFormula(3); f != "5 × 3 = 15" {
		t.Errorf("live formula with override = %q", f)
	}
}
