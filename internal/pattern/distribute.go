package pattern

import (
	"fmt"

	"github.com/paperpress/paperpress/internal/question"
)

// Assignment binds one pattern section to the questions it will show.
// EffectiveAttempt and EffectiveTotal are recomputed from the actually
// assigned count, so a starved section's marks line stays honest.
type Assignment struct {
	Section          Section
	Questions        []question.Question
	EffectiveAttempt int
	EffectiveTotal   int
}

// Section aliases QuestionSection for readability at call sites.
type Section = QuestionSection

// Distributor partitions a type-homogeneous question list across the
// pattern's sections of that type. Swappable so a rebalancing strategy
// can replace the board-faithful sequential one without touching the
// renderer.
type Distributor interface {
	Distribute(sections []Section, qs []question.Question, marksPerQuestion int) []Assignment
}

// Sequential is the default strategy: sections claim the next
// TotalQuestions items front-to-back, no borrowing. When the pool runs
// dry, later sections simply receive fewer questions than declared.
type Sequential struct{}

func (Sequential) Distribute(sections []Section, qs []question.Question, marksPerQuestion int) []Assignment {
	out := make([]Assignment, 0, len(sections))
	rest := qs
	for _, sec := range sections {
		take := sec.TotalQuestions
		if take > len(rest) {
			take = len(rest)
		}
		assigned := rest[:take]
		rest = rest[take:]

		perQ := marksPerQuestion
		if perQ <= 0 {
			perQ = sec.MarksPerQuestion
		}
		attempt := sec.AttemptCount
		if attempt > len(assigned) {
			attempt = len(assigned)
		}
		out = append(out, Assignment{
			Section:          sec,
			Questions:        assigned,
			EffectiveAttempt: attempt,
			EffectiveTotal:   attempt * perQ,
		})
	}
	return out
}

// LiveFormula is the marks line shown in the section header, always
// derived from the effective values rather than the pattern's static
// declaration.
func (a Assignment) LiveFormula(marksPerQuestion int) string {
	perQ := marksPerQuestion
	if perQ <= 0 {
		perQ = a.Section.MarksPerQuestion
	}
	return fmt.Sprintf("%d × %d = %d", a.EffectiveAttempt, perQ, a.EffectiveAttempt*perQ)
}
