// Package marks computes and validates per-type mark totals for an
// assembled paper. Everything here is a pure function over the selected
// question lists; validation reports mismatches instead of failing so a
// questionable header total still yields a printable document.
package marks

import (
	"fmt"
	"strings"

	"github.com/paperpress/paperpress/internal/question"
)

// Board defaults per question type.
const (
	DefaultMCQMarks   = 1
	DefaultShortMarks = 2
	DefaultLongMarks  = 5
)

// Custom overrides the per-question marks for one or more types.
// Zero means "use the default".
type Custom struct {
	MCQ   int `json:"mcq,omitempty"`
	Short int `json:"short,omitempty"`
	Long  int `json:"long,omitempty"`
}

// AttemptRules caps how many short/long questions count toward the
// attempted total. Zero means "attempt all shown".
type AttemptRules struct {
	ShortAttempt int `json:"short_attempt,omitempty"`
	LongAttempt  int `json:"long_attempt,omitempty"`
}

type TypeBreakdown struct {
	Count            int `json:"count"`
	MarksPerQuestion int `json:"marks_per_question"`
	Total            int `json:"total"`
	AttemptCount     int `json:"attempt_count,omitempty"`
	AttemptedMarks   int `json:"attempted_marks,omitempty"`
}

type Breakdown struct {
	MCQ          TypeBreakdown `json:"mcq"`
	Short        TypeBreakdown `json:"short"`
	Long         TypeBreakdown `json:"long"`
	Total        int           `json:"total"`
	AttemptTotal int           `json:"attempt_total"`
}

// Validation is the non-throwing result of comparing a caller-declared
// header total against the computed one.
type Validation struct {
	Valid           bool   `json:"valid"`
	HeaderTotal     int    `json:"header_total"`
	CalculatedTotal int    `json:"calculated_total"`
	Mismatch        int    `json:"mismatch"`
	Err             string `json:"error,omitempty"`
}

func perQuestion(override, def int) int {
	if override > 0 {
		return override
	}
	return def
}

// Calculate produces the full breakdown for the three selected lists.
// attempt and custom may be nil.
func Calculate(mcqs, shorts, longs []question.Question, attempt *AttemptRules, custom *Custom) Breakdown {
	var c Custom
	if custom != nil {
		c = *custom
	}
	mcqPerQ := perQuestion(c.MCQ, DefaultMCQMarks)
	shortPerQ := perQuestion(c.Short, DefaultShortMarks)
	longPerQ := perQuestion(c.Long, DefaultLongMarks)

	shortAttempt := len(shorts)
	longAttempt := len(longs)
	if attempt != nil {
		if attempt.ShortAttempt > 0 {
			shortAttempt = attempt.ShortAttempt
		}
		if attempt.LongAttempt > 0 {
			longAttempt = attempt.LongAttempt
		}
	}

	b := Breakdown{
		MCQ: TypeBreakdown{
			Count:            len(mcqs),
			MarksPerQuestion: mcqPerQ,
			Total:            len(mcqs) * mcqPerQ,
		},
		Short: TypeBreakdown{
			Count:            len(shorts),
			MarksPerQuestion: shortPerQ,
			Total:            len(shorts) * shortPerQ,
			AttemptCount:     shortAttempt,
			AttemptedMarks:   shortAttempt * shortPerQ,
		},
		Long: TypeBreakdown{
			Count:            len(longs),
			MarksPerQuestion: longPerQ,
			Total:            len(longs) * longPerQ,
			AttemptCount:     longAttempt,
			AttemptedMarks:   longAttempt * longPerQ,
		},
	}
	b.Total = b.MCQ.Total + b.Short.Total + b.Long.Total
	b.AttemptTotal = b.MCQ.Total + b.Short.AttemptedMarks + b.Long.AttemptedMarks
	return b
}

// Validate compares headerTotal with the computed total. The mismatch is
// reported, never raised; the caller decides whether to block printing.
func Validate(headerTotal int, mcqs, shorts, longs []question.Question, custom *Custom) Validation {
	calc := Calculate(mcqs, shorts, longs, nil, custom).Total
	mismatch := headerTotal - calc
	if mismatch < 0 {
		mismatch = -mismatch
	}
	v := Validation{
		Valid:           mismatch == 0,
		HeaderTotal:     headerTotal,
		CalculatedTotal: calc,
		Mismatch:        mismatch,
	}
	if !v.Valid {
		v.Err = fmt.Sprintf("total marks mismatch: header shows %d, but calculated total is %d", headerTotal, calc)
	}
	return v
}

// FormatBreakdown renders a one-line human summary of a breakdown.
func FormatBreakdown(b Breakdown) string {
	var parts []string
	if b.MCQ.Count > 0 {
		parts = append(parts, fmt.Sprintf("MCQ: %d × %d = %d", b.MCQ.Count, b.MCQ.MarksPerQuestion, b.MCQ.Total))
	}
	if b.Short.Count > 0 {
		parts = append(parts, fmt.Sprintf("Short: %d × %d = %d", b.Short.Count, b.Short.MarksPerQuestion, b.Short.Total))
	}
	if b.Long.Count > 0 {
		parts = append(parts, fmt.Sprintf("Long: %d × %d = %d", b.Long.Count, b.Long.MarksPerQuestion, b.Long.Total))
	}
	parts = append(parts, fmt.Sprintf("Total: %d marks", b.Total))
	return strings.Join(parts, " | ")
}

// AttemptText renders the section instruction for "attempt N of M".
func AttemptText(attemptCount, totalQuestions, marksPerQuestion int) string {
	total := attemptCount * marksPerQuestion
	if attemptCount >= totalQuestions {
		return fmt.Sprintf("Attempt all (%d × %d = %d Marks)", attemptCount, marksPerQuestion, total)
	}
	return fmt.Sprintf("Attempt any %d (%d × %d = %d Marks)", attemptCount, attemptCount, marksPerQuestion, total)
}
