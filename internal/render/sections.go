package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/paperpress/paperpress/internal/mathtext"
	"github.com/paperpress/paperpress/internal/pattern"
	"github.com/paperpress/paperpress/internal/question"
)

var optionLabels = [4]string{"A", "B", "C", "D"}

// applyEdit resolves the effective text/options for a question under the
// render-time overlay. The overlay always wins over the stored record.
func applyEdit(q question.Question, edits map[string]Edit) question.Question {
	e, ok := edits[q.ID]
	if !ok {
		return q
	}
	if e.Text != nil {
		q.Text = *e.Text
	}
	if e.Options != nil {
		q.Options = *e.Options
	}
	if e.Marks != nil {
		q.Marks = *e.Marks
	}
	return q
}

// rowMarks is the [n] annotation for one question row: the section's
// per-question marks unless an edit overrides this question explicitly.
func rowMarks(q question.Question, edits map[string]Edit, perQ int) int {
	if e, ok := edits[q.ID]; ok && e.Marks != nil {
		return *e.Marks
	}
	return perQ
}

func renderSectionBar(sec pattern.QuestionSection, formula string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `
<div class="pp-sec-bar">
<span class="pp-sec-qnum">Q%d:</span>
<span class="pp-sec-title">%s</span>
<span class="pp-sec-instr">%s</span>
<span class="pp-sec-marks">%s</span>
</div>`,
		sec.QNumber,
		mathtext.EscapeHTML(sec.Title),
		mathtext.EscapeHTML(sec.Instruction),
		mathtext.EscapeHTML(formula))
	if sec.SpecialNote != "" {
		fmt.Fprintf(&b, "\n<div class=\"pp-sec-note\">&#9658; %s</div>", mathtext.EscapeHTML(sec.SpecialNote))
	}
	return b.String()
}

func renderMCQSection(sec pattern.QuestionSection, mcqs []question.Question, opts Options) string {
	if len(mcqs) == 0 {
		return ""
	}
	perQ := sec.MarksPerQuestion
	if opts.CustomMarks != nil && opts.CustomMarks.MCQ > 0 {
		perQ = opts.CustomMarks.MCQ
	}
	formula := pattern.Formula(len(mcqs), perQ)

	var b strings.Builder
	b.WriteString("\n<div data-section=\"mcq\">")
	b.WriteString(renderSectionBar(sec, formula))
	b.WriteString(renderBubbleGrid(len(mcqs), opts.BubblesPerRow))
	b.WriteString(renderMCQTable(mcqs, opts.Edits))
	b.WriteString("\n</div>")
	return b.String()
}

// renderBubbleGrid is the in-paper answer grid: one numbered cell with
// four lettered bubbles per shown MCQ.
func renderBubbleGrid(count, perRow int) string {
	if perRow <= 0 {
		perRow = 5
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n<div class=\"pp-bubbles\" style=\"grid-template-columns:repeat(%d,1fr)\">", perRow)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "\n<div class=\"pp-bub-item\"><span class=\"pp-bub-num\">%d.</span><div class=\"pp-bub-opts\">", i)
		for _, l := range optionLabels {
			fmt.Fprintf(&b, `<div class="pp-bub-opt"><span class="pp-bub-letter">%s</span><span class="pp-bub-circle"></span></div>`, l)
		}
		b.WriteString("</div></div>")
	}
	b.WriteString("\n</div>")
	return b.String()
}

func renderMCQTable(mcqs []question.Question, edits map[string]Edit) string {
	var b strings.Builder
	b.WriteString("\n<table class=\"pp-mcq-table\"><tbody>")
	for i, raw := range mcqs {
		q := applyEdit(raw, edits)
		fmt.Fprintf(&b, "\n<tr class=\"pp-mcq-tr\" data-qid=\"%s\">\n<td class=\"pp-mcq-num\">%d.</td>\n<td class=\"pp-mcq-body\">\n<span class=\"pp-mcq-qtext\">%s</span>\n<div class=\"pp-mcq-opts\">",
			mathtext.EscapeAttr(q.ID), i+1, mathtext.Process(q.Text))
		for oi, opt := range q.Options {
			fmt.Fprintf(&b, "\n<div class=\"pp-mcq-opt\"><span class=\"pp-mcq-opt-lbl\">(%s)</span>&nbsp;%s</div>",
				optionLabels[oi], mathtext.Process(opt))
		}
		b.WriteString("\n</div>\n</td>\n</tr>")
	}
	b.WriteString("\n</tbody></table>")
	return b.String()
}

func renderShortSection(a pattern.Assignment, opts Options) string {
	if len(a.Questions) == 0 {
		return ""
	}
	perQ := a.Section.MarksPerQuestion
	if opts.CustomMarks != nil && opts.CustomMarks.Short > 0 {
		perQ = opts.CustomMarks.Short
	}
	sec := a.Section
	sec.Instruction = fmt.Sprintf("Attempt any %d short questions.", a.EffectiveAttempt)

	var b strings.Builder
	fmt.Fprintf(&b, "\n<div data-section=\"short-%d\">", sec.QNumber)
	b.WriteString(renderSectionBar(sec, a.LiveFormula(perQ)))
	b.WriteString("\n<div class=\"pp-shorts\">")
	for i, raw := range a.Questions {
		q := applyEdit(raw, opts.Edits)
		fmt.Fprintf(&b, "\n<div class=\"pp-short-row\" data-qid=\"%s\"><span class=\"pp-short-num\">(%s)</span><span class=\"pp-short-text\">%s</span><span class=\"pp-short-marks\">[%d]</span></div>",
			mathtext.EscapeAttr(q.ID), roman(i+1), mathtext.Process(q.Text), rowMarks(raw, opts.Edits, perQ))
	}
	b.WriteString("\n</div>\n</div>")
	return b.String()
}

func renderLongSection(a pattern.Assignment, opts Options) string {
	if len(a.Questions) == 0 {
		return ""
	}
	perQ := a.Section.MarksPerQuestion
	if opts.CustomMarks != nil && opts.CustomMarks.Long > 0 {
		perQ = opts.CustomMarks.Long
	}
	sec := a.Section
	sec.Instruction = fmt.Sprintf("Attempt any %d long questions.", a.EffectiveAttempt)

	var b strings.Builder
	b.WriteString("\n<div data-section=\"long\">")
	b.WriteString(renderSectionBar(sec, a.LiveFormula(perQ)))
	b.WriteString("\n<div class=\"pp-longs\">")
	for i, raw := range a.Questions {
		q := applyEdit(raw, opts.Edits)
		b.WriteString(renderLongItem(sec, q, sec.QNumber+i, rowMarks(raw, opts.Edits, perQ)))
	}
	b.WriteString("\n</div>\n</div>")
	return b.String()
}

func renderLongItem(sec pattern.QuestionSection, q question.Question, displayNum, perQ int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n<div class=\"pp-long-item\" data-qid=\"%s\">", mathtext.EscapeAttr(q.ID))

	if !sec.HasSubParts {
		fmt.Fprintf(&b, "\n<div class=\"pp-long-header\"><span class=\"pp-long-qnum\">Q.%d.</span><span class=\"pp-long-text\">%s</span><span class=\"pp-long-marks\">[%d]</span></div>",
			displayNum, mathtext.Process(q.Text), perQ)
		b.WriteString("\n</div>")
		return b.String()
	}

	fmt.Fprintf(&b, "\n<div class=\"pp-long-header\"><span class=\"pp-long-qnum\">Q.%d.</span><span class=\"pp-long-marks\">[%d]</span></div>",
		displayNum, perQ)

	// Authored (a)/(b) markers pass through verbatim; otherwise the
	// section's configured split synthesizes a theory + numerical part.
	if strings.Contains(q.Text, "(a)") || strings.Contains(q.Text, "(b)") {
		fmt.Fprintf(&b, "\n<div class=\"pp-long-parts\"><div class=\"pp-long-part\"><span class=\"pp-long-part-text\">%s</span></div></div>",
			mathtext.Process(q.Text))
	} else {
		partA, partB := sec.SubPartAMarks, sec.SubPartBMarks
		if partA <= 0 {
			partA = 5
		}
		if partB <= 0 {
			partB = 4
		}
		fmt.Fprintf(&b, `
<div class="pp-long-parts">
<div class="pp-long-part"><span class="pp-long-part-lbl">(a)</span><span class="pp-long-part-text">%s</span><span class="pp-long-part-marks">[%d]</span></div>
<div class="pp-long-part"><span class="pp-long-part-lbl">(b)</span><span class="pp-long-part-text">Solve the related numerical / practical application.</span><span class="pp-long-part-marks">[%d]</span></div>
</div>`,
			mathtext.Process(q.Text), partA, partB)
	}
	b.WriteString("\n</div>")
	return b.String()
}

func renderWritingSection(sec pattern.QuestionSection) string {
	lines := sec.AnswerLines
	if lines <= 0 {
		lines = answerLineCount(sec.TotalMarks)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n<div data-section=\"writing-%d\">", sec.QNumber)
	b.WriteString(renderSectionBar(sec, sec.MarksFormula))
	if sec.WritingPrompt != "" {
		fmt.Fprintf(&b, "\n<div class=\"pp-writing-prompt\">%s</div>", mathtext.EscapeHTML(sec.WritingPrompt))
	}
	b.WriteString("\n<div class=\"pp-lines\">")
	for i := 0; i < lines; i++ {
		b.WriteString(`<div class="pp-line"></div>`)
	}
	b.WriteString("</div>\n</div>")
	return b.String()
}

// answerLineCount sizes a ruled answer block from the section's marks.
func answerLineCount(sectionMarks int) int {
	n := int(math.Ceil(float64(sectionMarks) * 1.8))
	if n > 22 {
		n = 22
	}
	return n
}

// roman renders lowercase roman numerals for short-question numbering.
func roman(n int) string {
	vals := []struct {
		v int
		s string
	}{
		{10, "x"}, {9, "ix"}, {8, "viii"}, {7, "vii"}, {6, "vi"},
		{5, "v"}, {4, "iv"}, {3, "iii"}, {2, "ii"}, {1, "i"},
	}
	var b strings.Builder
	for _, e := range vals {
		for n >= e.v {
			b.WriteString(e.s)
			n -= e.v
		}
	}
	return b.String()
}
