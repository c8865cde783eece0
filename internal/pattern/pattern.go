package pattern

import "fmt"

// SectionType matches question.Type for the content-bearing sections and
// adds the free-text writing/translation kind.
type SectionType string

const (
	SectionMCQ     SectionType = "mcq"
	SectionShort   SectionType = "short"
	SectionLong    SectionType = "long"
	SectionWriting SectionType = "writing"
)

// QuestionSection is one numbered block of an exam pattern.
// For mcq/short/long sections TotalMarks = AttemptCount × MarksPerQuestion
// unless the board declares an explicit override; writing sections always
// have TotalQuestions = AttemptCount = 1 per prompt.
type QuestionSection struct {
	QNumber          int         `json:"q_number"`
	Title            string      `json:"title"`
	Instruction      string      `json:"instruction"`
	MarksFormula     string      `json:"marks_formula"`
	TotalMarks       int         `json:"total_marks"`
	TotalQuestions   int         `json:"total_questions"`
	AttemptCount     int         `json:"attempt_count"`
	MarksPerQuestion int         `json:"marks_per_question"`
	Type             SectionType `json:"type"`
	HasSubParts      bool        `json:"has_sub_parts,omitempty"`
	SubPartAMarks    int         `json:"sub_part_a_marks,omitempty"`
	SubPartBMarks    int         `json:"sub_part_b_marks,omitempty"`
	SpecialNote      string      `json:"special_note,omitempty"`
	WritingPrompt    string      `json:"writing_prompt,omitempty"`
	AnswerLines      int         `json:"answer_lines,omitempty"`
}

// Formula renders the live marks line for an attempt/per-question pair.
func Formula(attemptCount, marksPerQuestion int) string {
	return fmt.Sprintf("%d × %d = %d", attemptCount, marksPerQuestion, attemptCount*marksPerQuestion)
}

// PaperPattern is the board-specific structure of one exam paper.
type PaperPattern struct {
	ClassGroup  string            `json:"class_group"` // matric | intermediate | generic
	Subject     string            `json:"subject"`
	TotalMarks  int               `json:"total_marks"`
	TimeAllowed string            `json:"time_allowed"`
	Sections    []QuestionSection `json:"sections"`
}

// SectionsOfType returns the pattern's sections of one type in Q-number order.
func (p PaperPattern) SectionsOfType(t SectionType) []QuestionSection {
	var out []QuestionSection
	for _, s := range p.Sections {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}
