package question

// Type classifies a question by how it is answered and laid out.
type Type string

const (
	TypeMCQ   Type = "mcq"
	TypeShort Type = "short"
	TypeLong  Type = "long"
)

// Difficulty buckets used by the selection filter.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is an immutable content record from the bank. The engine never
// mutates questions; edits are applied as overlays at render time.
type Question struct {
	ID            string     `json:"id"`
	ClassID       string     `json:"class_id"`
	SubjectID     string     `json:"subject_id"`
	ChapterID     string     `json:"chapter_id"`
	Type          Type       `json:"type"`
	Difficulty    Difficulty `json:"difficulty"`
	Marks         int        `json:"marks"`
	Text          string     `json:"text"`
	Options       [4]string  `json:"options,omitempty"`        // mcq only
	CorrectOption int        `json:"correct_option,omitempty"` // index into Options
	AnswerText    string     `json:"answer_text,omitempty"`
	Topic         string     `json:"topic,omitempty"`
}

// TypeCounts holds per-type question tallies for a chapter or pool.
type TypeCounts struct {
	MCQ   int `json:"mcq"`
	Short int `json:"short"`
	Long  int `json:"long"`
}

func (c *TypeCounts) add(t Type) {
	switch t {
	case TypeMCQ:
		c.MCQ++
	case TypeShort:
		c.Short++
	case TypeLong:
		c.Long++
	}
}
