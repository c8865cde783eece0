package selection

import (
	"context"

	"go.uber.org/zap"

	"github.com/paperpress/paperpress/internal/question"
)

// Config describes one selection request. Immutable per call.
type Config struct {
	ClassID    string              `json:"class_id"`
	SubjectID  string              `json:"subject_id"`
	ChapterIDs []string            `json:"chapter_ids"`
	MCQCount   int                 `json:"mcq_count"`
	ShortCount int                 `json:"short_count"`
	LongCount  int                 `json:"long_count"`
	Difficulty question.Difficulty `json:"difficulty,omitempty"`
	ExcludeIDs []string            `json:"exclude_ids,omitempty"`
	Seed       int64               `json:"seed,omitempty"` // 0 = non-deterministic
}

// Resolved is the selection output: three disjoint type-homogeneous lists
// plus the sum of the chosen questions' own marks fields.
type Resolved struct {
	MCQs       []question.Question `json:"mcqs"`
	Shorts     []question.Question `json:"shorts"`
	Longs      []question.Question `json:"longs"`
	TotalMarks int                 `json:"total_marks"`
}

// AvailabilityReport is the non-throwing answer to "can this request be
// satisfied". Valid is true iff every type has enough unused questions.
type AvailabilityReport struct {
	Valid     bool                `json:"valid"`
	Available question.TypeCounts `json:"available"`
	Required  question.TypeCounts `json:"required"`
}

// Engine selects papers from a question store. Safe for concurrent use as
// long as callers scope Sessions appropriately.
type Engine struct {
	store question.Store
	log   *zap.Logger
}

func NewEngine(store question.Store, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: store, log: log}
}

// Select picks a non-duplicating subset of questions for cfg and records
// the chosen IDs in sess. Shortfalls are not errors: each type is capped
// at what the filtered pool holds, and callers that need a guarantee run
// ValidateAvailability first.
func (e *Engine) Select(ctx context.Context, sess *Session, cfg Config) (Resolved, error) {
	pool, err := e.store.Query(ctx, cfg.ClassID, cfg.SubjectID, cfg.ChapterIDs, "")
	if err != nil {
		return Resolved{}, err
	}

	pool = filterPool(pool, sess, cfg, true)
	shuffle(pool, cfg.Seed)

	var res Resolved
	res.MCQs = take(pool, question.TypeMCQ, cfg.MCQCount)
	res.Shorts = take(pool, question.TypeShort, cfg.ShortCount)
	res.Longs = take(pool, question.TypeLong, cfg.LongCount)

	for _, qs := range [][]question.Question{res.MCQs, res.Shorts, res.Longs} {
		for _, q := range qs {
			sess.MarkUsed(q.ID)
			res.TotalMarks += q.Marks
		}
	}

	e.log.Debug("questions selected",
		zap.String("class_id", cfg.ClassID),
		zap.String("subject_id", cfg.SubjectID),
		zap.Int("mcqs", len(res.MCQs)),
		zap.Int("shorts", len(res.Shorts)),
		zap.Int("longs", len(res.Longs)),
		zap.Int("total_marks", res.TotalMarks))
	return res, nil
}

// ValidateAvailability reports per-type pool depth for cfg without
// touching the session. The difficulty filter is intentionally not
// applied here; availability is about the raw chapter pool minus used
// and explicitly excluded IDs.
func (e *Engine) ValidateAvailability(ctx context.Context, sess *Session, cfg Config) (AvailabilityReport, error) {
	pool, err := e.store.Query(ctx, cfg.ClassID, cfg.SubjectID, cfg.ChapterIDs, "")
	if err != nil {
		return AvailabilityReport{}, err
	}
	pool = filterPool(pool, sess, cfg, false)

	var rep AvailabilityReport
	for _, q := range pool {
		switch q.Type {
		case question.TypeMCQ:
			rep.Available.MCQ++
		case question.TypeShort:
			rep.Available.Short++
		case question.TypeLong:
			rep.Available.Long++
		}
	}
	rep.Required = question.TypeCounts{MCQ: cfg.MCQCount, Short: cfg.ShortCount, Long: cfg.LongCount}
	rep.Valid = rep.Available.MCQ >= rep.Required.MCQ &&
		rep.Available.Short >= rep.Required.Short &&
		rep.Available.Long >= rep.Required.Long
	return rep, nil
}

// filterPool applies, in order: difficulty (selection only), the explicit
// exclusion list, and the session's used-ID set.
func filterPool(pool []question.Question, sess *Session, cfg Config, withDifficulty bool) []question.Question {
	exclude := map[string]bool{}
	for _, id := range cfg.ExcludeIDs {
		exclude[id] = true
	}
	out := pool[:0]
	for _, q := range pool {
		if withDifficulty && cfg.Difficulty != "" && q.Difficulty != cfg.Difficulty {
			continue
		}
		if exclude[q.ID] || sess.Used(q.ID) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func take(pool []question.Question, typ question.Type, count int) []question.Question {
	var out []question.Question
	for _, q := range pool {
		if len(out) >= count {
			break
		}
		if q.Type == typ {
			out = append(out, q)
		}
	}
	return out
}
