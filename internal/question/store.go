package question

import "context"

// Store is the query capability the assembly engine needs from a question
// bank. typ == "" returns all types. Implementations filter best-effort;
// callers apply their own difficulty/exclusion filtering on top.
//
// Subject IDs are stored as the plain lower-cased subject name ("physics",
// never "9th_physics") and matched case-insensitively, so questions loaded
// through one backend stay reachable through any other.
type Store interface {
	Query(ctx context.Context, classID, subjectID string, chapterIDs []string, typ Type) ([]Question, error)
	ChapterStats(ctx context.Context, classID, subjectID string) (map[string]TypeCounts, error)
}
