package question

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FSStore reads the bank from flat JSON content files, one file per
// (class, subject) at <base>/<classID>/<subject>.json. This is the
// fallback backend for environments without the relational bank.
type FSStore struct {
	base string

	mu    sync.Mutex
	cache map[string][]Question
}

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data/questions"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base, cache: map[string][]Question{}}, nil
}

// contentFile mirrors the authoring format of the flat content files.
type contentFile struct {
	Chapters []struct {
		ID   string `json:"id"`
		MCQs []struct {
			ID            string   `json:"id"`
			QuestionText  string   `json:"questionText"`
			Options       []string `json:"options"`
			CorrectOption int      `json:"correctOption"`
			Difficulty    string   `json:"difficulty"`
			Marks         int      `json:"marks"`
			Topic         string   `json:"topic"`
		} `json:"mcqs"`
		ShortQuestions []contentTextQuestion `json:"shortQuestions"`
		LongQuestions  []contentTextQuestion `json:"longQuestions"`
	} `json:"chapters"`
}

type contentTextQuestion struct {
	ID           string `json:"id"`
	QuestionText string `json:"questionText"`
	Answer       string `json:"answer"`
	Difficulty   string `json:"difficulty"`
	Marks        int    `json:"marks"`
	Topic        string `json:"topic"`
}

func (s *FSStore) load(classID, subjectID string) ([]Question, error) {
	subj := strings.ToLower(subjectID)
	key := classID + "_" + subj

	s.mu.Lock()
	defer s.mu.Unlock()
	if qs, ok := s.cache[key]; ok {
		return qs, nil
	}

	path := filepath.Join(s.base, classID, subj+".json")
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}
	var cf contentFile
	if err := json.Unmarshal(buf, &cf); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}

	var qs []Question
	for _, ch := range cf.Chapters {
		for _, m := range ch.MCQs {
			q := Question{
				ID:            m.ID,
				ClassID:       classID,
				SubjectID:     subj,
				ChapterID:     ch.ID,
				Type:          TypeMCQ,
				Difficulty:    defaultDifficulty(m.Difficulty),
				Marks:         defaultMarks(m.Marks, 1),
				Text:          m.QuestionText,
				CorrectOption: m.CorrectOption,
				Topic:         m.Topic,
			}
			copy(q.Options[:], m.Options)
			qs = append(qs, q)
		}
		for _, t := range ch.ShortQuestions {
			qs = append(qs, textQuestion(t, classID, subj, ch.ID, TypeShort, 2))
		}
		for _, t := range ch.LongQuestions {
			qs = append(qs, textQuestion(t, classID, subj, ch.ID, TypeLong, 9))
		}
	}
	s.cache[key] = qs
	return qs, nil
}

func textQuestion(t contentTextQuestion, classID, subjectID, chapterID string, typ Type, defMarks int) Question {
	return Question{
		ID:         t.ID,
		ClassID:    classID,
		SubjectID:  subjectID,
		ChapterID:  chapterID,
		Type:       typ,
		Difficulty: defaultDifficulty(t.Difficulty),
		Marks:      defaultMarks(t.Marks, defMarks),
		Text:       t.QuestionText,
		AnswerText: t.Answer,
		Topic:      t.Topic,
	}
}

func defaultDifficulty(d string) Difficulty {
	if d == "" {
		return DifficultyMedium
	}
	return Difficulty(d)
}

func defaultMarks(m, def int) int {
	if m <= 0 {
		return def
	}
	return m
}

func (s *FSStore) Query(ctx context.Context, classID, subjectID string, chapterIDs []string, typ Type) ([]Question, error) {
	all, err := s.load(classID, subjectID)
	if err != nil {
		return nil, err
	}
	wantChapter := map[string]bool{}
	for _, ch := range chapterIDs {
		wantChapter[ch] = true
	}
	var out []Question
	for _, q := range all {
		if len(wantChapter) > 0 && !wantChapter[q.ChapterID] {
			continue
		}
		if typ != "" && q.Type != typ {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *FSStore) ChapterStats(ctx context.Context, classID, subjectID string) (map[string]TypeCounts, error) {
	all, err := s.load(classID, subjectID)
	if err != nil {
		return nil, err
	}
	stats := map[string]TypeCounts{}
	for _, q := range all {
		c := stats[q.ChapterID]
		c.add(q.Type)
		stats[q.ChapterID] = c
	}
	return stats, nil
}
