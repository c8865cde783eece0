package question

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SQLStore serves questions from the shared relational bank. Works against
// both sqlite (offline) and postgres (server) drivers.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Query(ctx context.Context, classID, subjectID string, chapterIDs []string, typ Type) ([]Question, error) {
	var b strings.Builder
	b.WriteString(`SELECT id,class_id,subject_id,chapter_id,type,difficulty,marks,question_text,
		option_a,option_b,option_c,option_d,correct_option,answer_text,topic
		FROM questions WHERE class_id=$1 AND subject_id=$2`)
	args := []interface{}{classID, strings.ToLower(subjectID)}

	if len(chapterIDs) > 0 {
		placeholders := make([]string, len(chapterIDs))
		for i, ch := range chapterIDs {
			args = append(args, ch)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		fmt.Fprintf(&b, " AND chapter_id IN (%s)", strings.Join(placeholders, ","))
	}
	if typ != "" {
		args = append(args, string(typ))
		fmt.Fprintf(&b, " AND type=$%d", len(args))
	}
	b.WriteString(" ORDER BY id")

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		var optA, optB, optC, optD, answer, topic sql.NullString
		var correct sql.NullInt64
		if err := rows.Scan(&q.ID, &q.ClassID, &q.SubjectID, &q.ChapterID, &q.Type, &q.Difficulty, &q.Marks,
			&q.Text, &optA, &optB, &optC, &optD, &correct, &answer, &topic); err != nil {
			return nil, err
		}
		q.Options = [4]string{optA.String, optB.String, optC.String, optD.String}
		q.CorrectOption = int(correct.Int64)
		q.AnswerText = answer.String
		q.Topic = topic.String
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) ChapterStats(ctx context.Context, classID, subjectID string) (map[string]TypeCounts, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT chapter_id,type,COUNT(*) FROM questions WHERE class_id=$1 AND subject_id=$2 GROUP BY chapter_id,type`,
		classID, strings.ToLower(subjectID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := map[string]TypeCounts{}
	for rows.Next() {
		var chapter string
		var typ Type
		var n int
		if err := rows.Scan(&chapter, &typ, &n); err != nil {
			return nil, err
		}
		c := stats[chapter]
		switch typ {
		case TypeMCQ:
			c.MCQ = n
		case TypeShort:
			c.Short = n
		case TypeLong:
			c.Long = n
		}
		stats[chapter] = c
	}
	return stats, rows.Err()
}

// Upsert writes a question into the bank. Used by the seeder and content
// import tooling; the assembly engine itself only reads.
func (s *SQLStore) Upsert(ctx context.Context, q Question) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO questions
		(id,class_id,subject_id,chapter_id,type,difficulty,marks,question_text,
		 option_a,option_b,option_c,option_d,correct_option,answer_text,topic)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET
		 chapter_id=EXCLUDED.chapter_id, type=EXCLUDED.type, difficulty=EXCLUDED.difficulty,
		 marks=EXCLUDED.marks, question_text=EXCLUDED.question_text,
		 option_a=EXCLUDED.option_a, option_b=EXCLUDED.option_b,
		 option_c=EXCLUDED.option_c, option_d=EXCLUDED.option_d,
		 correct_option=EXCLUDED.correct_option, answer_text=EXCLUDED.answer_text,
		 topic=EXCLUDED.topic`,
		q.ID, q.ClassID, strings.ToLower(q.SubjectID), q.ChapterID, string(q.Type), string(q.Difficulty), q.Marks, q.Text,
		q.Options[0], q.Options[1], q.Options[2], q.Options[3], q.CorrectOption, q.AnswerText, q.Topic)
	return err
}
