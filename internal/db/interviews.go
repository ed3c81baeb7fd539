package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ai-interviewer/internal/types"
)

const interviewColumns = `id, phone, candidate_name, job, resume, questions,
	answers, scores, feedback, created_at, completed_at`

// CreateInterview persists a new interview session. A zero ID is replaced
// with a fresh UUID and a zero CreatedAt with the current time; both are
// written back to the passed record.
func (db *DB) CreateInterview(ctx context.Context, interview *types.Interview) error {
	if interview.ID == uuid.Nil {
		interview.ID = uuid.New()
	}
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = time.Now().UTC()
	}

	jobJSON, err := json.Marshal(interview.Job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	questionsJSON, err := json.Marshal(interview.Questions)
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}
	resumeJSON, err := marshalNullable(interview.Resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO interviews (id, phone, candidate_name, job, resume, questions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		interview.ID, interview.Phone, interview.CandidateName,
		jobJSON, resumeJSON, questionsJSON, interview.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

// GetInterviewByID fetches a single interview. Returns (nil, nil) when no
// interview exists with the given ID.
func (db *DB) GetInterviewByID(ctx context.Context, id uuid.UUID) (*types.Interview, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id)

	interview, err := scanInterview(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return interview, nil
}

// SaveAnswers stores the candidate's answers for an in-progress interview
// without marking it completed.
func (db *DB) SaveAnswers(ctx context.Context, id uuid.UUID, answers []types.Answer) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE interviews SET answers = $1 WHERE id = $2`, answersJSON, id)
	if err != nil {
		return fmt.Errorf("failed to save answers: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("interview %s not found", id)
	}
	return nil
}

// SaveResults stores the final answers, scores, and feedback and stamps the
// interview as completed.
func (db *DB) SaveResults(ctx context.Context, id uuid.UUID, answers []types.Answer, scores types.ScoreSet, feedback types.Feedback) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	feedbackJSON, err := json.Marshal(feedback)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE interviews
		 SET answers = $1, scores = $2, feedback = $3, completed_at = NOW()
		 WHERE id = $4`,
		answersJSON, scoresJSON, feedbackJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("interview %s not found", id)
	}
	return nil
}

// ListInterviewsByPhone returns all interviews for a candidate phone number,
// most recent first.
func (db *DB) ListInterviewsByPhone(ctx context.Context, phone string) ([]*types.Interview, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+interviewColumns+` FROM interviews
		 WHERE phone = $1 ORDER BY created_at DESC`, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []*types.Interview
	for rows.Next() {
		interview, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, interview)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

// AverageOverallScore returns the mean overall score across a candidate's
// completed interviews and the number of interviews included. A candidate
// with no completed interviews yields (0, 0, nil).
func (db *DB) AverageOverallScore(ctx context.Context, phone string) (float64, int, error) {
	var avg *float64
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT AVG((scores->>'overall')::numeric), COUNT(*)
		 FROM interviews
		 WHERE phone = $1 AND completed_at IS NOT NULL`, phone,
	).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to average scores: %w", err)
	}
	if avg == nil {
		return 0, 0, nil
	}
	return *avg, count, nil
}

// scanInterview decodes one interviews row. Both pgx.Row and pgx.Rows
// satisfy the argument.
func scanInterview(row pgx.Row) (*types.Interview, error) {
	var (
		interview     types.Interview
		jobJSON       []byte
		resumeJSON    []byte
		questionsJSON []byte
		answersJSON   []byte
		scoresJSON    []byte
		feedbackJSON  []byte
	)

	err := row.Scan(
		&interview.ID, &interview.Phone, &interview.CandidateName,
		&jobJSON, &resumeJSON, &questionsJSON,
		&answersJSON, &scoresJSON, &feedbackJSON,
		&interview.CreatedAt, &interview.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jobJSON, &interview.Job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	if err := json.Unmarshal(questionsJSON, &interview.Questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}
	if err := unmarshalNullable(resumeJSON, &interview.Resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	if err := unmarshalNullable(answersJSON, &interview.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}
	if err := unmarshalNullable(scoresJSON, &interview.Scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	if err := unmarshalNullable(feedbackJSON, &interview.Feedback); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feedback: %w", err)
	}
	return &interview, nil
}

// marshalNullable maps a nil pointer to a SQL NULL instead of the JSON
// literal "null".
func marshalNullable[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalNullable(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
