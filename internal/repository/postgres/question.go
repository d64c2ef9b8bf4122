package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// QuestionRepository implements domain.QuestionRepository
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *DB) *QuestionRepository {
	return &QuestionRepository{pool: db.Pool}
}

const questionColumns = `
	q.id, q.session_id, s.token::text, q.question_text, COALESCE(q.category, ''),
	q.difficulty, q.ord, COALESCE(q.expected_answer, ''), q.created_at
`

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var q domain.Question
	err := row.Scan(
		&q.ID,
		&q.SessionID,
		&q.SessionToken,
		&q.Text,
		&q.Category,
		&q.Difficulty,
		&q.Ord,
		&q.ExpectedAnswer,
		&q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (session_id, question_text, category, difficulty, ord, expected_answer)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		question.SessionID,
		question.Text,
		question.Category,
		question.Difficulty,
		question.Ord,
		question.ExpectedAnswer,
	).Scan(&question.ID, &question.CreatedAt)
	return mapError(err, "failed to create question")
}

// CreateBulk inserts the batch inside one transaction, so an ordinal
// conflict anywhere in it leaves no partial script behind.
func (r *QuestionRepository) CreateBulk(ctx context.Context, questions []*domain.Question) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err, "failed to begin question batch")
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO questions (session_id, question_text, category, difficulty, ord, expected_answer)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
		RETURNING id, created_at
	`
	for _, question := range questions {
		err := tx.QueryRow(ctx, query,
			question.SessionID,
			question.Text,
			question.Category,
			question.Difficulty,
			question.Ord,
			question.ExpectedAnswer,
		).Scan(&question.ID, &question.CreatedAt)
		if err != nil {
			return mapError(err, "failed to create question")
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError(err, "failed to commit question batch")
	}
	return nil
}

func (r *QuestionRepository) Get(ctx context.Context, id int64) (*domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN interview_sessions s ON s.id = q.session_id
		WHERE q.id = $1
	`
	q, err := scanQuestion(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "failed to get question")
	}
	return q, nil
}

func (r *QuestionRepository) ListBySession(ctx context.Context, sessionID int64) ([]domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN interview_sessions s ON s.id = q.session_id
		WHERE q.session_id = $1
		ORDER BY q.ord, q.created_at
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, mapError(err, "failed to list questions")
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan question")
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// NextUnanswered returns the lowest-ordinal question past the question-cursor,
// where the cursor is the highest ordinal already referenced by an ai-speaker
// transcript entry. Exhausted (or empty) scripts yield nil, nil.
func (r *QuestionRepository) NextUnanswered(ctx context.Context, sessionID int64) (*domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN interview_sessions s ON s.id = q.session_id
		WHERE q.session_id = $1
		  AND q.ord > COALESCE((
			SELECT MAX(q2.ord)
			FROM transcript_entries t
			JOIN questions q2 ON q2.id = t.question_id
			WHERE t.session_id = $1 AND t.speaker = 'ai'
		  ), -1)
		ORDER BY q.ord, q.created_at
		LIMIT 1
	`
	q, err := scanQuestion(r.pool.QueryRow(ctx, query, sessionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, "failed to get next question")
	}
	return q, nil
}

func (r *QuestionRepository) Update(ctx context.Context, question *domain.Question) error {
	query := `
		UPDATE questions
		SET question_text = $1, category = NULLIF($2, ''), difficulty = $3,
			ord = $4, expected_answer = NULLIF($5, '')
		WHERE id = $6
	`
	tag, err := r.pool.Exec(ctx, query,
		question.Text,
		question.Category,
		question.Difficulty,
		question.Ord,
		question.ExpectedAnswer,
		question.ID,
	)
	if err != nil {
		return mapError(err, "failed to update question")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to update question")
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "failed to delete question")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to delete question")
	}
	return nil
}
