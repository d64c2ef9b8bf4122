package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// SessionRepository implements domain.SessionRepository
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{pool: db.Pool}
}

const sessionColumns = `
	id, token, interviewer_id, student_id, title, COALESCE(description, ''),
	duration_minutes, status, scheduled_at, started_at, ended_at, created_at, updated_at
`

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(
		&s.ID,
		&s.Token,
		&s.InterviewerID,
		&s.StudentID,
		&s.Title,
		&s.Description,
		&s.DurationMinutes,
		&s.Status,
		&s.ScheduledAt,
		&s.StartedAt,
		&s.EndedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO interview_sessions
			(token, interviewer_id, student_id, title, description, duration_minutes, status, scheduled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		session.Token,
		session.InterviewerID,
		session.StudentID,
		session.Title,
		session.Description,
		session.DurationMinutes,
		session.Status,
		session.ScheduledAt,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	return mapError(err, "failed to create session")
}

func (r *SessionRepository) Get(ctx context.Context, id int64) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM interview_sessions WHERE id = $1`
	s, err := scanSession(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "failed to get session")
	}
	return s, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token uuid.UUID) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM interview_sessions WHERE token = $1`
	s, err := scanSession(r.pool.QueryRow(ctx, query, token))
	if err != nil {
		return nil, mapError(err, "failed to get session by token")
	}
	return s, nil
}

func (r *SessionRepository) List(ctx context.Context, limit, offset int) ([]domain.SessionSummary, error) {
	query := `
		SELECT s.id, s.token, i.name, st.name, s.title, s.duration_minutes,
			s.status, s.scheduled_at, s.created_at,
			(SELECT COUNT(*) FROM questions q WHERE q.session_id = s.id)
		FROM interview_sessions s
		JOIN interviewers i ON i.id = s.interviewer_id
		JOIN students st ON st.id = s.student_id
		ORDER BY s.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to list sessions")
	}
	defer rows.Close()

	var sessions []domain.SessionSummary
	for rows.Next() {
		var s domain.SessionSummary
		if err := rows.Scan(
			&s.ID,
			&s.Token,
			&s.InterviewerName,
			&s.StudentName,
			&s.Title,
			&s.DurationMinutes,
			&s.Status,
			&s.ScheduledAt,
			&s.CreatedAt,
			&s.QuestionCount,
		); err != nil {
			return nil, mapError(err, "failed to scan session")
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *SessionRepository) Update(ctx context.Context, session *domain.Session) error {
	query := `
		UPDATE interview_sessions
		SET title = $1, description = $2, duration_minutes = $3, status = $4,
			scheduled_at = $5, started_at = $6, ended_at = $7, updated_at = now()
		WHERE id = $8
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		session.Title,
		session.Description,
		session.DurationMinutes,
		session.Status,
		session.ScheduledAt,
		session.StartedAt,
		session.EndedAt,
		session.ID,
	).Scan(&session.UpdatedAt)
	return mapError(err, "failed to update session")
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM interview_sessions WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "failed to delete session")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to delete session")
	}
	return nil
}
