package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// InterviewerRepository implements domain.InterviewerRepository
type InterviewerRepository struct {
	pool *pgxpool.Pool
}

// NewInterviewerRepository creates a new interviewer repository
func NewInterviewerRepository(db *DB) *InterviewerRepository {
	return &InterviewerRepository{pool: db.Pool}
}

func (r *InterviewerRepository) Create(ctx context.Context, interviewer *domain.Interviewer) error {
	query := `
		INSERT INTO interviewers (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		interviewer.Name,
		interviewer.Email,
		interviewer.PasswordHash,
	).Scan(&interviewer.ID, &interviewer.CreatedAt)
	return mapError(err, "failed to create interviewer")
}

func (r *InterviewerRepository) Get(ctx context.Context, id int64) (*domain.Interviewer, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM interviewers
		WHERE id = $1
	`
	var i domain.Interviewer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "failed to get interviewer")
	}
	return &i, nil
}

// GetByEmail returns nil, nil when no interviewer has the email.
func (r *InterviewerRepository) GetByEmail(ctx context.Context, email string) (*domain.Interviewer, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM interviewers
		WHERE email = $1
	`
	var i domain.Interviewer
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, "failed to get interviewer by email")
	}
	return &i, nil
}

func (r *InterviewerRepository) List(ctx context.Context, limit, offset int) ([]domain.Interviewer, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM interviewers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to list interviewers")
	}
	defer rows.Close()

	var interviewers []domain.Interviewer
	for rows.Next() {
		var i domain.Interviewer
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.PasswordHash, &i.CreatedAt); err != nil {
			return nil, mapError(err, "failed to scan interviewer")
		}
		interviewers = append(interviewers, i)
	}
	return interviewers, rows.Err()
}

func (r *InterviewerRepository) Update(ctx context.Context, interviewer *domain.Interviewer) error {
	query := `
		UPDATE interviewers
		SET name = $1, email = $2
		WHERE id = $3
	`
	tag, err := r.pool.Exec(ctx, query, interviewer.Name, interviewer.Email, interviewer.ID)
	if err != nil {
		return mapError(err, "failed to update interviewer")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to update interviewer")
	}
	return nil
}

func (r *InterviewerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM interviewers WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "failed to delete interviewer")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to delete interviewer")
	}
	return nil
}
