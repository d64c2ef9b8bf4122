package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// StudentRepository implements domain.StudentRepository
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{pool: db.Pool}
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (name, email)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, student.Name, student.Email).
		Scan(&student.ID, &student.CreatedAt)
	return mapError(err, "failed to create student")
}

func (r *StudentRepository) Get(ctx context.Context, id int64) (*domain.Student, error) {
	query := `
		SELECT id, name, email, created_at
		FROM students
		WHERE id = $1
	`
	var s domain.Student
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email, &s.CreatedAt)
	if err != nil {
		return nil, mapError(err, "failed to get student")
	}
	return &s, nil
}

func (r *StudentRepository) List(ctx context.Context, limit, offset int) ([]domain.Student, error) {
	query := `
		SELECT id, name, email, created_at
		FROM students
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to list students")
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.CreatedAt); err != nil {
			return nil, mapError(err, "failed to scan student")
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *StudentRepository) Update(ctx context.Context, student *domain.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2
		WHERE id = $3
	`
	tag, err := r.pool.Exec(ctx, query, student.Name, student.Email, student.ID)
	if err != nil {
		return mapError(err, "failed to update student")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to update student")
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "failed to delete student")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to delete student")
	}
	return nil
}
