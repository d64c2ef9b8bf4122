package domain

import (
	"context"
	"time"
)

// Student represents a candidate taking interviews
type Student struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// StudentCreate represents student creation data
type StudentCreate struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// StudentUpdate represents mutable student fields
type StudentUpdate struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

// StudentRepository defines the interface for student storage
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	Get(ctx context.Context, id int64) (*Student, error)
	List(ctx context.Context, limit, offset int) ([]Student, error)
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id int64) error
}
