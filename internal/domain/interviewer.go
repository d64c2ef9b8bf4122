package domain

import (
	"context"
	"time"
)

// Interviewer represents an account that creates and owns interview sessions.
type Interviewer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// InterviewerCreate represents interviewer registration data
type InterviewerCreate struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// InterviewerLogin represents login credentials
type InterviewerLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// InterviewerUpdate represents mutable interviewer fields
type InterviewerUpdate struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

// TokenPair represents JWT token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// InterviewerRepository defines the interface for interviewer storage
type InterviewerRepository interface {
	Create(ctx context.Context, interviewer *Interviewer) error
	Get(ctx context.Context, id int64) (*Interviewer, error)
	GetByEmail(ctx context.Context, email string) (*Interviewer, error)
	List(ctx context.Context, limit, offset int) ([]Interviewer, error)
	Update(ctx context.Context, interviewer *Interviewer) error
	Delete(ctx context.Context, id int64) error
}
