package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of an interview session
type SessionStatus string

const (
	StatusScheduled  SessionStatus = "scheduled"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusCancelled  SessionStatus = "cancelled"
)

// Session represents an interview session. ID is the internal storage key;
// Token is the opaque identifier exposed on the wire.
type Session struct {
	ID              int64         `json:"id"`
	Token           uuid.UUID     `json:"session_id"`
	InterviewerID   int64         `json:"interviewer_id"`
	StudentID       int64         `json:"student_id"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          SessionStatus `json:"status"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	StartedAt       *time.Time    `json:"started_at,omitempty"`
	EndedAt         *time.Time    `json:"ended_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// SessionCreate represents session creation data
type SessionCreate struct {
	InterviewerID   int64     `json:"interviewer_id" validate:"required"`
	StudentID       int64     `json:"student_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=300"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=1,max=480"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
}

// SessionUpdate represents mutable session metadata. Status is not here on
// purpose: transitions go through Start/End/Cancel only.
type SessionUpdate struct {
	Title           *string    `json:"title" validate:"omitempty,max=300"`
	Description     *string    `json:"description"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=1,max=480"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
}

// SessionSummary is the trimmed shape used by list endpoints
type SessionSummary struct {
	ID              int64         `json:"id"`
	Token           uuid.UUID     `json:"session_id"`
	InterviewerName string        `json:"interviewer_name"`
	StudentName     string        `json:"student_name"`
	Title           string        `json:"title"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          SessionStatus `json:"status"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	CreatedAt       time.Time     `json:"created_at"`
	QuestionCount   int           `json:"question_count"`
}

// CanTransitionTo reports whether the status change is allowed. Transitions
// are one-directional: a completed or cancelled session never comes back.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	switch next {
	case StatusInProgress:
		return s == StatusScheduled
	case StatusCompleted:
		return s == StatusInProgress
	case StatusCancelled:
		return s == StatusScheduled || s == StatusInProgress
	default:
		return false
	}
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, id int64) (*Session, error)
	GetByToken(ctx context.Context, token uuid.UUID) (*Session, error)
	List(ctx context.Context, limit, offset int) ([]SessionSummary, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id int64) error
}
