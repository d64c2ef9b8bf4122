package domain

import (
	"context"
	"time"
)

// Difficulty represents question difficulty
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question represents a pre-authored interview question. Ord is the
// caller-supplied position in the interview script, unique per session.
type Question struct {
	ID             int64      `json:"id"`
	SessionID      int64      `json:"-"`
	SessionToken   string     `json:"session_id"`
	Text           string     `json:"question_text"`
	Category       string     `json:"category,omitempty"`
	Difficulty     Difficulty `json:"difficulty"`
	Ord            int        `json:"order"`
	ExpectedAnswer string     `json:"expected_answer,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// QuestionCreate represents question creation data
type QuestionCreate struct {
	SessionToken   string `json:"session_id" validate:"required,uuid"`
	Text           string `json:"question_text" validate:"required"`
	Category       string `json:"category" validate:"omitempty,max=100"`
	Difficulty     string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Ord            int    `json:"order" validate:"required,min=1"`
	ExpectedAnswer string `json:"expected_answer"`
}

// QuestionUpdate represents mutable question fields
type QuestionUpdate struct {
	Text           *string `json:"question_text"`
	Category       *string `json:"category" validate:"omitempty,max=100"`
	Difficulty     *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Ord            *int    `json:"order" validate:"omitempty,min=1"`
	ExpectedAnswer *string `json:"expected_answer"`
}

// QuestionRepository defines the interface for question storage
type QuestionRepository interface {
	Create(ctx context.Context, question *Question) error
	// CreateBulk inserts the whole batch or nothing.
	CreateBulk(ctx context.Context, questions []*Question) error
	Get(ctx context.Context, id int64) (*Question, error)
	ListBySession(ctx context.Context, sessionID int64) ([]Question, error)
	// NextUnanswered returns the lowest-ordinal question beyond the highest
	// ordinal already referenced by an ai-speaker transcript entry, or nil
	// when the script is exhausted.
	NextUnanswered(ctx context.Context, sessionID int64) (*Question, error)
	Update(ctx context.Context, question *Question) error
	Delete(ctx context.Context, id int64) error
}
