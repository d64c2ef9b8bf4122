package domain

import (
	"context"
	"time"
)

// Speaker identifies who produced a transcript entry
type Speaker string

const (
	SpeakerAI      Speaker = "ai"
	SpeakerStudent Speaker = "student"
)

// TranscriptEntry is one timestamped, speaker-attributed utterance in a
// session. Entries are append-only: the repository interface deliberately
// exposes no update or delete.
type TranscriptEntry struct {
	ID           int64     `json:"id"`
	SessionID    int64     `json:"-"`
	SessionToken string    `json:"session_id"`
	QuestionID   *int64    `json:"question_id,omitempty"`
	Speaker      Speaker   `json:"speaker"`
	Message      string    `json:"message"`
	AudioPath    string    `json:"audio_file,omitempty"`
	CreatedAt    time.Time `json:"timestamp"`
}

// TranscriptEntryCreate represents a transcript append request
type TranscriptEntryCreate struct {
	SessionToken string `json:"session_id" validate:"required,uuid"`
	QuestionID   *int64 `json:"question_id"`
	Speaker      string `json:"speaker" validate:"required,oneof=ai student"`
	Message      string `json:"message" validate:"required"`
}

// TranscriptRepository defines the append-only interface for transcript storage
type TranscriptRepository interface {
	Append(ctx context.Context, entry *TranscriptEntry) error
	// ListBySession returns entries in ascending timestamp order.
	ListBySession(ctx context.Context, sessionID int64) ([]TranscriptEntry, error)
	// Tail returns the most recent limit entries, ascending.
	Tail(ctx context.Context, sessionID int64, limit int) ([]TranscriptEntry, error)
	CountBySpeaker(ctx context.Context, sessionID int64, speaker Speaker) (int, error)
}
