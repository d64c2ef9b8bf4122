package domain

import (
	"context"
	"time"
)

// Report references a generated PDF artifact for a session. At most one
// exists per session; regeneration replaces the previous reference.
type Report struct {
	ID           int64     `json:"id"`
	SessionID    int64     `json:"-"`
	SessionToken string    `json:"session_id"`
	SessionTitle string    `json:"session_title,omitempty"`
	PDFPath      string    `json:"pdf_file"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// ReportGenerate represents a report generation request
type ReportGenerate struct {
	SessionToken string `json:"session_id" validate:"required,uuid"`
}

// ReportRepository defines the interface for report storage
type ReportRepository interface {
	// Upsert inserts the report or replaces the existing one for the session.
	Upsert(ctx context.Context, report *Report) error
	Get(ctx context.Context, id int64) (*Report, error)
	GetBySession(ctx context.Context, sessionID int64) (*Report, error)
	List(ctx context.Context, limit, offset int) ([]Report, error)
	Delete(ctx context.Context, id int64) error
}
