package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// TranscriptRepository implements domain.TranscriptRepository. The table
// permits updates; append-only is enforced here by simply not exposing them.
type TranscriptRepository struct {
	pool *pgxpool.Pool
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *DB) *TranscriptRepository {
	return &TranscriptRepository{pool: db.Pool}
}

const entryColumns = `
	t.id, t.session_id, s.token::text, t.question_id, t.speaker, t.message,
	COALESCE(t.audio_path, ''), t.created_at
`

func scanEntry(row pgx.Row) (*domain.TranscriptEntry, error) {
	var e domain.TranscriptEntry
	err := row.Scan(
		&e.ID,
		&e.SessionID,
		&e.SessionToken,
		&e.QuestionID,
		&e.Speaker,
		&e.Message,
		&e.AudioPath,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *TranscriptRepository) Append(ctx context.Context, entry *domain.TranscriptEntry) error {
	query := `
		INSERT INTO transcript_entries (session_id, question_id, speaker, message, audio_path)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		entry.SessionID,
		entry.QuestionID,
		entry.Speaker,
		entry.Message,
		entry.AudioPath,
	).Scan(&entry.ID, &entry.CreatedAt)
	return mapError(err, "failed to append transcript entry")
}

func (r *TranscriptRepository) ListBySession(ctx context.Context, sessionID int64) ([]domain.TranscriptEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM transcript_entries t
		JOIN interview_sessions s ON s.id = t.session_id
		WHERE t.session_id = $1
		ORDER BY t.created_at, t.id
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, mapError(err, "failed to list transcript entries")
	}
	defer rows.Close()

	var entries []domain.TranscriptEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan transcript entry")
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Tail returns the latest limit entries in chronological order.
func (r *TranscriptRepository) Tail(ctx context.Context, sessionID int64, limit int) ([]domain.TranscriptEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM transcript_entries t
		JOIN interview_sessions s ON s.id = t.session_id
		WHERE t.session_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, mapError(err, "failed to tail transcript")
	}
	defer rows.Close()

	var entries []domain.TranscriptEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan transcript entry")
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to chronological order (oldest first)
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (r *TranscriptRepository) CountBySpeaker(ctx context.Context, sessionID int64, speaker domain.Speaker) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM transcript_entries WHERE session_id = $1 AND speaker = $2`,
		sessionID, speaker,
	).Scan(&count)
	if err != nil {
		return 0, mapError(err, "failed to count transcript entries")
	}
	return count, nil
}
