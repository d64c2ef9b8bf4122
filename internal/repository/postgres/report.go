package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// ReportRepository implements domain.ReportRepository
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{pool: db.Pool}
}

const reportColumns = `
	r.id, r.session_id, s.token::text, s.title, r.pdf_path, r.generated_at
`

func scanReport(row pgx.Row) (*domain.Report, error) {
	var rep domain.Report
	err := row.Scan(
		&rep.ID,
		&rep.SessionID,
		&rep.SessionToken,
		&rep.SessionTitle,
		&rep.PDFPath,
		&rep.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// Upsert inserts the report row or, when one already exists for the session,
// replaces its artifact reference and generation time.
func (r *ReportRepository) Upsert(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO interview_reports (session_id, pdf_path, generated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id)
		DO UPDATE SET pdf_path = EXCLUDED.pdf_path, generated_at = EXCLUDED.generated_at
		RETURNING id, generated_at
	`
	err := r.pool.QueryRow(ctx, query, report.SessionID, report.PDFPath).
		Scan(&report.ID, &report.GeneratedAt)
	return mapError(err, "failed to upsert report")
}

func (r *ReportRepository) Get(ctx context.Context, id int64) (*domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM interview_reports r
		JOIN interview_sessions s ON s.id = r.session_id
		WHERE r.id = $1
	`
	rep, err := scanReport(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "failed to get report")
	}
	return rep, nil
}

func (r *ReportRepository) GetBySession(ctx context.Context, sessionID int64) (*domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM interview_reports r
		JOIN interview_sessions s ON s.id = r.session_id
		WHERE r.session_id = $1
	`
	rep, err := scanReport(r.pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		return nil, mapError(err, "failed to get report by session")
	}
	return rep, nil
}

func (r *ReportRepository) List(ctx context.Context, limit, offset int) ([]domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM interview_reports r
		JOIN interview_sessions s ON s.id = r.session_id
		ORDER BY r.generated_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to list reports")
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan report")
		}
		reports = append(reports, *rep)
	}
	return reports, rows.Err()
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM interview_reports WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "failed to delete report")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "failed to delete report")
	}
	return nil
}
