package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/report"
	"github.com/rs/zerolog/log"
)

// ReportService generates and manages session PDF reports. Generation is
// all-or-nothing: the database row is only written after the PDF has been
// rendered and stored, and regeneration replaces the previous report.
type ReportService struct {
	reports      domain.ReportRepository
	sessions     domain.SessionRepository
	interviewers domain.InterviewerRepository
	students     domain.StudentRepository
	questions    domain.QuestionRepository
	transcripts  domain.TranscriptRepository
	reportDir    string
}

// NewReportService creates a new report service
func NewReportService(
	reports domain.ReportRepository,
	sessions domain.SessionRepository,
	interviewers domain.InterviewerRepository,
	students domain.StudentRepository,
	questions domain.QuestionRepository,
	transcripts domain.TranscriptRepository,
	reportDir string,
) *ReportService {
	return &ReportService{
		reports:      reports,
		sessions:     sessions,
		interviewers: interviewers,
		students:     students,
		questions:    questions,
		transcripts:  transcripts,
		reportDir:    reportDir,
	}
}

// Generate renders the PDF for a session and records it. Calling it again
// for the same session overwrites the file and replaces the stored row.
func (s *ReportService) Generate(ctx context.Context, req domain.ReportGenerate) (*domain.Report, error) {
	token, err := uuid.Parse(req.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", req.SessionToken, domain.ErrValidation)
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	interviewer, err := s.interviewers.Get(ctx, session.InterviewerID)
	if err != nil {
		return nil, err
	}
	student, err := s.students.Get(ctx, session.StudentID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questions.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	transcript, err := s.transcripts.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := report.Render(report.Data{
		Session:     session,
		Interviewer: interviewer,
		Student:     student,
		Questions:   questions,
		Transcript:  transcript,
	})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	path := filepath.Join(s.reportDir, fmt.Sprintf("interview_report_%s.pdf", session.Token))
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store report pdf: %w", err)
	}

	rep := &domain.Report{
		SessionID:    session.ID,
		SessionToken: session.Token.String(),
		SessionTitle: session.Title,
		PDFPath:      path,
		GeneratedAt:  time.Now(),
	}
	if err := s.reports.Upsert(ctx, rep); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_token", session.Token.String()).
		Str("path", path).
		Int("bytes", len(pdfBytes)).
		Msg("report generated")
	return rep, nil
}

func (s *ReportService) Get(ctx context.Context, id int64) (*domain.Report, error) {
	return s.reports.Get(ctx, id)
}

// GetBySession looks up the report for a session token
func (s *ReportService) GetBySession(ctx context.Context, sessionToken string) (*domain.Report, error) {
	token, err := uuid.Parse(sessionToken)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", sessionToken, domain.ErrValidation)
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.reports.GetBySession(ctx, session.ID)
}

func (s *ReportService) List(ctx context.Context, limit, offset int) ([]domain.Report, error) {
	return s.reports.List(ctx, normalizeLimit(limit), offset)
}

// Open returns the stored PDF file for download
func (s *ReportService) Open(ctx context.Context, id int64) (*domain.Report, *os.File, error) {
	rep, err := s.reports.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(rep.PDFPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("report file missing on disk: %w", domain.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to open report file: %w", err)
	}
	return rep, f, nil
}

// Delete removes the report row and its PDF file
func (s *ReportService) Delete(ctx context.Context, id int64) error {
	rep, err := s.reports.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reports.Delete(ctx, id); err != nil {
		return err
	}

	if err := os.Remove(rep.PDFPath); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", rep.PDFPath).Msg("failed to remove report file")
	}
	return nil
}
