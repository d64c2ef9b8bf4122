package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/rs/zerolog/log"
)

// SessionService handles interview session lifecycle management
type SessionService struct {
	sessions     domain.SessionRepository
	interviewers domain.InterviewerRepository
	students     domain.StudentRepository
}

// NewSessionService creates a new session service
func NewSessionService(
	sessions domain.SessionRepository,
	interviewers domain.InterviewerRepository,
	students domain.StudentRepository,
) *SessionService {
	return &SessionService{
		sessions:     sessions,
		interviewers: interviewers,
		students:     students,
	}
}

// Create schedules a new interview session
func (s *SessionService) Create(ctx context.Context, req domain.SessionCreate) (*domain.Session, error) {
	if _, err := s.interviewers.Get(ctx, req.InterviewerID); err != nil {
		return nil, fmt.Errorf("interviewer %d: %w", req.InterviewerID, err)
	}
	if _, err := s.students.Get(ctx, req.StudentID); err != nil {
		return nil, fmt.Errorf("student %d: %w", req.StudentID, err)
	}

	session := &domain.Session{
		Token:           uuid.New(),
		InterviewerID:   req.InterviewerID,
		StudentID:       req.StudentID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Status:          domain.StatusScheduled,
		ScheduledAt:     req.ScheduledAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	log.Info().
		Int64("session_id", session.ID).
		Str("session_token", session.Token.String()).
		Str("title", session.Title).
		Msg("session scheduled")
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id int64) (*domain.Session, error) {
	return s.sessions.Get(ctx, id)
}

func (s *SessionService) GetByToken(ctx context.Context, token uuid.UUID) (*domain.Session, error) {
	return s.sessions.GetByToken(ctx, token)
}

func (s *SessionService) List(ctx context.Context, limit, offset int) ([]domain.SessionSummary, error) {
	return s.sessions.List(ctx, normalizeLimit(limit), offset)
}

// Update modifies session metadata. Status is untouched here.
func (s *SessionService) Update(ctx context.Context, id int64, req domain.SessionUpdate) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		session.Title = *req.Title
	}
	if req.Description != nil {
		session.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		session.DurationMinutes = *req.DurationMinutes
	}
	if req.ScheduledAt != nil {
		session.ScheduledAt = *req.ScheduledAt
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id int64) error {
	return s.sessions.Delete(ctx, id)
}

// Start moves a scheduled session into progress
func (s *SessionService) Start(ctx context.Context, id int64) (*domain.Session, error) {
	return s.transition(ctx, id, domain.StatusInProgress)
}

// End marks an in-progress session as completed
func (s *SessionService) End(ctx context.Context, id int64) (*domain.Session, error) {
	return s.transition(ctx, id, domain.StatusCompleted)
}

// Cancel cancels a session that has not completed yet
func (s *SessionService) Cancel(ctx context.Context, id int64) (*domain.Session, error) {
	return s.transition(ctx, id, domain.StatusCancelled)
}

func (s *SessionService) transition(ctx context.Context, id int64, next domain.SessionStatus) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("session is %s, cannot move to %s: %w", session.Status, next, domain.ErrConflict)
	}

	// started_at is set only on scheduled->in_progress, ended_at only on
	// completion; a cancelled session keeps both as they were.
	now := time.Now()
	session.Status = next
	switch next {
	case domain.StatusInProgress:
		session.StartedAt = &now
	case domain.StatusCompleted:
		session.EndedAt = &now
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	log.Info().
		Int64("session_id", session.ID).
		Str("status", string(next)).
		Msg("session status changed")
	return session, nil
}
