package service

import (
	"context"
	"testing"
	"time"

	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (*SessionService, int64, int64) {
	t.Helper()
	ctx := context.Background()

	sessions := newFakeSessionRepo()
	interviewers := newFakeInterviewerRepo()
	students := newFakeStudentRepo()

	interviewer := &domain.Interviewer{Name: "Dana Wells", Email: "dana@example.com", PasswordHash: "x"}
	require.NoError(t, interviewers.Create(ctx, interviewer))
	student := &domain.Student{Name: "Sam Lee", Email: "sam@example.com"}
	require.NoError(t, students.Create(ctx, student))

	return NewSessionService(sessions, interviewers, students), interviewer.ID, student.ID
}

func TestSessionService_CreateAssignsToken(t *testing.T) {
	ctx := context.Background()
	svc, interviewerID, studentID := newSessionFixture(t)

	session, err := svc.Create(ctx, domain.SessionCreate{
		InterviewerID:   interviewerID,
		StudentID:       studentID,
		Title:           "Systems Interview",
		DurationMinutes: 45,
		ScheduledAt:     time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotZero(t, session.ID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", session.Token.String())
	assert.Equal(t, domain.StatusScheduled, session.Status)
	assert.Nil(t, session.StartedAt)
}

func TestSessionService_CreateRejectsUnknownReferences(t *testing.T) {
	ctx := context.Background()
	svc, interviewerID, _ := newSessionFixture(t)

	_, err := svc.Create(ctx, domain.SessionCreate{
		InterviewerID:   interviewerID,
		StudentID:       999,
		Title:           "Systems Interview",
		DurationMinutes: 45,
		ScheduledAt:     time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionService_Transitions(t *testing.T) {
	ctx := context.Background()
	svc, interviewerID, studentID := newSessionFixture(t)

	session, err := svc.Create(ctx, domain.SessionCreate{
		InterviewerID:   interviewerID,
		StudentID:       studentID,
		Title:           "Systems Interview",
		DurationMinutes: 45,
		ScheduledAt:     time.Now(),
	})
	require.NoError(t, err)

	// scheduled -> completed is not allowed
	_, err = svc.End(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	started, err := svc.Start(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, started.Status)
	assert.NotNil(t, started.StartedAt)

	// starting again is a conflict
	_, err = svc.Start(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	ended, err := svc.End(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, ended.Status)
	assert.NotNil(t, ended.EndedAt)

	// completed sessions never come back
	_, err = svc.Cancel(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSessionService_CancelFromScheduled(t *testing.T) {
	ctx := context.Background()
	svc, interviewerID, studentID := newSessionFixture(t)

	session, err := svc.Create(ctx, domain.SessionCreate{
		InterviewerID:   interviewerID,
		StudentID:       studentID,
		Title:           "Systems Interview",
		DurationMinutes: 45,
		ScheduledAt:     time.Now(),
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	// Cancellation is not completion: ended_at stays unset
	assert.Nil(t, cancelled.StartedAt)
	assert.Nil(t, cancelled.EndedAt)

	_, err = svc.Start(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSessionStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, domain.StatusScheduled.CanTransitionTo(domain.StatusInProgress))
	assert.True(t, domain.StatusScheduled.CanTransitionTo(domain.StatusCancelled))
	assert.True(t, domain.StatusInProgress.CanTransitionTo(domain.StatusCompleted))
	assert.True(t, domain.StatusInProgress.CanTransitionTo(domain.StatusCancelled))

	assert.False(t, domain.StatusScheduled.CanTransitionTo(domain.StatusCompleted))
	assert.False(t, domain.StatusCompleted.CanTransitionTo(domain.StatusInProgress))
	assert.False(t, domain.StatusCancelled.CanTransitionTo(domain.StatusInProgress))
	assert.False(t, domain.StatusCompleted.CanTransitionTo(domain.StatusCancelled))
}
