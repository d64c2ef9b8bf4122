package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/llm"
	"github.com/priyanshupaikra/Inter-AI/internal/llm/scripted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type conductorFixture struct {
	conductor   *Conductor
	lifecycle   *SessionService
	sessions    *fakeSessionRepo
	questions   *fakeQuestionRepo
	transcripts *fakeTranscriptRepo
	students    *fakeStudentRepo
	session     *domain.Session
}

func newConductorFixture(t *testing.T, questionTexts []string) *conductorFixture {
	t.Helper()
	ctx := context.Background()

	sessions := newFakeSessionRepo()
	transcripts := newFakeTranscriptRepo()
	questions := newFakeQuestionRepo(transcripts)
	students := newFakeStudentRepo()

	student := &domain.Student{Name: "Priya Sharma", Email: "priya@example.com"}
	require.NoError(t, students.Create(ctx, student))

	session := &domain.Session{
		Token:           uuid.New(),
		InterviewerID:   1,
		StudentID:       student.ID,
		Title:           "Backend Engineering Interview",
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
		ScheduledAt:     time.Now(),
	}
	require.NoError(t, sessions.Create(ctx, session))

	for i, text := range questionTexts {
		require.NoError(t, questions.Create(ctx, &domain.Question{
			SessionID:  session.ID,
			Text:       text,
			Difficulty: domain.DifficultyMedium,
			Ord:        i + 1,
		}))
	}

	router := llm.NewRouter("scripted")
	fallback := scripted.NewProvider()
	router.RegisterProvider(fallback)

	conductor := NewConductor(sessions, questions, transcripts, students, router, fallback, 5*time.Second, 10)
	lifecycle := NewSessionService(sessions, newFakeInterviewerRepo(), students)

	return &conductorFixture{
		conductor:   conductor,
		lifecycle:   lifecycle,
		sessions:    sessions,
		questions:   questions,
		transcripts: transcripts,
		students:    students,
		session:     session,
	}
}

func TestConductor_FullInterviewFlow(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{
		"Tell me about yourself.",
		"Describe a project you are proud of.",
	})
	token := f.session.Token.String()

	// The interviewer starts the session through the explicit transition
	_, err := f.lifecycle.Start(ctx, f.session.ID)
	require.NoError(t, err)

	// Initialize: greeting that asks the first question
	res, err := f.conductor.Initialize(ctx, token, "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.QuestionNumber)
	assert.Equal(t, 2, res.TotalQuestions)
	assert.Contains(t, res.Message, "Tell me about yourself.")
	assert.Equal(t, "scripted", res.Provider)
	assert.Equal(t, string(domain.StatusInProgress), res.Status)

	// First answer: conductor asks the second question
	res, err = f.conductor.Respond(ctx, token, "I am a CS student focused on backend work.", "")
	require.NoError(t, err)
	assert.False(t, res.Exhausted)
	assert.Equal(t, 2, res.QuestionNumber)
	assert.Contains(t, res.Message, "Describe a project you are proud of.")

	// Second answer: the script is exhausted, no ai entry is appended
	res, err = f.conductor.Respond(ctx, token, "I built a distributed job queue.", "")
	require.NoError(t, err)
	assert.True(t, res.Exhausted)
	assert.NotEmpty(t, res.Message)

	// End: closing statement plus summary; greeting and closing do not
	// count as questions asked
	res, err = f.conductor.End(ctx, token, "")
	require.NoError(t, err)
	require.NotNil(t, res.Summary)
	assert.Equal(t, string(domain.StatusInProgress), res.Status)
	assert.Equal(t, 2, res.Summary.QuestionsAsked)
	assert.Equal(t, 2, res.Summary.StudentResponses)

	// Completing the session is the explicit transition's job
	ended, err := f.lifecycle.End(ctx, f.session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, ended.Status)

	// Transcript: greeting, answer, followup, answer, closing
	entries, err := f.transcripts.ListBySession(ctx, f.session.ID)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	speakers := make([]domain.Speaker, len(entries))
	for i, e := range entries {
		speakers[i] = e.Speaker
	}
	assert.Equal(t, []domain.Speaker{
		domain.SpeakerAI,
		domain.SpeakerStudent,
		domain.SpeakerAI,
		domain.SpeakerStudent,
		domain.SpeakerAI,
	}, speakers)

	// Session is completed with both timestamps set
	session, err := f.sessions.Get(ctx, f.session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, session.Status)
	assert.NotNil(t, session.StartedAt)
	assert.NotNil(t, session.EndedAt)
}

func TestConductor_QuestionProgressionIsMonotonic(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one", "Q two", "Q three"})
	token := f.session.Token.String()

	_, err := f.conductor.Initialize(ctx, token, "")
	require.NoError(t, err)

	var asked []int
	for _, answer := range []string{"a1", "a2"} {
		res, err := f.conductor.Respond(ctx, token, answer, "")
		require.NoError(t, err)
		require.False(t, res.Exhausted)
		asked = append(asked, res.QuestionNumber)
	}

	assert.Equal(t, []int{2, 3}, asked)
}

func TestConductor_InitializeRequiresQuestions(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, nil)

	_, err := f.conductor.Initialize(ctx, f.session.Token.String(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConductor_InitializeTwiceIsConflict(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one"})
	token := f.session.Token.String()

	_, err := f.conductor.Initialize(ctx, token, "")
	require.NoError(t, err)

	_, err = f.conductor.Initialize(ctx, token, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConductor_RespondOnClosedSession(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one"})

	f.session.Status = domain.StatusCancelled
	require.NoError(t, f.sessions.Update(ctx, f.session))

	_, err := f.conductor.Respond(ctx, f.session.Token.String(), "hello", "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConductor_RespondRequiresInitialize(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one"})

	// The greeting was never produced
	_, err := f.conductor.Respond(ctx, f.session.Token.String(), "hello", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConductor_LeavesSessionStatusAlone(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one"})
	token := f.session.Token.String()

	_, err := f.conductor.Initialize(ctx, token, "")
	require.NoError(t, err)

	session, err := f.sessions.Get(ctx, f.session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, session.Status)
	assert.Nil(t, session.StartedAt)

	_, err = f.conductor.Respond(ctx, token, "an answer", "")
	require.NoError(t, err)
	_, err = f.conductor.End(ctx, token, "")
	require.NoError(t, err)

	session, err = f.sessions.Get(ctx, f.session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, session.Status)
	assert.Nil(t, session.EndedAt)

	// The explicit transitions still work once the conversation is over
	_, err = f.lifecycle.Start(ctx, f.session.ID)
	require.NoError(t, err)
	ended, err := f.lifecycle.End(ctx, f.session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, ended.Status)
}

func TestConductor_RespondRequiresAnswer(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one"})
	token := f.session.Token.String()

	_, err := f.conductor.Initialize(ctx, token, "")
	require.NoError(t, err)

	_, err = f.conductor.Respond(ctx, token, "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Nothing was appended for the rejected action
	entries, err := f.transcripts.ListBySession(ctx, f.session.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestConductor_UnknownSession(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one"})

	_, err := f.conductor.Initialize(ctx, uuid.NewString(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.conductor.Initialize(ctx, "not-a-uuid", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConductor_FallsBackWhenProviderFails(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one", "Q two"})
	token := f.session.Token.String()

	// Replace the router: default provider fails on every call
	router := llm.NewRouter("failing")
	router.RegisterProvider(failingProvider{})
	f.conductor.router = router

	res, err := f.conductor.Initialize(ctx, token, "")
	require.NoError(t, err)
	assert.Equal(t, "scripted", res.Provider)
	assert.True(t, strings.Contains(res.Message, "Q one"))

	res, err = f.conductor.Respond(ctx, token, "my answer", "")
	require.NoError(t, err)
	assert.Equal(t, "scripted", res.Provider)
	assert.Contains(t, res.Message, "Q two")
}

func TestConductor_EndRequiresInitialize(t *testing.T) {
	ctx := context.Background()
	f := newConductorFixture(t, []string{"Q one"})
	token := f.session.Token.String()

	_, err := f.conductor.End(ctx, token, "")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.conductor.Initialize(ctx, token, "")
	require.NoError(t, err)

	_, err = f.conductor.End(ctx, token, "")
	require.NoError(t, err)

	// Once the session is completed the conductor refuses further actions
	_, err = f.lifecycle.Start(ctx, f.session.ID)
	require.NoError(t, err)
	_, err = f.lifecycle.End(ctx, f.session.ID)
	require.NoError(t, err)

	_, err = f.conductor.End(ctx, token, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
