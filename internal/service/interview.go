package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/llm"
	"github.com/rs/zerolog/log"
)

// Conductor drives the AI interview loop. It keeps no per-session state in
// memory: the position in the question script is derived from the transcript
// on every call, so any replica can serve any session.
type Conductor struct {
	sessions    domain.SessionRepository
	questions   domain.QuestionRepository
	transcripts domain.TranscriptRepository
	students    domain.StudentRepository

	router        *llm.Router
	fallback      llm.Provider
	timeout       time.Duration
	historyWindow int
}

// NewConductor creates a new interview conductor. fallback is consulted
// whenever the selected provider fails or times out; it must never fail.
func NewConductor(
	sessions domain.SessionRepository,
	questions domain.QuestionRepository,
	transcripts domain.TranscriptRepository,
	students domain.StudentRepository,
	router *llm.Router,
	fallback llm.Provider,
	timeout time.Duration,
	historyWindow int,
) *Conductor {
	return &Conductor{
		sessions:      sessions,
		questions:     questions,
		transcripts:   transcripts,
		students:      students,
		router:        router,
		fallback:      fallback,
		timeout:       timeout,
		historyWindow: historyWindow,
	}
}

// ConductResult is the outcome of one conductor action
type ConductResult struct {
	SessionToken   string          `json:"session_id"`
	Message        string          `json:"message"`
	QuestionID     *int64          `json:"question_id,omitempty"`
	QuestionNumber int             `json:"question_number,omitempty"`
	TotalQuestions int             `json:"total_questions"`
	Exhausted      bool            `json:"questions_exhausted"`
	Provider       string          `json:"provider"`
	Model          string          `json:"model,omitempty"`
	Status         string          `json:"session_status"`
	Summary        *SessionSummary `json:"summary,omitempty"`
}

// SessionSummary carries the closing statistics returned by End
type SessionSummary struct {
	QuestionsAsked   int   `json:"questions_asked"`
	StudentResponses int   `json:"student_responses"`
	DurationSeconds  int64 `json:"duration_seconds"`
}

// Initialize starts the AI interview: it appends the greeting that asks the
// first question. Session status is untouched; moving the session into
// progress is the explicit start transition's job. Initializing twice is a
// conflict.
func (c *Conductor) Initialize(ctx context.Context, sessionToken, providerName string) (*ConductResult, error) {
	session, err := c.loadSession(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	if sessionClosed(session) {
		return nil, fmt.Errorf("session is %s: %w", session.Status, domain.ErrConflict)
	}

	aiCount, err := c.transcripts.CountBySpeaker(ctx, session.ID, domain.SpeakerAI)
	if err != nil {
		return nil, err
	}
	if aiCount > 0 {
		return nil, fmt.Errorf("interview already initialized: %w", domain.ErrConflict)
	}

	script, err := c.questions.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if len(script) == 0 {
		return nil, fmt.Errorf("session has no questions: %w", domain.ErrValidation)
	}
	first := script[0]

	student, err := c.students.Get(ctx, session.StudentID)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		Stage:           llm.StageGreeting,
		SessionTitle:    session.Title,
		StudentName:     student.Name,
		DurationMinutes: session.DurationMinutes,
		Questions:       questionTexts(script),
		NextQuestion:    first.Text,
	}

	resp, providerUsed := c.generate(ctx, providerName, req)

	entry := &domain.TranscriptEntry{
		SessionID:    session.ID,
		SessionToken: session.Token.String(),
		QuestionID:   &first.ID,
		Speaker:      domain.SpeakerAI,
		Message:      resp.Text,
	}
	if err := c.transcripts.Append(ctx, entry); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_token", session.Token.String()).
		Str("provider", providerUsed).
		Msg("interview initialized")

	return &ConductResult{
		SessionToken:   session.Token.String(),
		Message:        resp.Text,
		QuestionID:     &first.ID,
		QuestionNumber: 1,
		TotalQuestions: len(script),
		Provider:       providerUsed,
		Model:          resp.Model,
		Status:         string(session.Status),
	}, nil
}

// Respond records the student's answer and produces the interviewer's next
// utterance. When the script is exhausted, only the student entry is
// appended and a closing hint is returned.
func (c *Conductor) Respond(ctx context.Context, sessionToken, studentResponse, providerName string) (*ConductResult, error) {
	if studentResponse == "" {
		return nil, fmt.Errorf("student_response is required: %w", domain.ErrValidation)
	}

	session, err := c.loadSession(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	if sessionClosed(session) {
		return nil, fmt.Errorf("session is %s: %w", session.Status, domain.ErrConflict)
	}

	aiCount, err := c.transcripts.CountBySpeaker(ctx, session.ID, domain.SpeakerAI)
	if err != nil {
		return nil, err
	}
	if aiCount == 0 {
		return nil, fmt.Errorf("interview has not been initialized: %w", domain.ErrValidation)
	}

	script, err := c.questions.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	studentEntry := &domain.TranscriptEntry{
		SessionID:    session.ID,
		SessionToken: session.Token.String(),
		Speaker:      domain.SpeakerStudent,
		Message:      studentResponse,
	}
	if err := c.transcripts.Append(ctx, studentEntry); err != nil {
		return nil, err
	}

	next, err := c.questions.NextUnanswered(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return &ConductResult{
			SessionToken:   session.Token.String(),
			Message:        "Thank you for your responses! That concludes our interview.",
			TotalQuestions: len(script),
			Exhausted:      true,
			Provider:       "scripted",
			Status:         string(session.Status),
		}, nil
	}

	student, err := c.students.Get(ctx, session.StudentID)
	if err != nil {
		return nil, err
	}

	history, err := c.transcripts.Tail(ctx, session.ID, c.historyWindow)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		Stage:           llm.StageFollowUp,
		SessionTitle:    session.Title,
		StudentName:     student.Name,
		DurationMinutes: session.DurationMinutes,
		Questions:       questionTexts(script),
		NextQuestion:    next.Text,
		StudentResponse: studentResponse,
		History:         historyTurns(history),
	}

	resp, providerUsed := c.generate(ctx, providerName, req)

	aiEntry := &domain.TranscriptEntry{
		SessionID:    session.ID,
		SessionToken: session.Token.String(),
		QuestionID:   &next.ID,
		Speaker:      domain.SpeakerAI,
		Message:      resp.Text,
	}
	if err := c.transcripts.Append(ctx, aiEntry); err != nil {
		return nil, err
	}

	return &ConductResult{
		SessionToken:   session.Token.String(),
		Message:        resp.Text,
		QuestionID:     &next.ID,
		QuestionNumber: questionNumber(script, next.ID),
		TotalQuestions: len(script),
		Provider:       providerUsed,
		Model:          resp.Model,
		Status:         string(session.Status),
	}, nil
}

// End closes the conversation: it appends the closing statement and returns
// summary statistics. Completing the session is the explicit end transition's
// job, not the conductor's.
func (c *Conductor) End(ctx context.Context, sessionToken, providerName string) (*ConductResult, error) {
	session, err := c.loadSession(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	if sessionClosed(session) {
		return nil, fmt.Errorf("session is %s: %w", session.Status, domain.ErrConflict)
	}

	aiCount, err := c.transcripts.CountBySpeaker(ctx, session.ID, domain.SpeakerAI)
	if err != nil {
		return nil, err
	}
	if aiCount == 0 {
		return nil, fmt.Errorf("interview has not been initialized: %w", domain.ErrConflict)
	}

	script, err := c.questions.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	student, err := c.students.Get(ctx, session.StudentID)
	if err != nil {
		return nil, err
	}

	history, err := c.transcripts.Tail(ctx, session.ID, c.historyWindow)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		Stage:           llm.StageClosing,
		SessionTitle:    session.Title,
		StudentName:     student.Name,
		DurationMinutes: session.DurationMinutes,
		Questions:       questionTexts(script),
		History:         historyTurns(history),
	}

	resp, providerUsed := c.generate(ctx, providerName, req)

	closing := &domain.TranscriptEntry{
		SessionID:    session.ID,
		SessionToken: session.Token.String(),
		Speaker:      domain.SpeakerAI,
		Message:      resp.Text,
	}
	if err := c.transcripts.Append(ctx, closing); err != nil {
		return nil, err
	}

	entries, err := c.transcripts.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	// Greeting and closing carry no question reference; only real question
	// turns count as asked.
	var questionsAsked, studentResponses int
	for _, e := range entries {
		switch {
		case e.Speaker == domain.SpeakerAI && e.QuestionID != nil:
			questionsAsked++
		case e.Speaker == domain.SpeakerStudent:
			studentResponses++
		}
	}

	var durationSeconds int64
	if session.StartedAt != nil {
		durationSeconds = int64(time.Since(*session.StartedAt).Seconds())
	}

	log.Info().
		Str("session_token", session.Token.String()).
		Int("questions_asked", questionsAsked).
		Int("student_turns", studentResponses).
		Msg("interview ended")

	return &ConductResult{
		SessionToken:   session.Token.String(),
		Message:        resp.Text,
		TotalQuestions: len(script),
		Provider:       providerUsed,
		Model:          resp.Model,
		Status:         string(session.Status),
		Summary: &SessionSummary{
			QuestionsAsked:   questionsAsked,
			StudentResponses: studentResponses,
			DurationSeconds:  durationSeconds,
		},
	}, nil
}

// generate runs the selected provider under the configured timeout and
// degrades to the fallback on any failure. The interview never stalls on a
// hosted model.
func (c *Conductor) generate(ctx context.Context, providerName string, req llm.Request) (*llm.Response, string) {
	provider, err := c.router.GetProvider(providerName)
	if err != nil {
		log.Warn().Err(err).Str("provider", providerName).Msg("provider unavailable, using fallback")
		resp, _ := c.fallback.Generate(ctx, req, "")
		return resp, c.fallback.Name()
	}

	genCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := provider.Generate(genCtx, req, "")
	if err != nil {
		log.Warn().Err(err).Str("provider", provider.Name()).Msg("generation failed, using fallback")
		resp, _ := c.fallback.Generate(ctx, req, "")
		return resp, c.fallback.Name()
	}
	return resp, provider.Name()
}

func (c *Conductor) loadSession(ctx context.Context, sessionToken string) (*domain.Session, error) {
	token, err := uuid.Parse(sessionToken)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", sessionToken, domain.ErrValidation)
	}
	return c.sessions.GetByToken(ctx, token)
}

func sessionClosed(s *domain.Session) bool {
	return s.Status == domain.StatusCompleted || s.Status == domain.StatusCancelled
}

func questionTexts(script []domain.Question) []string {
	texts := make([]string, len(script))
	for i, q := range script {
		texts[i] = q.Text
	}
	return texts
}

func questionNumber(script []domain.Question, id int64) int {
	for i, q := range script {
		if q.ID == id {
			return i + 1
		}
	}
	return 0
}

func historyTurns(entries []domain.TranscriptEntry) []llm.Turn {
	turns := make([]llm.Turn, len(entries))
	for i, e := range entries {
		turns[i] = llm.Turn{Speaker: string(e.Speaker), Message: e.Message}
	}
	return turns
}
