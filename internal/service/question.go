package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// QuestionService manages the pre-authored question script of a session
type QuestionService struct {
	questions domain.QuestionRepository
	sessions  domain.SessionRepository
}

// NewQuestionService creates a new question service
func NewQuestionService(questions domain.QuestionRepository, sessions domain.SessionRepository) *QuestionService {
	return &QuestionService{
		questions: questions,
		sessions:  sessions,
	}
}

// Create adds a question to the session script. A duplicate ordinal within
// the same session is rejected as a conflict.
func (s *QuestionService) Create(ctx context.Context, req domain.QuestionCreate) (*domain.Question, error) {
	session, err := s.resolveSession(ctx, req.SessionToken)
	if err != nil {
		return nil, err
	}

	difficulty := domain.Difficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	question := &domain.Question{
		SessionID:      session.ID,
		SessionToken:   session.Token.String(),
		Text:           req.Text,
		Category:       req.Category,
		Difficulty:     difficulty,
		Ord:            req.Ord,
		ExpectedAnswer: req.ExpectedAnswer,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// CreateBulk adds several questions in one call. The batch is written
// atomically: an ordinal conflict with the stored script (or a duplicate
// within the batch) leaves nothing behind.
func (s *QuestionService) CreateBulk(ctx context.Context, sessionToken string, reqs []domain.QuestionCreate) ([]domain.Question, error) {
	session, err := s.resolveSession(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(reqs))
	for _, req := range reqs {
		if seen[req.Ord] {
			return nil, fmt.Errorf("duplicate order %d in batch: %w", req.Ord, domain.ErrValidation)
		}
		seen[req.Ord] = true
	}

	batch := make([]*domain.Question, 0, len(reqs))
	for _, req := range reqs {
		difficulty := domain.Difficulty(req.Difficulty)
		if difficulty == "" {
			difficulty = domain.DifficultyMedium
		}
		batch = append(batch, &domain.Question{
			SessionID:      session.ID,
			SessionToken:   session.Token.String(),
			Text:           req.Text,
			Category:       req.Category,
			Difficulty:     difficulty,
			Ord:            req.Ord,
			ExpectedAnswer: req.ExpectedAnswer,
		})
	}
	if err := s.questions.CreateBulk(ctx, batch); err != nil {
		return nil, err
	}

	created := make([]domain.Question, len(batch))
	for i, question := range batch {
		created[i] = *question
	}
	return created, nil
}

func (s *QuestionService) Get(ctx context.Context, id int64) (*domain.Question, error) {
	return s.questions.Get(ctx, id)
}

// ListBySession returns the session script in ordinal order
func (s *QuestionService) ListBySession(ctx context.Context, sessionToken string) ([]domain.Question, error) {
	session, err := s.resolveSession(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	return s.questions.ListBySession(ctx, session.ID)
}

func (s *QuestionService) Update(ctx context.Context, id int64, req domain.QuestionUpdate) (*domain.Question, error) {
	question, err := s.questions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Category != nil {
		question.Category = *req.Category
	}
	if req.Difficulty != nil {
		question.Difficulty = domain.Difficulty(*req.Difficulty)
	}
	if req.Ord != nil {
		question.Ord = *req.Ord
	}
	if req.ExpectedAnswer != nil {
		question.ExpectedAnswer = *req.ExpectedAnswer
	}

	if err := s.questions.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	return s.questions.Delete(ctx, id)
}

func (s *QuestionService) resolveSession(ctx context.Context, token string) (*domain.Session, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", token, domain.ErrValidation)
	}
	return s.sessions.GetByToken(ctx, parsed)
}
