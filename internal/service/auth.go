package service

import (
	"context"
	"fmt"

	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/security"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles interviewer registration and authentication
type AuthService struct {
	interviewers domain.InterviewerRepository
	jwtManager   *security.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(interviewers domain.InterviewerRepository, jwtManager *security.JWTManager) *AuthService {
	return &AuthService{
		interviewers: interviewers,
		jwtManager:   jwtManager,
	}
}

// Register creates a new interviewer account
func (s *AuthService) Register(ctx context.Context, req domain.InterviewerCreate) (*domain.Interviewer, error) {
	existing, err := s.interviewers.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	interviewer := &domain.Interviewer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.interviewers.Create(ctx, interviewer); err != nil {
		return nil, err
	}

	log.Info().Int64("interviewer_id", interviewer.ID).Str("email", interviewer.Email).Msg("interviewer registered")
	return interviewer, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req domain.InterviewerLogin) (*domain.Interviewer, *domain.TokenPair, error) {
	interviewer, err := s.interviewers.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if interviewer == nil {
		return nil, nil, fmt.Errorf("invalid email or password: %w", domain.ErrValidation)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(interviewer.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, fmt.Errorf("invalid email or password: %w", domain.ErrValidation)
	}

	access, refresh, expiresIn, err := s.jwtManager.GenerateTokenPair(interviewer.ID, interviewer.Email)
	if err != nil {
		return nil, nil, err
	}

	return interviewer, &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	interviewerID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", domain.ErrValidation)
	}

	interviewer, err := s.interviewers.Get(ctx, interviewerID)
	if err != nil {
		return nil, err
	}

	access, refresh, expiresIn, err := s.jwtManager.GenerateTokenPair(interviewer.ID, interviewer.Email)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
	}, nil
}
