package service

import (
	"context"
	"testing"
	"time"

	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	jwtManager := security.NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthService(newFakeInterviewerRepo(), jwtManager)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	interviewer, err := svc.Register(ctx, domain.InterviewerCreate{
		Name:     "Dana Wells",
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotZero(t, interviewer.ID)
	assert.NotEmpty(t, interviewer.PasswordHash)
	assert.NotEqual(t, "correct horse battery", interviewer.PasswordHash)

	loggedIn, tokens, err := svc.Login(ctx, domain.InterviewerLogin{
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, interviewer.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	_, err := svc.Register(ctx, domain.InterviewerCreate{
		Name: "Dana", Email: "dana@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.InterviewerCreate{
		Name: "Other Dana", Email: "dana@example.com", Password: "password456",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	_, err := svc.Register(ctx, domain.InterviewerCreate{
		Name: "Dana", Email: "dana@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, domain.InterviewerLogin{
		Email: "dana@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = svc.Login(ctx, domain.InterviewerLogin{
		Email: "nobody@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	_, err := svc.Register(ctx, domain.InterviewerCreate{
		Name: "Dana", Email: "dana@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, tokens, err := svc.Login(ctx, domain.InterviewerLogin{
		Email: "dana@example.com", Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(ctx, "garbage.token.value")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
