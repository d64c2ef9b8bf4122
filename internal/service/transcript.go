package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/speech"
	"github.com/rs/zerolog/log"
)

// TranscriptService manages the append-only interview transcript and the
// audio attachments behind student entries.
type TranscriptService struct {
	transcripts domain.TranscriptRepository
	sessions    domain.SessionRepository
	transcriber speech.Transcriber
	audioDir    string
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(
	transcripts domain.TranscriptRepository,
	sessions domain.SessionRepository,
	transcriber speech.Transcriber,
	audioDir string,
) *TranscriptService {
	return &TranscriptService{
		transcripts: transcripts,
		sessions:    sessions,
		transcriber: transcriber,
		audioDir:    audioDir,
	}
}

// Append records one utterance. When audio is attached, it is transcribed
// first and stored on disk; a transcription failure aborts the append.
func (s *TranscriptService) Append(ctx context.Context, req domain.TranscriptEntryCreate, audio []byte) (*domain.TranscriptEntry, error) {
	token, err := uuid.Parse(req.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", req.SessionToken, domain.ErrValidation)
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	entry := &domain.TranscriptEntry{
		SessionID:    session.ID,
		SessionToken: session.Token.String(),
		QuestionID:   req.QuestionID,
		Speaker:      domain.Speaker(req.Speaker),
		Message:      req.Message,
	}

	if len(audio) > 0 {
		if entry.Message == "" {
			text, err := s.transcriber.Transcribe(ctx, audio)
			if err != nil {
				return nil, err
			}
			entry.Message = text
		}

		path, err := s.saveAudio(session.Token, audio)
		if err != nil {
			return nil, err
		}
		entry.AudioPath = path
	}

	if entry.Message == "" {
		return nil, fmt.Errorf("message is required: %w", domain.ErrValidation)
	}

	if err := s.transcripts.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListBySession returns the full transcript in chronological order
func (s *TranscriptService) ListBySession(ctx context.Context, sessionToken string) ([]domain.TranscriptEntry, error) {
	token, err := uuid.Parse(sessionToken)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", sessionToken, domain.ErrValidation)
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.transcripts.ListBySession(ctx, session.ID)
}

// Transcribe converts an audio recording to text without touching the
// transcript. Used by the standalone voice-to-text endpoint.
func (s *TranscriptService) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return s.transcriber.Transcribe(ctx, audio)
}

func (s *TranscriptService) saveAudio(sessionToken uuid.UUID, audio []byte) (string, error) {
	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	name := fmt.Sprintf("%s_%d.wav", sessionToken, time.Now().UnixNano())
	path := filepath.Join(s.audioDir, name)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("failed to store audio file: %w", err)
	}

	log.Debug().Str("path", path).Int("bytes", len(audio)).Msg("audio attachment stored")
	return path, nil
}
