package speech

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/priyanshupaikra/Inter-AI/internal/config"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"google.golang.org/api/option"
	speechv1 "google.golang.org/api/speech/v1"
)

// GoogleTranscriber implements Transcriber using the Cloud Speech-to-Text
// synchronous recognize endpoint.
type GoogleTranscriber struct {
	apiKey       string
	languageCode string
	sampleRate   int
}

// NewGoogleTranscriber creates a new Google speech-to-text transcriber
func NewGoogleTranscriber(cfg config.SpeechConfig) *GoogleTranscriber {
	return &GoogleTranscriber{
		apiKey:       cfg.APIKey,
		languageCode: cfg.LanguageCode,
		sampleRate:   cfg.SampleRate,
	}
}

func (t *GoogleTranscriber) IsConfigured() bool {
	return t.apiKey != ""
}

// Transcribe sends the audio for synchronous recognition and returns the
// top-ranked transcript.
func (t *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if !t.IsConfigured() {
		return "", fmt.Errorf("speech-to-text is not configured: %w", domain.ErrUnavailable)
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload: %w", domain.ErrValidation)
	}

	svc, err := speechv1.NewService(ctx, option.WithAPIKey(t.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create speech service: %v: %w", err, domain.ErrUnavailable)
	}

	req := &speechv1.RecognizeRequest{
		Config: &speechv1.RecognitionConfig{
			Encoding:        "LINEAR16",
			LanguageCode:    t.languageCode,
			SampleRateHertz: int64(t.sampleRate),
		},
		Audio: &speechv1.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := svc.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %v: %w", err, domain.ErrUnavailable)
	}

	if len(resp.Results) == 0 || len(resp.Results[0].Alternatives) == 0 {
		return "", fmt.Errorf("no speech recognized in audio: %w", domain.ErrUnavailable)
	}

	return resp.Results[0].Alternatives[0].Transcript, nil
}
