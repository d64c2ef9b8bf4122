// Package speech converts recorded student audio into text. Unlike the answer
// generators there is no fallback here: a transcription failure is surfaced
// to the caller as-is.
package speech

import "context"

// Transcriber converts an audio recording into its text transcript
type Transcriber interface {
	// Transcribe returns the recognized text for the audio payload.
	Transcribe(ctx context.Context, audio []byte) (string, error)

	// IsConfigured checks if the transcriber has valid credentials
	IsConfigured() bool
}
