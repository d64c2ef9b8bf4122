// Package scripted implements the deterministic fallback generator: it walks
// the pre-authored question list verbatim and needs no credentials. It is
// always registered, and it is what every hosted-model failure degrades to.
package scripted

import (
	"context"

	"github.com/priyanshupaikra/Inter-AI/internal/llm"
)

const (
	// Greeting is the canned opening line.
	Greeting = "Hello! Welcome to this interview. I'm excited to learn more about you. Let's begin!"

	// Closing is the canned closing statement.
	Closing = "Thank you for taking the time to interview with us today. We appreciate your interest and will be in touch soon. Have a great day!"

	// Exhausted is returned when every scripted question has been asked.
	Exhausted = "Thank you for your responses! That concludes our interview."
)

// Provider implements llm.Provider without any external dependency
type Provider struct{}

// NewProvider creates the scripted provider
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string {
	return "scripted"
}

func (p *Provider) DefaultModel() string {
	return "scripted"
}

func (p *Provider) IsConfigured() bool {
	return true
}

// Generate returns the canned line for the stage, or the next scripted
// question verbatim. It never fails.
func (p *Provider) Generate(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	var text string
	switch req.Stage {
	case llm.StageGreeting:
		text = Greeting
		if req.NextQuestion != "" {
			text += "\n\n" + req.NextQuestion
		}
	case llm.StageClosing:
		text = Closing
	default:
		if req.NextQuestion != "" {
			text = req.NextQuestion
		} else {
			text = Exhausted
		}
	}

	return &llm.Response{Text: text, Model: "scripted"}, nil
}
