package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	req := Request{
		SessionTitle:    "Backend Interview",
		StudentName:     "Priya",
		DurationMinutes: 30,
		Questions:       []string{"Tell me about yourself.", "What is a goroutine?"},
	}

	prompt := BuildSystemPrompt(req)

	assert.Contains(t, prompt, "AI interviewer")
	assert.Contains(t, prompt, "Backend Interview")
	assert.Contains(t, prompt, "Priya")
	assert.Contains(t, prompt, "30 minutes")
	assert.Contains(t, prompt, "1. Tell me about yourself.")
	assert.Contains(t, prompt, "2. What is a goroutine?")
}

func TestBuildUserPrompt(t *testing.T) {
	greeting := BuildUserPrompt(Request{
		Stage:        StageGreeting,
		NextQuestion: "Tell me about yourself.",
	})
	assert.True(t, strings.HasPrefix(greeting, "Start the interview"))
	assert.Contains(t, greeting, "Tell me about yourself.")

	followup := BuildUserPrompt(Request{
		Stage:           StageFollowUp,
		NextQuestion:    "What is a goroutine?",
		StudentResponse: "I am a CS student.",
	})
	assert.Contains(t, followup, "I am a CS student.")
	assert.Contains(t, followup, "What is a goroutine?")

	closing := BuildUserPrompt(Request{Stage: StageClosing})
	assert.Contains(t, closing, "closing statement")
}

func TestRouter(t *testing.T) {
	r := NewRouter("alpha")
	r.RegisterProvider(stubProvider{name: "alpha", configured: true})
	r.RegisterProvider(stubProvider{name: "beta", configured: false})

	p, err := r.GetProvider("")
	assert.NoError(t, err)
	assert.Equal(t, "alpha", p.Name())

	p, err = r.GetProvider("alpha")
	assert.NoError(t, err)
	assert.Equal(t, "alpha", p.Name())

	_, err = r.GetProvider("beta")
	assert.Error(t, err)

	_, err = r.GetProvider("missing")
	assert.Error(t, err)

	infos := r.GetProvidersInfo()
	assert.Len(t, infos, 2)
}

type stubProvider struct {
	name       string
	configured bool
}

func (s stubProvider) Name() string         { return s.name }
func (s stubProvider) DefaultModel() string { return s.name + "-model" }
func (s stubProvider) IsConfigured() bool   { return s.configured }
func (s stubProvider) Generate(ctx context.Context, req Request, model string) (*Response, error) {
	return &Response{Text: "stub", Model: model}, nil
}
