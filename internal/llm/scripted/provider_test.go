package scripted

import (
	"context"
	"testing"

	"github.com/priyanshupaikra/Inter-AI/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_IsAlwaysConfigured(t *testing.T) {
	p := NewProvider()
	assert.True(t, p.IsConfigured())
	assert.Equal(t, "scripted", p.Name())
}

func TestProvider_Greeting(t *testing.T) {
	p := NewProvider()

	resp, err := p.Generate(context.Background(), llm.Request{
		Stage:        llm.StageGreeting,
		NextQuestion: "Tell me about yourself.",
	}, "")
	require.NoError(t, err)
	assert.Contains(t, resp.Text, Greeting)
	assert.Contains(t, resp.Text, "Tell me about yourself.")
}

func TestProvider_FollowUpEchoesQuestion(t *testing.T) {
	p := NewProvider()

	resp, err := p.Generate(context.Background(), llm.Request{
		Stage:           llm.StageFollowUp,
		NextQuestion:    "What is a goroutine?",
		StudentResponse: "some answer",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "What is a goroutine?", resp.Text)
}

func TestProvider_FollowUpWithoutQuestion(t *testing.T) {
	p := NewProvider()

	resp, err := p.Generate(context.Background(), llm.Request{Stage: llm.StageFollowUp}, "")
	require.NoError(t, err)
	assert.Equal(t, Exhausted, resp.Text)
}

func TestProvider_Closing(t *testing.T) {
	p := NewProvider()

	resp, err := p.Generate(context.Background(), llm.Request{Stage: llm.StageClosing}, "")
	require.NoError(t, err)
	assert.Equal(t, Closing, resp.Text)
}
