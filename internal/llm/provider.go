package llm

import "context"

// Stage identifies which part of the interview the generator is asked to produce
type Stage string

const (
	StageGreeting Stage = "greeting"
	StageFollowUp Stage = "followup"
	StageClosing  Stage = "closing"
)

// Turn is one utterance in the conversation history window
type Turn struct {
	Speaker string // "ai" or "student"
	Message string
}

// Request contains interview generation parameters
type Request struct {
	Stage           Stage
	SessionTitle    string
	StudentName     string
	DurationMinutes int
	Questions       []string // full scripted question list, in order
	NextQuestion    string   // the scripted question the AI should ask next
	StudentResponse string   // latest student answer, for follow-up stages
	History         []Turn   // bounded window of prior transcript entries
}

// Response contains LLM generation result
type Response struct {
	Text       string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Provider defines the interface for answer generators
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Generate produces the interviewer's next utterance
	Generate(ctx context.Context, req Request, model string) (*Response, error)
}
