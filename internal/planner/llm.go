package planner

import "context"

// Request is a single-turn completion request. The planner endpoints are
// stateless, so a system instruction plus one user prompt is the whole
// conversation.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int32
	Temperature float32
}

// Response carries the completion text and provider accounting.
type Response struct {
	Text         string
	StopReason   string
	InputTokens  int32
	OutputTokens int32
}

// Client produces an itinerary completion from an LLM provider.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}
