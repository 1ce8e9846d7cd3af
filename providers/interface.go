package providers

import "context"

// Generator is the text-generation collaborator. One success shape, one
// opaque failure; callers do not classify failures beyond that.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (*Result, error)
}

// Result is the unified response format.
type Result struct {
	Content      string
	InputTokens  int
	OutputTokens int
	FinishReason string
}
