package completion

import "context"

// Options controls the completion request sent to the provider.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Completer is the boundary over the external language-model provider.
type Completer interface {
	// Complete performs one synchronous completion call.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Configured reports whether the provider credentials were present at startup.
	Configured() bool
}
