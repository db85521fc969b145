package llm

import "context"

// Completer defines the contract for chat completion providers
// This allows for easy mocking in tests
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Ensure Client implements Completer
var _ Completer = (*Client)(nil)
