package ports

import "context"

// Generator is the chat-style external generation service: one user
// instruction in, one generated text payload out. Callers bound each call
// with a context timeout and attempt it exactly once; any error degrades
// to a local rule-based fallback.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
