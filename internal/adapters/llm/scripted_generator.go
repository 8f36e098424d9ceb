package llm

import "context"

// ScriptedGenerator is a test double that replays a fixed response and
// counts calls, so tests can assert that no network round-trip happened.
type ScriptedGenerator struct {
	Response string
	Err      error

	Calls      int
	LastPrompt string
}

func (g *ScriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.Calls++
	g.LastPrompt = prompt
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}
