package docqa

import "context"

// Generator produces a text completion for a prompt using a named model.
// It is the boundary to the LLM service.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}
