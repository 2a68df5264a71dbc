package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.Generator = (*Generator)(nil)

// Generator is a mock implementation of docqa.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, model, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, model, prompt string) (string, error) {
	return g.GenerateFn(ctx, model, prompt)
}
