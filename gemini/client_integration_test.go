//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/docqa/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Integration_Generate(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := gemini.NewClient(ctx, apiKey)
	require.NoError(t, err)

	answer, err := client.Generate(ctx, gemini.DefaultPrimaryModel,
		"Reply with the single word: pong")

	require.NoError(t, err)
	assert.NotEmpty(t, answer)
}
