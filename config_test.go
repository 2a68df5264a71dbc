package docqa_test

import (
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cfg := docqa.Config{GeminiAPIKey: "g-key", SerperAPIKey: "s-key"}

		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing gemini key", func(t *testing.T) {
		t.Parallel()

		cfg := docqa.Config{SerperAPIKey: "s-key"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
		assert.Contains(t, docqa.ErrorMessage(err), "gemini API key")
	})

	t.Run("missing serper key", func(t *testing.T) {
		t.Parallel()

		cfg := docqa.Config{GeminiAPIKey: "g-key"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
		assert.Contains(t, docqa.ErrorMessage(err), "serper API key")
	})
}
