package gemini

import (
	"context"

	"github.com/fwojciec/docqa"
	"google.golang.org/genai"
)

// Ensure Client implements docqa.Generator at compile time.
var _ docqa.Generator = (*Client)(nil)

// Client implements docqa.Generator using the Gemini API.
type Client struct {
	client *genai.Client
}

// NewClient connects to the Gemini API with the given key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{client: c}, nil
}

// Generate produces a completion for the prompt using the named model.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docqa.Errorf(docqa.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about an uploaded document. Provide clear and concise answers grounded primarily in the document content, incorporating web context only when it adds useful information.",
			}},
		},
		Temperature: &temp,
	}
}
