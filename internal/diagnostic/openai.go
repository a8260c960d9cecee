package diagnostic

import (
	"context"

	"advanx_funnel_backend/platform/ai/openaicompat"
)

// OpenAIClient adapts the chat completions client to CompletionClient.
type OpenAIClient struct {
	client *openaicompat.Client
}

// NewOpenAIClient wraps an OpenAI-compatible chat completions client.
func NewOpenAIClient(client *openaicompat.Client) *OpenAIClient {
	return &OpenAIClient{client: client}
}

// Complete implements CompletionClient.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	messages := []openaicompat.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	return c.client.Complete(ctx, messages, 0.7, 1000)
}
