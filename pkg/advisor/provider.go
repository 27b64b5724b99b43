package advisor

import (
	"context"
	"fmt"
)

// Message represents a chat message sent to a provider.
type Message struct {
	Role    string // "user", "model", "system"
	Content string
}

// LLMProvider defines the interface for different AI models.
type LLMProvider interface {
	GenerateResponse(ctx context.Context, history []Message) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// NewProvider constructs the provider selected in configuration.
func NewProvider(ctx context.Context, providerName, apiKey, modelName string) (LLMProvider, error) {
	switch providerName {
	case "gemini":
		return NewGeminiProvider(ctx, apiKey, modelName)
	case "openai":
		return NewOpenAIProvider(apiKey, modelName), nil
	case "anthropic":
		return NewAnthropicProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", providerName)
	}
}
