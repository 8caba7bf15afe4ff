package llm

import (
	"fmt"

	"github.com/novavoice/nova-core/internal/domain"
)

// Provider constants
const (
	ProviderOpenAI    = "openai"
	ProviderOllama    = "ollama"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"
)

// NewClient creates an LLM client based on the provider name.
// Returns an error if the provider is unknown or the API key is empty
// (except for ollama and mock, which need none).
func NewClient(provider, apiKey, baseURL string) (domain.LLMClient, error) {
	switch provider {
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIClient(apiKey), nil

	case ProviderOllama:
		return NewOllamaClient(baseURL), nil

	case ProviderAnthropic:
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for Anthropic provider")
		}
		// The Anthropic client is completion-only; wrap it so callers
		// always get token callbacks.
		return Streaming(NewAnthropicClient(apiKey)), nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (valid options: openai, ollama, anthropic, mock)", provider)
	}
}
