package llm

import (
	"context"
	"strings"

	"github.com/novavoice/nova-core/internal/domain"
)

// MockClient is a configurable LLM client for testing.
// Set the response fields to control what Generate returns; tokens are
// emitted by splitting the response on whitespace.
type MockClient struct {
	GenerateResponse string
	GenerateError    error

	// Call tracking for assertions
	GenerateCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		GenerateResponse: "Mock response",
	}
}

func (c *MockClient) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions, onToken func(string)) (string, error) {
	c.GenerateCalls = append(c.GenerateCalls, prompt)
	if c.GenerateError != nil {
		return "", c.GenerateError
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if onToken != nil {
		for i, word := range strings.Split(c.GenerateResponse, " ") {
			if i > 0 {
				onToken(" ")
			}
			onToken(word)
		}
	}
	return c.GenerateResponse, nil
}
