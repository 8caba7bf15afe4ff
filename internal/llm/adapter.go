package llm

import (
	"context"

	"github.com/novavoice/nova-core/internal/domain"
)

// Completer is a completion-only client that lacks native streaming.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error)
}

// streamingAdapter synthesizes the token-stream contract over a Completer by
// delivering the full completion as a single token.
type streamingAdapter struct {
	base Completer
}

var _ domain.LLMClient = (*streamingAdapter)(nil)

// Streaming wraps a completion-only client so callers always get onToken
// callbacks regardless of the underlying provider's capabilities.
func Streaming(base Completer) domain.LLMClient {
	return &streamingAdapter{base: base}
}

func (a *streamingAdapter) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions, onToken func(string)) (string, error) {
	text, err := a.base.Complete(ctx, prompt, opts)
	if err != nil {
		return "", err
	}
	if onToken != nil && text != "" {
		onToken(text)
	}
	return text, nil
}
