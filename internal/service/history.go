package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/domain"
)

const historyWriteTimeout = 10 * time.Second

// HistoryService records every classified utterance, with an embedding when
// an embedding client is configured, so past classifications can be
// recalled by similarity for rule tuning.
type HistoryService struct {
	utterances domain.UtteranceStore
	embedder   domain.EmbeddingClient
	logger     *zap.Logger
}

func NewHistoryService(utterances domain.UtteranceStore, embedder domain.EmbeddingClient, logger *zap.Logger) *HistoryService {
	return &HistoryService{utterances: utterances, embedder: embedder, logger: logger}
}

// Record persists one classification asynchronously; the turn never waits on
// the history write.
func (s *HistoryService) Record(input string, res domain.ClassificationResult, latency time.Duration) {
	if s.utterances == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()

		u := &domain.Utterance{
			Input:      input,
			Intent:     res.Intent,
			Confidence: res.Confidence,
			Params:     res.Params,
			Instant:    res.Intent.IsInstant(),
			LatencyMs:  latency.Milliseconds(),
		}

		if s.embedder != nil {
			embedding, err := s.embedder.Embed(ctx, input)
			if err != nil {
				s.logger.Debug("utterance embedding failed", zap.Error(err))
			} else {
				u.Embedding = embedding
			}
		}

		if err := s.utterances.Create(ctx, u); err != nil {
			s.logger.Warn("failed to record utterance", zap.Error(err))
		}
	}()
}

// ErrRecallDisabled is returned by Similar when no embedding client or
// utterance store is configured.
var ErrRecallDisabled = errors.New("utterance recall disabled")

// Similar recalls past utterances closest to text. Requires an embedding
// client and an utterance store.
func (s *HistoryService) Similar(ctx context.Context, text string, limit int) ([]domain.UtteranceWithScore, error) {
	if s.embedder == nil || s.utterances == nil {
		return nil, ErrRecallDisabled
	}
	embedding, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	return s.utterances.Similar(ctx, embedding, limit)
}

// IntentCounts aggregates recorded utterances by intent.
func (s *HistoryService) IntentCounts(ctx context.Context) (map[domain.Intent]int, error) {
	if s.utterances == nil {
		return map[domain.Intent]int{}, nil
	}
	return s.utterances.CountByIntent(ctx)
}
