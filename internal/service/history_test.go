package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/novavoice/nova-core/internal/domain"
)

func TestHistory_RecordEventuallyPersists(t *testing.T) {
	store := &mockUtteranceStore{}
	svc := NewHistoryService(store, nil, testLogger())

	svc.Record("turn on wifi", domain.ClassificationResult{
		Intent:     domain.IntentToggleWifi,
		Confidence: 0.95,
		Params:     map[string]string{domain.ParamState: "on"},
	}, 2*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for {
		counts, _ := svc.IntentCounts(context.Background())
		if counts[domain.IntentToggleWifi] == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("recorded utterance never appeared in the store")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHistory_SimilarWithoutEmbedder(t *testing.T) {
	svc := NewHistoryService(&mockUtteranceStore{}, nil, testLogger())

	if _, err := svc.Similar(context.Background(), "anything", 5); !errors.Is(err, ErrRecallDisabled) {
		t.Errorf("err = %v, want ErrRecallDisabled", err)
	}
}

func TestHistory_NilStoreIsNoop(t *testing.T) {
	svc := NewHistoryService(nil, nil, testLogger())

	// Must not panic.
	svc.Record("x", domain.ClassificationResult{Intent: domain.IntentConversation}, 0)

	counts, err := svc.IntentCounts(context.Background())
	if err != nil || len(counts) != 0 {
		t.Errorf("counts = %v, err = %v", counts, err)
	}
}
