package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/domain"
	"github.com/novavoice/nova-core/internal/store"
)

func testLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

// mockLLM implements domain.LLMClient with a configurable response.
type mockLLM struct {
	response string
	err      error
	calls    []string
}

func (m *mockLLM) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions, onToken func(string)) (string, error) {
	m.calls = append(m.calls, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.err != nil {
		return "", m.err
	}
	if onToken != nil {
		for _, w := range strings.Fields(m.response) {
			onToken(w + " ")
		}
	}
	return m.response, nil
}

// mockReminderStore implements domain.ReminderStore in memory.
type mockReminderStore struct {
	mu        sync.Mutex
	reminders map[uuid.UUID]*domain.Reminder
	createErr error
}

func newMockReminderStore() *mockReminderStore {
	return &mockReminderStore{reminders: make(map[uuid.UUID]*domain.Reminder)}
}

func (m *mockReminderStore) Create(ctx context.Context, r *domain.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	cp := *r
	m.reminders[r.ID] = &cp
	return nil
}

func (m *mockReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reminders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockReminderStore) List(ctx context.Context, includeFired bool) ([]domain.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Reminder
	for _, r := range m.reminders {
		if !includeFired && r.Fired {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockReminderStore) ListDue(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Reminder
	for _, r := range m.reminders {
		if !r.Fired && !r.TriggerAt.After(now) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockReminderStore) MarkFired(ctx context.Context, id uuid.UUID, firedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reminders[id]
	if !ok {
		return store.ErrNotFound
	}
	r.Fired = true
	r.FiredAt = &firedAt
	return nil
}

func (m *mockReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reminders[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.reminders, id)
	return nil
}

func (m *mockReminderStore) DeleteFiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, r := range m.reminders {
		if r.Fired && r.FiredAt != nil && r.FiredAt.Before(cutoff) {
			delete(m.reminders, id)
			n++
		}
	}
	return n, nil
}

// mockNotifier records scheduled and cancelled notifications.
type mockNotifier struct {
	mu        sync.Mutex
	scheduled []uuid.UUID
	cancelled []uuid.UUID
}

func (m *mockNotifier) Schedule(ctx context.Context, id uuid.UUID, triggerAt time.Time, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduled = append(m.scheduled, id)
	return nil
}

func (m *mockNotifier) Cancel(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = append(m.cancelled, id)
	return nil
}

// mockLauncher records launched package IDs.
type mockLauncher struct {
	launched []string
	err      error
}

func (m *mockLauncher) Launch(ctx context.Context, packageID string) error {
	if m.err != nil {
		return m.err
	}
	m.launched = append(m.launched, packageID)
	return nil
}

// mockDevice records applied device intents.
type mockDevice struct {
	applied []domain.Intent
	err     error
}

func (m *mockDevice) Apply(ctx context.Context, intent domain.Intent, params map[string]string) error {
	if m.err != nil {
		return m.err
	}
	m.applied = append(m.applied, intent)
	return nil
}

// mockUtteranceStore implements domain.UtteranceStore in memory.
type mockUtteranceStore struct {
	mu         sync.Mutex
	utterances []domain.Utterance
}

func (m *mockUtteranceStore) Create(ctx context.Context, u *domain.Utterance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = uuid.New()
	m.utterances = append(m.utterances, *u)
	return nil
}

func (m *mockUtteranceStore) Similar(ctx context.Context, embedding []float32, limit int) ([]domain.UtteranceWithScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.UtteranceWithScore
	for _, u := range m.utterances {
		out = append(out, domain.UtteranceWithScore{Utterance: u, Score: 1})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *mockUtteranceStore) CountByIntent(ctx context.Context) (map[domain.Intent]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[domain.Intent]int)
	for _, u := range m.utterances {
		counts[u.Intent]++
	}
	return counts, nil
}
