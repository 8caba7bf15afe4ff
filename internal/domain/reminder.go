package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a persisted reminder built from a ReminderAnalysisResult.
type Reminder struct {
	ID        uuid.UUID  `json:"id"`
	Task      string     `json:"task"`
	RawTime   string     `json:"raw_time,omitempty"`
	TriggerAt time.Time  `json:"trigger_at"`
	Fired     bool       `json:"fired"`
	FiredAt   *time.Time `json:"fired_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Utterance is one classified input recorded for diagnostics and offline
// rule tuning. The embedding is optional; when present it enables
// similarity recall over past classifications.
type Utterance struct {
	ID         uuid.UUID         `json:"id"`
	Input      string            `json:"input"`
	Intent     Intent            `json:"intent"`
	Confidence float32           `json:"confidence"`
	Params     map[string]string `json:"params,omitempty"`
	Instant    bool              `json:"instant"`
	LatencyMs  int64             `json:"latency_ms"`
	Embedding  []float32         `json:"-"`
	CreatedAt  time.Time         `json:"created_at"`
}

// UtteranceWithScore pairs a recalled utterance with its similarity score.
type UtteranceWithScore struct {
	Utterance
	Score float32 `json:"score"`
}

// ConversationTurn is one entry in the rolling conversation context.
type ConversationTurn struct {
	Role string    `json:"role"` // "user" or "assistant"
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}
