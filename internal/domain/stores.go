package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReminderStore interface {
	Create(ctx context.Context, r *Reminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reminder, error)
	List(ctx context.Context, includeFired bool) ([]Reminder, error)
	ListDue(ctx context.Context, now time.Time) ([]Reminder, error)
	MarkFired(ctx context.Context, id uuid.UUID, firedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteFiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type UtteranceStore interface {
	Create(ctx context.Context, u *Utterance) error
	Similar(ctx context.Context, embedding []float32, limit int) ([]UtteranceWithScore, error)
	CountByIntent(ctx context.Context) (map[Intent]int, error)
}

// GenerateOptions controls one LLM generation call.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float32
	Stop        []string
}

// LLMClient is the generation capability the slow path consumes. Generate
// streams tokens through onToken as they arrive (onToken may be nil) and
// returns the accumulated text. Cancellation is cooperative via ctx.
type LLMClient interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions, onToken func(token string)) (string, error)
}

// EmbeddingClient produces vector embeddings for utterance recall.
type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// AppLauncher launches an app by its package identifier.
type AppLauncher interface {
	Launch(ctx context.Context, packageID string) error
}

// DeviceController applies instant device-level effects (toggles, volume,
// brightness, screenshots). Implementations live at the platform boundary.
type DeviceController interface {
	Apply(ctx context.Context, intent Intent, params map[string]string) error
}

// Notifier schedules a future notification for a reminder or timer.
type Notifier interface {
	Schedule(ctx context.Context, id uuid.UUID, triggerAt time.Time, title string) error
	Cancel(ctx context.Context, id uuid.UUID) error
}
