package service

import (
	"strings"
	"sync"
	"time"

	"github.com/novavoice/nova-core/internal/domain"
)

const (
	defaultMaxTurns = 20
	defaultMaxBytes = 8 * 1024
)

// ContextLog is the rolling conversation context shared between turns. It is
// the single piece of mutable state in the pipeline; all access is
// serialized with a mutex so any caller thread may append.
type ContextLog struct {
	mu       sync.Mutex
	turns    []domain.ConversationTurn
	maxTurns int
	maxBytes int
}

func NewContextLog(maxTurns, maxBytes int) *ContextLog {
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &ContextLog{maxTurns: maxTurns, maxBytes: maxBytes}
}

// Append records one turn, evicting the oldest entries when either the turn
// cap or the byte budget is exceeded.
func (c *ContextLog) Append(role, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.turns = append(c.turns, domain.ConversationTurn{Role: role, Text: text, At: time.Now()})
	for len(c.turns) > c.maxTurns || c.size() > c.maxBytes {
		if len(c.turns) <= 1 {
			break
		}
		c.turns = c.turns[1:]
	}
}

func (c *ContextLog) size() int {
	total := 0
	for _, t := range c.turns {
		total += len(t.Text)
	}
	return total
}

// Turns returns a copy of the current context.
func (c *ContextLog) Turns() []domain.ConversationTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ConversationTurn, len(c.turns))
	copy(out, c.turns)
	return out
}

// PromptContext renders the context as "User: ...\nAssistant: ..." lines for
// prompt building. Returns "" when the log is empty.
func (c *ContextLog) PromptContext() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.turns) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, t := range c.turns {
		switch t.Role {
		case "user":
			sb.WriteString("User: ")
		default:
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(t.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Clear drops all turns.
func (c *ContextLog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = nil
}
