package service

import (
	"fmt"
	"strings"
	"testing"
)

func TestContextLog_AppendAndRender(t *testing.T) {
	log := NewContextLog(20, 8*1024)

	log.Append("user", "turn on wifi")
	log.Append("assistant", "Turn on wifi")

	turns := log.Turns()
	if len(turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(turns))
	}

	rendered := log.PromptContext()
	want := "User: turn on wifi\nAssistant: Turn on wifi\n"
	if rendered != want {
		t.Errorf("PromptContext() = %q, want %q", rendered, want)
	}
}

func TestContextLog_TurnCapEvictsOldest(t *testing.T) {
	log := NewContextLog(3, 8*1024)

	for i := 0; i < 5; i++ {
		log.Append("user", fmt.Sprintf("message %d", i))
	}

	turns := log.Turns()
	if len(turns) != 3 {
		t.Fatalf("turns = %d, want 3", len(turns))
	}
	if turns[0].Text != "message 2" {
		t.Errorf("oldest surviving turn = %q, want message 2", turns[0].Text)
	}
}

func TestContextLog_ByteBudgetEvicts(t *testing.T) {
	log := NewContextLog(100, 50)

	log.Append("user", strings.Repeat("a", 40))
	log.Append("user", strings.Repeat("b", 40))

	turns := log.Turns()
	if len(turns) != 1 {
		t.Fatalf("turns = %d, want 1 after byte eviction", len(turns))
	}
	if turns[0].Text[0] != 'b' {
		t.Error("wrong turn evicted")
	}
}

func TestContextLog_OversizeSingleTurnKept(t *testing.T) {
	log := NewContextLog(100, 50)

	// A single turn above the budget must still be retained.
	log.Append("user", strings.Repeat("x", 200))
	if len(log.Turns()) != 1 {
		t.Error("oversize single turn was dropped")
	}
}

func TestContextLog_EmptyAndClear(t *testing.T) {
	log := NewContextLog(20, 8*1024)

	if got := log.PromptContext(); got != "" {
		t.Errorf("empty PromptContext() = %q", got)
	}

	log.Append("user", "hello")
	log.Clear()
	if len(log.Turns()) != 0 {
		t.Error("Clear left turns behind")
	}
}

func TestContextLog_TurnsReturnsCopy(t *testing.T) {
	log := NewContextLog(20, 8*1024)
	log.Append("user", "original")

	turns := log.Turns()
	turns[0].Text = "mutated"

	if log.Turns()[0].Text != "original" {
		t.Error("Turns() exposed internal slice")
	}
}
