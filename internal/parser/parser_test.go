package parser

import (
	"testing"

	"github.com/novavoice/nova-core/internal/domain"
)

func TestParse_ActionEnvelope(t *testing.T) {
	input := `Here you go: {"type":"action","action":"OPEN_APP","parameters":{"app_name":"spotify"},"text":"Opening Spotify"}`

	got := Parse(input)
	if got.Kind != domain.ParsedAction {
		t.Fatalf("kind = %s, want action", got.Kind)
	}
	if got.Action != domain.ActionOpenApp {
		t.Errorf("action = %s, want OPEN_APP", got.Action)
	}
	if got.Parameters["app_name"] != "spotify" {
		t.Errorf("parameters = %v", got.Parameters)
	}
	if got.Text != "Opening Spotify" {
		t.Errorf("text = %q", got.Text)
	}
}

func TestParse_ActionCaseInsensitive(t *testing.T) {
	got := Parse(`{"type":"Action","action":"set_timer","parameters":{"duration":"5"},"text":"ok"}`)
	if got.Kind != domain.ParsedAction || got.Action != domain.ActionSetTimer {
		t.Errorf("got %+v, want SET_TIMER action", got)
	}
}

func TestParse_ConversationEnvelope(t *testing.T) {
	got := Parse(`{"type":"conversation","text":"The sky is blue because of Rayleigh scattering."}`)
	if got.Kind != domain.ParsedConversation {
		t.Fatalf("kind = %s, want conversation", got.Kind)
	}
	if got.Text != "The sky is blue because of Rayleigh scattering." {
		t.Errorf("text = %q", got.Text)
	}
}

func TestParse_ConversationEnvelopeEmptyText(t *testing.T) {
	input := `{"type":"conversation"}`
	got := Parse(input)
	if got.Kind != domain.ParsedConversation || got.Text != input {
		t.Errorf("empty conversation text should fall back to raw input, got %+v", got)
	}
}

func TestParse_UnknownActionFailsOpen(t *testing.T) {
	input := `{"type":"action","action":"LAUNCH_MISSILES","parameters":{},"text":"no"}`
	got := Parse(input)
	if got.Kind != domain.ParsedConversation {
		t.Errorf("unknown action should be conversation, got %+v", got)
	}
	if got.Text != input {
		t.Errorf("text = %q, want verbatim input", got.Text)
	}
}

func TestParse_PlainTextFailsOpen(t *testing.T) {
	input := "Sure, I can help with that!"
	got := Parse(input)
	if got.Kind != domain.ParsedConversation || got.Text != input {
		t.Errorf("got %+v, want conversation with verbatim text", got)
	}
}

func TestParse_RepairsSloppyJSON(t *testing.T) {
	// Trailing comma and single quotes, the usual LLM sloppiness.
	got := Parse(`{"type":"action","action":"PLAY_MUSIC","parameters":{"app_name":"spotify",},"text":"playing",}`)
	if got.Kind != domain.ParsedAction || got.Action != domain.ActionPlayMusic {
		t.Errorf("repairable JSON should still parse, got %+v", got)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"surrounded", `text before {"a":1} text after`, `{"a":1}`},
		{"nested", `{"a":{"b":1}}`, `{"a":{"b":1}}`},
		{"brace in string", `{"text":"use { and } freely"}`, `{"text":"use { and } freely"}`},
		{"escaped quote in string", `{"text":"say \"}\" loudly"}`, `{"text":"say \"}\" loudly"}`},
		{"no object", `plain text`, ""},
		{"unbalanced", `{"a":1`, ""},
		{"first of two", `{"a":1} {"b":2}`, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.input); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
