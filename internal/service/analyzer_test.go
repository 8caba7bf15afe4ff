package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/novavoice/nova-core/internal/domain"
)

var analyzerNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

func newTestAnalyzer(llm *mockLLM) *AnalyzerService {
	var client domain.LLMClient
	if llm != nil {
		client = llm
	}
	s := NewAnalyzerService(client, testLogger())
	s.SetClock(func() time.Time { return analyzerNow })
	return s
}

func TestAnalyze_RuleExtraction(t *testing.T) {
	s := newTestAnalyzer(nil)

	res := s.Analyze(context.Background(), "remind me to call mom at 5pm", false)
	if !res.IsReminderRequest {
		t.Fatal("expected a reminder request")
	}
	if res.Source != "rule" {
		t.Errorf("source = %q, want rule", res.Source)
	}
	if res.Task != "Call mom" {
		t.Errorf("task = %q, want Call mom", res.Task)
	}
	if res.RawTime != "5pm" {
		t.Errorf("raw time = %q, want 5pm", res.RawTime)
	}
	if res.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", res.Confidence)
	}
	if res.ParsedTime == nil || res.ParsedTime.Hour() != 17 {
		t.Errorf("parsed time = %v, want 17:00", res.ParsedTime)
	}
}

func TestAnalyze_HindiTimeFirst(t *testing.T) {
	s := newTestAnalyzer(nil)

	res := s.Analyze(context.Background(), "kal subah yaad dilana doctor jaana hai", false)
	if !res.IsReminderRequest {
		t.Fatal("expected a reminder request")
	}
	if res.Task != "Doctor jaana" {
		t.Errorf("task = %q, want Doctor jaana", res.Task)
	}
	if res.RawTime != "kal subah" {
		t.Errorf("raw time = %q, want kal subah", res.RawTime)
	}
	if res.ParsedTime == nil {
		t.Fatal("parsed time missing")
	}
	if res.ParsedTime.Day() != analyzerNow.Day()+1 || res.ParsedTime.Hour() != 9 {
		t.Errorf("parsed time = %v, want tomorrow 09:00", res.ParsedTime)
	}
}

func TestAnalyze_NotAReminder(t *testing.T) {
	s := newTestAnalyzer(nil)

	for _, input := range []string{"", "turn on wifi", "what is the capital of france"} {
		if res := s.Analyze(context.Background(), input, false); res.IsReminderRequest {
			t.Errorf("Analyze(%q) flagged a reminder: %+v", input, res)
		}
	}
}

func TestAnalyze_NoTimeDefaultsOneHour(t *testing.T) {
	s := newTestAnalyzer(nil)

	res := s.Analyze(context.Background(), "remind me to water the plants", false)
	if !res.IsReminderRequest {
		t.Fatal("expected a reminder request")
	}
	if res.RawTime != "" {
		t.Errorf("raw time = %q, want empty", res.RawTime)
	}
	want := analyzerNow.Add(time.Hour)
	if res.ParsedTime == nil || !res.ParsedTime.Equal(want) {
		t.Errorf("parsed time = %v, want %v", res.ParsedTime, want)
	}
}

func TestAnalyze_AIFallbackWhenRulesMiss(t *testing.T) {
	llm := &mockLLM{response: "REMINDER: yes\nTASK: call the dentist\nTIME: none"}
	s := newTestAnalyzer(llm)

	// Indicator word present but no rule pattern matches.
	res := s.Analyze(context.Background(), "i need a reminder for calling the dentist", true)
	if !res.IsReminderRequest {
		t.Fatal("expected a reminder request")
	}
	if res.Source != "ai" {
		t.Errorf("source = %q, want ai", res.Source)
	}
	if res.Task != "Call the dentist" {
		t.Errorf("task = %q, want Call the dentist", res.Task)
	}
	if res.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", res.Confidence)
	}
	if len(llm.calls) != 1 {
		t.Errorf("llm calls = %d, want 1", len(llm.calls))
	}
}

func TestAnalyze_StrongRuleSkipsAI(t *testing.T) {
	llm := &mockLLM{response: "REMINDER: yes\nTASK: wrong\nTIME: none"}
	s := newTestAnalyzer(llm)

	res := s.Analyze(context.Background(), "remind me to call mom at 5pm", true)
	if res.Source != "rule" {
		t.Errorf("source = %q, want rule", res.Source)
	}
	if len(llm.calls) != 0 {
		t.Errorf("llm was consulted despite a confident rule match: %d calls", len(llm.calls))
	}
}

func TestAnalyze_AIErrorFallsBack(t *testing.T) {
	llm := &mockLLM{err: errors.New("connection refused")}
	s := newTestAnalyzer(llm)

	res := s.Analyze(context.Background(), "i need a reminder for the dentist appointment", true)
	if !res.IsReminderRequest {
		t.Fatal("indicated reminder was dropped on AI failure")
	}
	if res.Source != "fallback" {
		t.Errorf("source = %q, want fallback", res.Source)
	}
	if res.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", res.Confidence)
	}
	want := analyzerNow.Add(time.Hour)
	if res.ParsedTime == nil || !res.ParsedTime.Equal(want) {
		t.Errorf("parsed time = %v, want %v", res.ParsedTime, want)
	}
}

func TestAnalyze_AISaysNo(t *testing.T) {
	llm := &mockLLM{response: "REMINDER: no\nTASK: none\nTIME: none"}
	s := newTestAnalyzer(llm)

	// Two time words get past the pre-check without any reminder indicator;
	// with the AI declining there is nothing to fall back on.
	res := s.Analyze(context.Background(), "see you at dinner tomorrow", true)
	if res.IsReminderRequest {
		t.Errorf("expected no reminder, got %+v", res)
	}
}

func TestAnalyze_AIExtractsTimeWordInput(t *testing.T) {
	llm := &mockLLM{response: `REMINDER: yes
TASK: "meet raj"
TIME: [5pm tomorrow]`}
	s := newTestAnalyzer(llm)

	res := s.Analyze(context.Background(), "meet raj at 5pm tomorrow", true)
	if !res.IsReminderRequest {
		t.Fatal("expected a reminder request")
	}
	if res.Task != "Meet raj" {
		t.Errorf("task = %q, want Meet raj", res.Task)
	}
	if res.RawTime != "5pm tomorrow" {
		t.Errorf("raw time = %q, want 5pm tomorrow (brackets stripped)", res.RawTime)
	}
	if res.ParsedTime == nil || res.ParsedTime.Hour() != 17 || res.ParsedTime.Day() != analyzerNow.Day()+1 {
		t.Errorf("parsed time = %v, want tomorrow 17:00", res.ParsedTime)
	}
}

func TestCleanAIValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"none", ""},
		{"NULL", ""},
		{"n/a", ""},
		{"  ", ""},
		{`"call mom"`, "call mom"},
		{"[5pm]", "5pm"},
		{"'tomorrow'", "tomorrow"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := cleanAIValue(tt.in); got != tt.want {
			t.Errorf("cleanAIValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
