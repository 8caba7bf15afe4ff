package timeparse

import (
	"testing"
	"time"
)

// Monday 2025-06-02, 10:00 local.
var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

func TestParse_RelativeOffsets(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"in 5 minutes", testNow.Add(5 * time.Minute)},
		{"in 30 seconds", testNow.Add(30 * time.Second)},
		{"in 2 hours", testNow.Add(2 * time.Hour)},
		{"in 1 hr", testNow.Add(time.Hour)},
		{"call me in 10 mins", testNow.Add(10 * time.Minute)},
	}

	for _, tt := range tests {
		got := Parse(tt.input, testNow)
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_DayOffsets(t *testing.T) {
	tests := []struct {
		input    string
		wantDay  int
		wantHour int
	}{
		{"tomorrow at 5pm", 3, 17},
		{"kal shaam", 3, 18},
		{"parso dopahar", 4, 13},
		{"narso subah", 5, 9},
		{"day after tomorrow at 9am", 4, 9},
		{"next week at 11am", 9, 11},
		{"aaj raat", 2, 21},
	}

	for _, tt := range tests {
		got := Parse(tt.input, testNow)
		if got.Day() != tt.wantDay || got.Hour() != tt.wantHour {
			t.Errorf("Parse(%q) = %v, want day %d hour %d", tt.input, got, tt.wantDay, tt.wantHour)
		}
	}
}

func TestParse_WeekdayAlwaysFuture(t *testing.T) {
	// testNow is a Monday; "monday" must mean next Monday, not today.
	got := Parse("monday at 3pm", testNow)
	want := time.Date(2025, 6, 9, 15, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Parse(monday at 3pm) = %v, want %v", got, want)
	}

	// Friday is 4 days ahead.
	got = Parse("shukravar shaam", testNow)
	if got.Weekday() != time.Friday || got.Hour() != 18 {
		t.Errorf("Parse(shukravar shaam) = %v, want Friday 18:00", got)
	}
	if !got.After(testNow) {
		t.Errorf("weekday result %v not after now %v", got, testNow)
	}
}

func TestParse_HourPriority(t *testing.T) {
	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
	}{
		{"at 5pm", 17, 0},
		{"at 5:30pm", 17, 30},
		{"at 12am", 0, 0},
		{"at 12pm", 12, 0},
		{"at 14:30", 14, 30},
		{"9 baje subah", 9, 0},
		{"8 baje shaam", 20, 0},
		{"5 baje", 17, 0},   // small hour leans PM
		{"raat ko 9 baje", 21, 0},
		{"evening", 18, 0},
		{"dopahar", 13, 0},
	}

	for _, tt := range tests {
		got := Parse(tt.input, testNow)
		if got.Hour() != tt.wantHour || got.Minute() != tt.wantMinute {
			t.Errorf("Parse(%q) = %02d:%02d, want %02d:%02d",
				tt.input, got.Hour(), got.Minute(), tt.wantHour, tt.wantMinute)
		}
	}
}

func TestParse_AmPmBeatsNamedHour(t *testing.T) {
	// Explicit "7am" wins over the "shaam" default.
	got := Parse("kal shaam nahi, 7am", testNow)
	if got.Hour() != 7 {
		t.Errorf("got hour %d, want 7", got.Hour())
	}
}

func TestParse_PastRollsForwardOneDay(t *testing.T) {
	// 9am has already passed at 10:00; same clock time next day.
	got := Parse("at 9am", testNow)
	want := time.Date(2025, 6, 3, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Parse(at 9am) = %v, want %v", got, want)
	}
}

func TestParse_NoTimeExpression(t *testing.T) {
	// Nothing recognizable resolves to one hour from now.
	got := Parse("whenever you can", testNow)
	want := testNow.Add(time.Hour)
	if !got.Equal(want) {
		t.Errorf("Parse(no time) = %v, want %v", got, want)
	}
}

func TestParse_TomorrowWithoutHour(t *testing.T) {
	// Day offset but no hour: base day plus one hour from now's clock time.
	got := Parse("tomorrow", testNow)
	want := testNow.AddDate(0, 0, 1).Add(time.Hour)
	if !got.Equal(want) {
		t.Errorf("Parse(tomorrow) = %v, want %v", got, want)
	}
}

func TestParse_KalInsideWordDoesNotMatch(t *testing.T) {
	// "kal" must match as a whole word, not inside "kalam".
	got := Parse("kalam at 4pm", testNow)
	if got.Day() != testNow.Day() {
		t.Errorf("Parse(kalam at 4pm) moved the day: %v", got)
	}
}
