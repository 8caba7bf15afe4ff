// Package timeparse converts free-form bilingual (English / Hindi-Hinglish)
// time phrases into absolute timestamps. Parse is a pure function over an
// injected clock; production callers supply time.Now().
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Day-offset words, applied before any hour resolution. Multi-word phrases
// are checked before their single-word prefixes ("day after tomorrow" wins
// over "tomorrow").
var dayOffsetPhrases = []struct {
	phrase string
	days   int
}{
	{"day after tomorrow", 2},
	{"next week", 7},
	{"tomorrow", 1},
	{"tonight", 0},
	{"today", 0},
	{"parso", 2},
	{"narso", 3},
	{"tarso", 3},
	{"kal", 1},
	{"aaj", 0},
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"ravivar":   time.Sunday,
	"somvar":    time.Monday,
	"mangalvar": time.Tuesday,
	"budhvar":   time.Wednesday,
	"guruvar":   time.Thursday,
	"shukravar": time.Friday,
	"shanivar":  time.Saturday,
}

// Named time-of-day defaults, used only when no explicit hour matched.
var namedHours = []struct {
	word string
	hour int
}{
	{"subah", 9},
	{"dopahar", 13},
	{"shaam", 18},
	{"raat", 21},
	{"morning", 9},
	{"afternoon", 14},
	{"evening", 18},
	{"night", 21},
	{"tonight", 21},
}

var (
	ampmRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	bajeRe = regexp.MustCompile(`(\d{1,2})\s*baje`)
	hhmmRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	relRe  = regexp.MustCompile(`in\s+(\d+)\s*(second|sec|minute|min|hour|hr)s?`)
)

// Parse resolves text to an absolute timestamp relative to now. Resolution
// order: relative offsets, day-offset words, weekday names, then hour
// expressions (am/pm, "baje", HH:MM, named time-of-day, +1h fallback). Any
// result at or before now rolls forward by exactly one calendar day.
func Parse(text string, now time.Time) time.Time {
	norm := strings.ToLower(strings.TrimSpace(text))
	loc := now.Location()

	// "in 5 minutes" style relative expressions resolve directly.
	if m := relRe.FindStringSubmatch(norm); m != nil {
		n, _ := strconv.Atoi(m[1])
		var d time.Duration
		switch {
		case strings.HasPrefix(m[2], "sec"):
			d = time.Duration(n) * time.Second
		case strings.HasPrefix(m[2], "min"):
			d = time.Duration(n) * time.Minute
		default:
			d = time.Duration(n) * time.Hour
		}
		return now.Add(d)
	}

	dayOffset := 0
	for _, p := range dayOffsetPhrases {
		if containsWord(norm, p.phrase) {
			dayOffset = p.days
			break
		}
	}

	base := now.AddDate(0, 0, dayOffset)

	// A weekday name overrides the day offset: always the next occurrence
	// strictly after now, a full 7 days when it names today's weekday.
	for word, wd := range weekdays {
		if containsWord(norm, word) {
			ahead := (int(wd) - int(now.Weekday()) + 7) % 7
			if ahead == 0 {
				ahead = 7
			}
			base = now.AddDate(0, 0, ahead)
			break
		}
	}

	hour, minute, hourSet := resolveHour(norm)
	var result time.Time
	if hourSet {
		result = time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, loc)
	} else {
		// No hour expression at all: one hour from now on the resolved day.
		result = base.Add(time.Hour)
	}

	// Past-time correction: a flat +1 day, never a recomputation.
	if !result.After(now) {
		result = result.AddDate(0, 0, 1)
	}
	return result
}

func resolveHour(norm string) (hour, minute int, ok bool) {
	if m := ampmRe.FindStringSubmatch(norm); m != nil {
		h, _ := strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if m[3] == "pm" && h != 12 {
			h += 12
		}
		if m[3] == "am" && h == 12 {
			h = 0
		}
		return h, minute, true
	}

	if m := bajeRe.FindStringSubmatch(norm); m != nil {
		h, _ := strconv.Atoi(m[1])
		// Hours 1-11 without "subah" lean PM when an evening word is
		// present or the hour is small. Known ambiguity for 7-11 with no
		// period word; kept as-is.
		if h >= 1 && h <= 11 && !strings.Contains(norm, "subah") {
			if strings.Contains(norm, "shaam") || strings.Contains(norm, "raat") || h <= 6 {
				h += 12
			}
		}
		return h, 0, true
	}

	if m := hhmmRe.FindStringSubmatch(norm); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h <= 23 && mm <= 59 {
			return h, mm, true
		}
	}

	for _, n := range namedHours {
		if containsWord(norm, n.word) {
			return n.hour, 0, true
		}
	}

	return 0, 0, false
}

// containsWord matches phrase against norm on word boundaries; multi-word
// phrases are matched as substrings.
func containsWord(norm, phrase string) bool {
	if strings.Contains(phrase, " ") {
		return strings.Contains(norm, phrase)
	}
	for _, tok := range strings.Fields(norm) {
		if strings.Trim(tok, ".,!?") == phrase {
			return true
		}
	}
	return false
}
