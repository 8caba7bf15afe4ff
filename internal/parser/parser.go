// Package parser classifies raw LLM output as either a structured action or
// plain conversation. The design fails open: anything that is not a
// well-formed, recognized action JSON object is surfaced verbatim as
// conversation, so malformed model output never breaks the pipeline.
package parser

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/novavoice/nova-core/internal/domain"
)

// actionEnvelope is the wire shape the LLM is prompted to emit:
// {"type":"action"|"conversation","action":"...","parameters":{...},"text":"..."}
type actionEnvelope struct {
	Type       string            `json:"type"`
	Action     string            `json:"action"`
	Parameters map[string]string `json:"parameters"`
	Text       string            `json:"text"`
}

// Parse extracts the first balanced JSON object from responseText and maps
// it to a ParsedResponse. Any extraction or validation failure yields the
// Conversation variant carrying the original text verbatim.
func Parse(responseText string) domain.ParsedResponse {
	candidate := ExtractJSON(responseText)
	if candidate == "" {
		return domain.NewConversation(responseText)
	}

	var env actionEnvelope
	if err := json.Unmarshal([]byte(candidate), &env); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(candidate)
		if repairErr != nil {
			return domain.NewConversation(responseText)
		}
		if err := json.Unmarshal([]byte(repaired), &env); err != nil {
			return domain.NewConversation(responseText)
		}
	}

	switch strings.ToLower(env.Type) {
	case "conversation":
		text := env.Text
		if text == "" {
			text = responseText
		}
		return domain.NewConversation(text)
	case "action":
		action := strings.ToUpper(strings.TrimSpace(env.Action))
		if !domain.ValidActionType(action) {
			return domain.NewConversation(responseText)
		}
		return domain.NewAction(domain.ActionType(action), env.Parameters, env.Text)
	default:
		return domain.NewConversation(responseText)
	}
}

// ExtractJSON returns the first brace-balanced {...} substring of text, or
// "" when no balanced object exists. Braces inside JSON strings are skipped,
// so this is a real scan rather than a first-to-last-brace slice.
func ExtractJSON(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}
