package domain

// ActionType is the closed set of structured actions the LLM may request via
// the JSON wire shape {"type":"action","action":"<NAME>","parameters":{...}}.
type ActionType string

const (
	ActionOpenApp        ActionType = "OPEN_APP"
	ActionToggleSetting  ActionType = "TOGGLE_SETTING"
	ActionSetTimer       ActionType = "SET_TIMER"
	ActionCreateReminder ActionType = "CREATE_REMINDER"
	ActionSearchWeb      ActionType = "SEARCH_WEB"
	ActionCallContact    ActionType = "CALL_CONTACT"
	ActionSendMessage    ActionType = "SEND_MESSAGE"
	ActionPlayMusic      ActionType = "PLAY_MUSIC"
)

// ValidActionType reports whether s (compared case-insensitively by the
// caller after upper-casing) names a known action.
func ValidActionType(s string) bool {
	switch ActionType(s) {
	case ActionOpenApp, ActionToggleSetting, ActionSetTimer, ActionCreateReminder,
		ActionSearchWeb, ActionCallContact, ActionSendMessage, ActionPlayMusic:
		return true
	}
	return false
}

// ParsedResponseKind discriminates the two variants of ParsedResponse.
type ParsedResponseKind string

const (
	ParsedAction       ParsedResponseKind = "action"
	ParsedConversation ParsedResponseKind = "conversation"
)

// ParsedResponse is the discriminator's tagged result: either a structured
// action extracted from LLM output, or the original text as conversation.
type ParsedResponse struct {
	Kind       ParsedResponseKind `json:"kind"`
	Action     ActionType         `json:"action,omitempty"`
	Parameters map[string]string  `json:"parameters,omitempty"`
	Text       string             `json:"text"`
}

// NewConversation builds the fail-open variant carrying text verbatim.
func NewConversation(text string) ParsedResponse {
	return ParsedResponse{Kind: ParsedConversation, Text: text}
}

// NewAction builds the structured-action variant.
func NewAction(action ActionType, params map[string]string, text string) ParsedResponse {
	return ParsedResponse{Kind: ParsedAction, Action: action, Parameters: params, Text: text}
}
