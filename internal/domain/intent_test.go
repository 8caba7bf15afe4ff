package domain

import "testing"

func TestIsInstant(t *testing.T) {
	tests := []struct {
		intent Intent
		want   bool
	}{
		{IntentToggleWifi, true},
		{IntentSetTimer, true},
		{IntentCreateReminder, true},
		{IntentOpenApp, true},
		{IntentCurrentTime, true},
		{IntentKnowledgeQuery, false},
		{IntentConversation, false},
		{IntentUnknown, false},
	}

	for _, tt := range tests {
		if got := tt.intent.IsInstant(); got != tt.want {
			t.Errorf("%s.IsInstant() = %v, want %v", tt.intent, got, tt.want)
		}
	}
}

func TestMissingParams(t *testing.T) {
	res := ClassificationResult{
		Intent: IntentSetTimer,
		Params: map[string]string{ParamDuration: "10"},
	}
	missing := res.MissingParams()
	if len(missing) != 1 || missing[0] != ParamUnit {
		t.Errorf("missing = %v, want [unit]", missing)
	}

	res.Params[ParamUnit] = "minute"
	if got := res.MissingParams(); len(got) != 0 {
		t.Errorf("missing = %v, want none", got)
	}

	// Intents with no requirements never report missing params.
	if got := (ClassificationResult{Intent: IntentTakeScreenshot}).MissingParams(); len(got) != 0 {
		t.Errorf("missing = %v, want none", got)
	}
}

func TestValidActionType(t *testing.T) {
	for _, valid := range []string{"OPEN_APP", "TOGGLE_SETTING", "SET_TIMER", "CREATE_REMINDER",
		"SEARCH_WEB", "CALL_CONTACT", "SEND_MESSAGE", "PLAY_MUSIC"} {
		if !ValidActionType(valid) {
			t.Errorf("ValidActionType(%s) = false", valid)
		}
	}
	for _, invalid := range []string{"", "open_app", "DELETE_EVERYTHING"} {
		if ValidActionType(invalid) {
			t.Errorf("ValidActionType(%s) = true", invalid)
		}
	}
}
