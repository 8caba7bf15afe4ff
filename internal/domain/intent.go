package domain

// Intent is the closed set of utterance categories the fast-path matcher can
// produce. Every intent is either instant (executable without the LLM) or
// deferred (routed through LLM generation).
type Intent string

const (
	// System toggles
	IntentToggleWifi       Intent = "toggle_wifi"
	IntentToggleBluetooth  Intent = "toggle_bluetooth"
	IntentToggleFlashlight Intent = "toggle_flashlight"
	IntentToggleAirplane   Intent = "toggle_airplane"
	IntentToggleDND        Intent = "toggle_dnd"
	IntentToggleHotspot    Intent = "toggle_hotspot"
	IntentVolumeUp         Intent = "volume_up"
	IntentVolumeDown       Intent = "volume_down"
	IntentVolumeMute       Intent = "volume_mute"

	// Settings navigation
	IntentOpenSettings Intent = "open_settings"

	// Device info
	IntentBatteryStatus Intent = "battery_status"
	IntentDeviceInfo    Intent = "device_info"
	IntentCurrentTime   Intent = "current_time"
	IntentCurrentDate   Intent = "current_date"

	// Files
	IntentOpenFiles   Intent = "open_files"
	IntentSearchFiles Intent = "search_files"

	// Search
	IntentSearchWeb Intent = "search_web"

	// Quick actions
	IntentTakeNote Intent = "take_note"

	// Communication
	IntentCallContact Intent = "call_contact"
	IntentSendMessage Intent = "send_message"

	// Screen actions
	IntentTakeScreenshot Intent = "take_screenshot"
	IntentLockScreen     Intent = "lock_screen"
	IntentBrightnessUp   Intent = "brightness_up"
	IntentBrightnessDown Intent = "brightness_down"

	// Camera
	IntentOpenCamera Intent = "open_camera"
	IntentTakePhoto  Intent = "take_photo"

	// Timer
	IntentSetTimer Intent = "set_timer"

	// Music
	IntentPlayMusic     Intent = "play_music"
	IntentPauseMusic    Intent = "pause_music"
	IntentNextTrack     Intent = "next_track"
	IntentPreviousTrack Intent = "previous_track"

	// Reminders
	IntentCreateReminder Intent = "create_reminder"
	IntentShowReminders  Intent = "show_reminders"

	// App launch
	IntentOpenApp Intent = "open_app"

	// Deferred intents
	IntentKnowledgeQuery Intent = "knowledge_query"
	IntentConversation   Intent = "conversation"
	IntentUnknown        Intent = "unknown"
)

// IsInstant reports whether the intent executes on the fast path, without
// LLM involvement. This is a pure function of the intent value.
func (i Intent) IsInstant() bool {
	switch i {
	case IntentKnowledgeQuery, IntentConversation, IntentUnknown:
		return false
	}
	return true
}

// Parameter keys used in ClassificationResult.Params.
const (
	ParamState    = "state"
	ParamAppName  = "appName"
	ParamDuration = "duration"
	ParamUnit     = "unit"
	ParamTask     = "task"
	ParamTime     = "time"
	ParamQuery    = "query"
	ParamContact  = "contact"
	ParamSection  = "section"
)

// requiredParams maps intents to the parameter keys their executors need.
// Intents absent from the map require no parameters.
var requiredParams = map[Intent][]string{
	IntentToggleWifi:       {ParamState},
	IntentToggleBluetooth:  {ParamState},
	IntentToggleFlashlight: {ParamState},
	IntentToggleAirplane:   {ParamState},
	IntentToggleDND:        {ParamState},
	IntentToggleHotspot:    {ParamState},
	IntentOpenApp:          {ParamAppName},
	IntentSetTimer:         {ParamDuration, ParamUnit},
	IntentCreateReminder:   {ParamTask},
	IntentSearchWeb:        {ParamQuery},
	IntentSearchFiles:      {ParamQuery},
	IntentCallContact:      {ParamContact},
	IntentSendMessage:      {ParamContact},
}

// RequiredParams returns the parameter keys the intent's executor expects.
func (i Intent) RequiredParams() []string {
	return requiredParams[i]
}
