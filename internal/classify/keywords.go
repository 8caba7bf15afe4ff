package classify

// Keyword tables for the fast-path matcher. All tables are package-level and
// read-only after init so the rule data can be tested independently of the
// matching logic.

// Shared toggle modifiers.
var (
	onKeywords     = []string{"on", "enable", "enabled", "chalu", "activate", "shuru"}
	offKeywords    = []string{"off", "disable", "disabled", "band", "deactivate", "bandh"}
	toggleKeywords = []string{"toggle", "flip", "switch"}

	onPhrases  = []string{"turn on", "switch on", "chalu karo", "chalu kar"}
	offPhrases = []string{"turn off", "switch off", "band karo", "band kar"}
)

// Toggle-category keyword sets.
var (
	wifiKeywords       = []string{"wifi", "wi-fi", "wi fi", "wireless"}
	bluetoothKeywords  = []string{"bluetooth", "bt"}
	flashlightKeywords = []string{"flashlight", "torch", "flash light"}
	airplaneKeywords   = []string{"airplane mode", "flight mode", "aeroplane mode"}
	dndKeywords        = []string{"do not disturb", "dnd", "silent mode"}
	hotspotKeywords    = []string{"hotspot", "tethering"}
)

// Volume keywords.
var (
	volumeKeywords     = []string{"volume", "sound", "awaaz", "awaz"}
	volumeUpKeywords   = []string{"up", "increase", "raise", "badhao", "badha"}
	volumeDownKeywords = []string{"down", "decrease", "lower", "kam", "ghatao"}
	muteKeywords       = []string{"mute", "silence", "silent", "chup"}
)

// Settings navigation.
var (
	settingsKeywords = []string{"settings", "setting"}
	settingsSections = map[string]string{
		"wifi":          "wifi",
		"wi-fi":         "wifi",
		"bluetooth":     "bluetooth",
		"display":       "display",
		"brightness":    "display",
		"sound":         "sound",
		"battery":       "battery",
		"storage":       "storage",
		"network":       "network",
		"notification":  "notifications",
		"notifications": "notifications",
		"privacy":       "privacy",
		"security":      "security",
	}
)

// Device info.
var (
	batteryKeywords    = []string{"battery", "charge", "charging"}
	deviceInfoKeywords = []string{"device info", "phone info", "about phone", "device information"}
	timeKeywords       = []string{"time", "samay", "baj raha", "baj rahe"}
	dateKeywords       = []string{"date", "tareekh", "aaj ka din"}
)

// Files.
var (
	filesKeywords      = []string{"files", "file manager", "documents", "downloads"}
	fileSearchKeywords = []string{"find file", "search file", "file dhundo"}
)

// Web search.
var (
	searchKeywords = []string{"search", "google", "look up", "dhundo", "khojo"}
)

// Quick actions.
var (
	noteKeywords = []string{"note", "take a note", "note down", "likho"}
)

// Communication.
var (
	callKeywords    = []string{"call", "phone", "dial", "ring"}
	messageKeywords = []string{"message", "text", "sms", "whatsapp"}
	sendKeywords    = []string{"send", "bhejo", "bhej"}
)

// Screen actions.
var (
	screenshotKeywords = []string{"screenshot", "screen shot", "capture screen"}
	lockKeywords       = []string{"lock the screen", "lock screen", "lock my phone", "lock phone", "screen lock"}
	brightnessKeywords = []string{"brightness", "screen light", "roshni"}
)

// Camera.
var (
	cameraKeywords = []string{"camera", "selfie"}
	photoKeywords  = []string{"photo", "picture", "pic", "click"}
)

// Timer.
var (
	timerKeywords = []string{"timer", "alarm", "countdown"}
)

// Music.
var (
	musicKeywords = []string{"music", "song", "gaana", "gana", "track"}
	playKeywords  = []string{"play", "bajao", "chalao", "resume"}
	pauseKeywords = []string{"pause", "stop", "roko", "ruko"}
	nextKeywords  = []string{"next", "skip", "agla"}
	prevKeywords  = []string{"previous", "back", "last", "pichla"}
)

// Reminder indicators shared with the extractor pipeline. Longer phrases
// come first so ReminderIndicator reports the most specific match.
var (
	reminderKeywordsEN = []string{
		"remind me", "set a reminder", "set reminder", "reminder", "remind",
		"don't forget", "dont forget",
	}
	reminderKeywordsHI = []string{"yaad dilana", "yaad dila", "yaad rakhna", "yaad karwana", "bhulna mat"}
	showRemindersKw    = []string{"show reminders", "my reminders", "list reminders", "reminders dikhao"}

	reminderIndicators = append(append([]string{}, reminderKeywordsEN...), reminderKeywordsHI...)
)

// Time-indicator words, shared with the reminder extractor's pre-check and
// the task-vs-time side decision in Hindi reminder patterns.
var timeIndicatorWords = []string{
	"at", "in", "on", "am", "pm", "baje", "subah", "dopahar", "shaam", "raat",
	"kal", "aaj", "parso", "narso", "tarso", "tomorrow", "today", "tonight",
	"morning", "afternoon", "evening", "night", "minute", "minutes", "hour",
	"hours", "second", "seconds", "o'clock", "oclock", "baad", "week",
}

// App launch.
var (
	openKeywords = []string{"open", "launch", "start", "kholo", "khol"}
	articles     = []string{"the", "a", "an"}
)

// Knowledge-query question indicators.
var questionWords = []string{
	"what", "how", "why", "who", "whom", "when", "where", "which",
	"explain", "describe", "define", "tell me about", "difference between",
	"meaning of", "kya hai", "kaise", "kyun", "kaun", "kab", "kahan", "batao",
}
