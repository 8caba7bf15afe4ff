package classify

import (
	"regexp"
	"strings"

	"github.com/novavoice/nova-core/internal/domain"
)

// utterance is the normalized view of one input that every checker sees.
type utterance struct {
	norm   string
	tokens []string
}

func newUtterance(raw string) utterance {
	norm := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(raw))), " ")
	return utterance{norm: norm, tokens: strings.Fields(norm)}
}

// hasToken reports whether kw appears as a whole token, with the bounded
// fuzzy fallback for longer words.
func (u utterance) hasToken(kw string) bool {
	for _, tok := range u.tokens {
		if tok == kw || fuzzyEqual(tok, kw) {
			return true
		}
	}
	return false
}

// hasKeyword matches multi-word keywords as substrings of the normalized
// input and single words as whole tokens.
func (u utterance) hasKeyword(kw string) bool {
	if strings.Contains(kw, " ") || strings.Contains(kw, "-") {
		return strings.Contains(u.norm, kw)
	}
	return u.hasToken(kw)
}

func (u utterance) hasAny(kws []string) bool {
	for _, kw := range kws {
		if u.hasKeyword(kw) {
			return true
		}
	}
	return false
}

func (u utterance) containsAny(phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(u.norm, p) {
			return true
		}
	}
	return false
}

// resolveState maps toggle modifiers to "off", "on" or "toggle". The empty
// string means no modifier was present at all. Off is checked before on so
// that "turn off" wins over a stray "on" substring.
func (u utterance) resolveState() string {
	if u.containsAny(offPhrases) || u.hasAny(offKeywords) {
		return "off"
	}
	if u.containsAny(onPhrases) || u.hasAny(onKeywords) {
		return "on"
	}
	if u.hasAny(toggleKeywords) {
		return "toggle"
	}
	return ""
}

func result(intent domain.Intent, conf float32, params map[string]string) *domain.ClassificationResult {
	return &domain.ClassificationResult{Intent: intent, Confidence: conf, Params: params}
}

func stateConfidence(state string) float32 {
	if state == "on" || state == "off" {
		return 0.95
	}
	return 0.9
}

// checkSystemToggles covers WiFi, Bluetooth, flashlight, airplane mode, DND,
// hotspot and volume. Most toggle categories require an explicit modifier so
// a bare mention does not fire; airplane mode and DND are the two exceptions
// and fire on keyword alone with a default "toggle" state.
func checkSystemToggles(u utterance) *domain.ClassificationResult {
	type toggleRule struct {
		intent       domain.Intent
		keywords     []string
		bareTriggers bool
	}
	rules := []toggleRule{
		{domain.IntentToggleWifi, wifiKeywords, false},
		{domain.IntentToggleBluetooth, bluetoothKeywords, false},
		{domain.IntentToggleFlashlight, flashlightKeywords, false},
		{domain.IntentToggleAirplane, airplaneKeywords, true},
		{domain.IntentToggleDND, dndKeywords, true},
		{domain.IntentToggleHotspot, hotspotKeywords, false},
	}

	state := u.resolveState()
	for _, rule := range rules {
		if !u.hasAny(rule.keywords) {
			continue
		}
		if state == "" {
			if !rule.bareTriggers {
				continue
			}
			return result(rule.intent, 0.85, map[string]string{domain.ParamState: "toggle"})
		}
		return result(rule.intent, stateConfidence(state), map[string]string{domain.ParamState: state})
	}

	if u.hasAny(volumeKeywords) {
		switch {
		case u.hasAny(muteKeywords):
			return result(domain.IntentVolumeMute, 0.95, nil)
		case u.hasAny(volumeUpKeywords):
			return result(domain.IntentVolumeUp, 0.95, nil)
		case u.hasAny(volumeDownKeywords):
			return result(domain.IntentVolumeDown, 0.95, nil)
		}
	}
	return nil
}

// checkSettings routes "open wifi settings" style requests to the settings
// navigator. It runs after the toggle group, so toggles with explicit
// modifiers have already been taken.
func checkSettings(u utterance) *domain.ClassificationResult {
	if !u.hasAny(settingsKeywords) {
		return nil
	}
	for key, section := range settingsSections {
		if u.hasKeyword(key) {
			return result(domain.IntentOpenSettings, 0.9, map[string]string{domain.ParamSection: section})
		}
	}
	return result(domain.IntentOpenSettings, 0.85, nil)
}

// checkDeviceInfo gates on the time/date keyword tables. The bare English
// words "time" and "date" are too ambiguous to fire alone and need a
// question phrasing or qualifier next to them; the Hindi entries are
// unambiguous and fire by themselves.
func checkDeviceInfo(u utterance) *domain.ClassificationResult {
	if u.containsAny(deviceInfoKeywords) {
		return result(domain.IntentDeviceInfo, 0.9, nil)
	}
	if u.hasAny(batteryKeywords) {
		return result(domain.IntentBatteryStatus, 0.9, nil)
	}
	if u.hasAny(timeKeywords) {
		if u.containsAny([]string{"what time", "time kya"}) ||
			u.hasAny([]string{"tell", "current", "abhi"}) ||
			!u.hasToken("time") {
			return result(domain.IntentCurrentTime, 0.9, nil)
		}
	}
	if u.hasAny(dateKeywords) {
		if u.containsAny([]string{"what date", "what's the date"}) ||
			u.hasAny([]string{"today", "what", "aaj", "tell"}) ||
			!u.hasToken("date") {
			return result(domain.IntentCurrentDate, 0.9, nil)
		}
	}
	return nil
}

var fileSearchRe = regexp.MustCompile(`(?:find|search)\s+(?:for\s+)?(?:a\s+)?file(?:s)?\s+(?:named\s+|called\s+)?(.+)$`)

func checkFiles(u utterance) *domain.ClassificationResult {
	if m := fileSearchRe.FindStringSubmatch(u.norm); m != nil {
		return result(domain.IntentSearchFiles, 0.85, map[string]string{domain.ParamQuery: strings.TrimSpace(m[1])})
	}
	if u.containsAny(fileSearchKeywords) {
		return result(domain.IntentSearchFiles, 0.8, nil)
	}
	if u.hasAny(filesKeywords) && u.hasAny(openKeywords) {
		return result(domain.IntentOpenFiles, 0.85, nil)
	}
	return nil
}

var searchRe = regexp.MustCompile(`(?:search(?:\s+for)?|google|look up|dhundo|khojo)\s+(.+)$`)

func checkSearch(u utterance) *domain.ClassificationResult {
	if !u.hasAny(searchKeywords) {
		return nil
	}
	if m := searchRe.FindStringSubmatch(u.norm); m != nil {
		query := strings.TrimSpace(m[1])
		if query != "" {
			return result(domain.IntentSearchWeb, 0.85, map[string]string{domain.ParamQuery: query})
		}
	}
	return nil
}

var noteRe = regexp.MustCompile(`(?:take a note|note down|write down|likho)\s*(?:that\s+|ki\s+)?(.*)$`)

func checkQuickActions(u utterance) *domain.ClassificationResult {
	if !u.hasAny(noteKeywords) {
		return nil
	}
	if m := noteRe.FindStringSubmatch(u.norm); m != nil {
		params := map[string]string{}
		if text := strings.TrimSpace(m[1]); text != "" {
			params["text"] = text
		}
		return result(domain.IntentTakeNote, 0.85, params)
	}
	return nil
}

var (
	callRe    = regexp.MustCompile(`(?:call|phone|dial|ring)\s+(?:to\s+)?(.+)$`)
	messageRe = regexp.MustCompile(`(?:send (?:a )?(?:message|text|sms)|message|text|sms)\s+(?:to\s+)?(.+)$`)
)

// checkCommunication takes genuine call/message commands. A reminder
// indicator anywhere in the utterance means the call/text verb belongs to
// the reminder task ("remind me to call mom at 5pm"), so the whole phrase
// is left for the reminder checker.
func checkCommunication(u utterance) *domain.ClassificationResult {
	if ReminderIndicator(u.norm) != "" {
		return nil
	}
	if u.hasAny(callKeywords) {
		if m := callRe.FindStringSubmatch(u.norm); m != nil {
			contact := strings.TrimSpace(m[1])
			if contact != "" {
				return result(domain.IntentCallContact, 0.9, map[string]string{domain.ParamContact: contact})
			}
		}
	}
	if u.hasAny(messageKeywords) && (u.hasAny(sendKeywords) || strings.HasPrefix(u.norm, "message") || strings.HasPrefix(u.norm, "text")) {
		if m := messageRe.FindStringSubmatch(u.norm); m != nil {
			contact := strings.TrimSpace(m[1])
			if contact != "" {
				return result(domain.IntentSendMessage, 0.85, map[string]string{domain.ParamContact: contact})
			}
		}
	}
	return nil
}

func checkScreen(u utterance) *domain.ClassificationResult {
	if u.containsAny(screenshotKeywords) {
		return result(domain.IntentTakeScreenshot, 0.95, nil)
	}
	if u.containsAny(lockKeywords) {
		return result(domain.IntentLockScreen, 0.95, nil)
	}
	if u.hasAny(brightnessKeywords) {
		switch {
		case u.hasAny(volumeUpKeywords) || u.containsAny([]string{"brighter", "full"}):
			return result(domain.IntentBrightnessUp, 0.9, nil)
		case u.hasAny(volumeDownKeywords) || u.containsAny([]string{"dimmer", "dim"}):
			return result(domain.IntentBrightnessDown, 0.9, nil)
		}
	}
	return nil
}

func checkCamera(u utterance) *domain.ClassificationResult {
	if u.hasAny(photoKeywords) && u.hasAny([]string{"take", "click", "capture", "khicho", "le"}) {
		return result(domain.IntentTakePhoto, 0.9, nil)
	}
	if u.hasAny(cameraKeywords) {
		if u.hasAny(openKeywords) || u.hasToken("selfie") {
			return result(domain.IntentOpenCamera, 0.9, nil)
		}
	}
	return nil
}

var timerRe = regexp.MustCompile(`(\d+)\s*([a-z]+)?`)

// checkTimer requires an explicit timer/alarm token plus a number. The unit
// is normalized by prefix: sec* → second, min* → minute, anything else
// (including no unit) defaults to hour.
func checkTimer(u utterance) *domain.ClassificationResult {
	if !u.hasAny(timerKeywords) {
		return nil
	}
	m := timerRe.FindStringSubmatch(u.norm)
	if m == nil {
		return nil
	}
	unit := "hour"
	switch {
	case strings.HasPrefix(m[2], "sec"):
		unit = "second"
	case strings.HasPrefix(m[2], "min"):
		unit = "minute"
	}
	return result(domain.IntentSetTimer, 0.95, map[string]string{
		domain.ParamDuration: m[1],
		domain.ParamUnit:     unit,
	})
}

func checkMusic(u utterance) *domain.ClassificationResult {
	hasMusic := u.hasAny(musicKeywords)
	switch {
	case hasMusic && u.hasAny(pauseKeywords):
		return result(domain.IntentPauseMusic, 0.9, nil)
	case u.hasAny(nextKeywords) && (hasMusic || u.hasToken("skip")):
		return result(domain.IntentNextTrack, 0.85, nil)
	case u.hasAny(prevKeywords) && hasMusic:
		return result(domain.IntentPreviousTrack, 0.85, nil)
	case hasMusic && u.hasAny(playKeywords):
		return result(domain.IntentPlayMusic, 0.9, nil)
	}
	return nil
}

var (
	remindEnRe = regexp.MustCompile(`remind me\s+(?:to\s+|about\s+|of\s+)?(.+?)(?:\s+(?:at|in|on|by)\s+(.+))?$`)
	remindHiRe = regexp.MustCompile(`(.+?)\s+yaad dila(?:na|o| dena| de)?(?:\s+(.+))?$`)
)

// ReminderIndicator returns the first reminder-indicator phrase contained in
// s, or "" when none is present. Shared with the reminder extractor.
func ReminderIndicator(s string) string {
	for _, ind := range reminderIndicators {
		if strings.Contains(s, ind) {
			return ind
		}
	}
	return ""
}

// CountTimeWords counts the distinct time-indicator words appearing as
// whole tokens in s.
func CountTimeWords(s string) int {
	seen := map[string]bool{}
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		for _, w := range timeIndicatorWords {
			if tok == w {
				seen[w] = true
			}
		}
	}
	return len(seen)
}

// LooksLikeTime reports whether the phrase contains any time-indicator word.
func LooksLikeTime(s string) bool {
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		for _, w := range timeIndicatorWords {
			if tok == w {
				return true
			}
		}
	}
	return false
}

// checkReminder handles fast-path reminder phrasings in both languages. The
// layered extractor in the service layer handles everything this misses.
func checkReminder(u utterance) *domain.ClassificationResult {
	if u.containsAny(showRemindersKw) {
		return result(domain.IntentShowReminders, 0.9, nil)
	}

	if strings.Contains(u.norm, "remind me") {
		if m := remindEnRe.FindStringSubmatch(u.norm); m != nil {
			task := CleanTask(m[1])
			if task != "" {
				params := map[string]string{domain.ParamTask: task}
				conf := float32(0.8)
				if m[2] != "" {
					params[domain.ParamTime] = strings.TrimSpace(m[2])
					conf = 0.85
				}
				return result(domain.IntentCreateReminder, conf, params)
			}
		}
	}

	if strings.Contains(u.norm, "yaad dila") {
		if m := remindHiRe.FindStringSubmatch(u.norm); m != nil {
			pre, post := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			// "kal subah yaad dilana doctor jaana hai": the time phrase
			// precedes the indicator and the task follows it. Decide sides
			// by which segment carries time-indicator words.
			taskPart, timePart := pre, post
			if post != "" && LooksLikeTime(pre) && !LooksLikeTime(post) {
				taskPart, timePart = post, pre
			}
			task := CleanTask(taskPart)
			if task != "" {
				params := map[string]string{domain.ParamTask: task}
				conf := float32(0.8)
				if timePart != "" {
					params[domain.ParamTime] = timePart
					conf = 0.85
				}
				return result(domain.IntentCreateReminder, conf, params)
			}
		}
	}
	return nil
}

// CleanTask strips leading connector words, trailing Hinglish fillers and
// dangling time phrases from an extracted task, then capitalizes the first
// letter. Shared by the matcher and the reminder extractor.
func CleanTask(task string) string {
	task = strings.TrimSpace(task)

	leading := []string{"to ", "about ", "of ", "that ", "ki ", "ke ", "ka ", "mujhe "}
	for changed := true; changed; {
		changed = false
		for _, prefix := range leading {
			if strings.HasPrefix(task, prefix) {
				task = strings.TrimSpace(strings.TrimPrefix(task, prefix))
				changed = true
			}
		}
	}

	trailing := []string{" hai", " he", " h", " hain"}
	for _, suffix := range trailing {
		if strings.HasSuffix(task, suffix) {
			task = strings.TrimSpace(strings.TrimSuffix(task, suffix))
			break
		}
	}

	if task == "" {
		return ""
	}
	return strings.ToUpper(task[:1]) + task[1:]
}

func checkOpenApp(resolver *AppResolver) checker {
	return func(u utterance) *domain.ClassificationResult {
		var rest string
		for _, kw := range openKeywords {
			if strings.HasPrefix(u.norm, kw+" ") {
				rest = strings.TrimSpace(strings.TrimPrefix(u.norm, kw+" "))
				break
			}
		}
		if rest == "" {
			return nil
		}
		for _, art := range articles {
			if strings.HasPrefix(rest, art+" ") {
				rest = strings.TrimSpace(strings.TrimPrefix(rest, art+" "))
				break
			}
		}
		if rest == "" {
			return nil
		}
		params := map[string]string{domain.ParamAppName: rest}
		if resolver != nil {
			if pkg := resolver.Resolve(rest); pkg != "" {
				params["packageId"] = pkg
			}
		}
		return result(domain.IntentOpenApp, 0.9, params)
	}
}

// checkKnowledge classifies question-shaped input as a knowledge query.
func checkKnowledge(u utterance) *domain.ClassificationResult {
	if strings.HasSuffix(u.norm, "?") {
		return result(domain.IntentKnowledgeQuery, 0.9, map[string]string{domain.ParamQuery: u.norm})
	}
	for _, qw := range questionWords {
		if strings.HasPrefix(u.norm, qw+" ") || strings.Contains(u.norm, " "+qw+" ") ||
			strings.HasSuffix(u.norm, " "+qw) || u.norm == qw {
			return result(domain.IntentKnowledgeQuery, 0.9, map[string]string{domain.ParamQuery: u.norm})
		}
	}
	return nil
}
