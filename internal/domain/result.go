package domain

import "time"

// ClassificationResult is the outcome of a single fast-path classification.
// Confidence is a heuristic score, not a calibrated probability: a higher
// value means a stricter pattern matched.
type ClassificationResult struct {
	Intent     Intent            `json:"intent"`
	Confidence float32           `json:"confidence"`
	Params     map[string]string `json:"params,omitempty"`
}

// Param returns the named extracted parameter, or "" when absent.
func (r ClassificationResult) Param(key string) string {
	return r.Params[key]
}

// MissingParams returns the required parameter keys that are absent or blank.
func (r ClassificationResult) MissingParams() []string {
	var missing []string
	for _, key := range r.Intent.RequiredParams() {
		if r.Params[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// ReminderAnalysisResult is the outcome of the natural-language reminder
// extractor for one utterance. ParsedTime, when set, is strictly in the
// future relative to the analysis-time clock.
type ReminderAnalysisResult struct {
	IsReminderRequest bool       `json:"is_reminder_request"`
	Task              string     `json:"task,omitempty"`
	RawTime           string     `json:"raw_time,omitempty"`
	ParsedTime        *time.Time `json:"parsed_time,omitempty"`
	Confidence        float32    `json:"confidence"`
	Source            string     `json:"source,omitempty"` // "rule", "ai", or "fallback"
}

// Response is the uniform shape both routing paths resolve to.
type Response struct {
	Text       string  `json:"text"`
	Intent     Intent  `json:"intent"`
	Instant    bool    `json:"instant"`
	Success    bool    `json:"success"`
	FailReason string  `json:"fail_reason,omitempty"`
	Confidence float32 `json:"confidence"`
}
