package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/classify"
	"github.com/novavoice/nova-core/internal/domain"
	"github.com/novavoice/nova-core/internal/timeparse"
)

// ruleConfidenceGate: a rule-based extraction at or above this confidence
// short-circuits the AI fallback.
const ruleConfidenceGate = 0.7

type reminderPattern struct {
	re           *regexp.Regexp
	confWithTime float32
	confNoTime   float32
	hindi        bool // Hindi patterns need the task/time side decision
}

var reminderPatterns = []reminderPattern{
	{regexp.MustCompile(`(?i)remind me\s+(?:to\s+|about\s+|of\s+)?(.+?)(?:\s+(?:at|in|on|by)\s+(.+))?$`), 0.85, 0.8, false},
	{regexp.MustCompile(`(?i)set\s+(?:a\s+)?reminder\s+(?:for|to)\s+(.+?)(?:\s+(?:at|in|on)\s+(.+))?$`), 0.8, 0.75, false},
	{regexp.MustCompile(`(?i)(.+?)\s+(?:yaad dila(?:na|o|\s+dena|\s+de)?|remind kar(?:na|o)?)(?:\s+(.+))?$`), 0.8, 0.75, true},
	{regexp.MustCompile(`(?i)yaad dilana ki\s+(.+)$`), 0.75, 0.75, true},
}

// AnalyzerService is the layered natural-language reminder extractor:
// indicator pre-check, rule-based regex templates, optional AI fallback, and
// a best-effort last resort so an indicated reminder is never dropped.
type AnalyzerService struct {
	llm    domain.LLMClient
	logger *zap.Logger
	now    func() time.Time
}

func NewAnalyzerService(llm domain.LLMClient, logger *zap.Logger) *AnalyzerService {
	return &AnalyzerService{llm: llm, logger: logger, now: time.Now}
}

// SetClock overrides the clock for tests.
func (s *AnalyzerService) SetClock(now func() time.Time) {
	s.now = now
}

// Analyze extracts a reminder request from input. useAI permits delegating
// to the LLM when rule extraction is weak. Analyze never fails; collaborator
// errors degrade to the rule/fallback result.
func (s *AnalyzerService) Analyze(ctx context.Context, input string, useAI bool) domain.ReminderAnalysisResult {
	norm := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(input))), " ")
	if norm == "" {
		return domain.ReminderAnalysisResult{}
	}

	indicator := classify.ReminderIndicator(norm)
	if indicator == "" && classify.CountTimeWords(norm) < 2 {
		return domain.ReminderAnalysisResult{}
	}

	res := s.ruleExtract(norm)
	if res.IsReminderRequest && res.Confidence >= ruleConfidenceGate {
		return s.withParsedTime(res)
	}

	if useAI && s.llm != nil {
		if aiRes, ok := s.aiExtract(ctx, input); ok {
			return s.withParsedTime(aiRes)
		}
	}

	if res.IsReminderRequest {
		return s.withParsedTime(res)
	}

	// An indicator was present but nothing parsed: better a rough reminder
	// than a dropped one.
	if indicator != "" {
		task := classify.CleanTask(strings.Replace(norm, indicator, "", 1))
		parsed := s.now().Add(time.Hour)
		return domain.ReminderAnalysisResult{
			IsReminderRequest: true,
			Task:              task,
			ParsedTime:        &parsed,
			Confidence:        0.6,
			Source:            "fallback",
		}
	}

	return domain.ReminderAnalysisResult{}
}

func (s *AnalyzerService) ruleExtract(norm string) domain.ReminderAnalysisResult {
	for _, p := range reminderPatterns {
		m := p.re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		taskPart := strings.TrimSpace(m[1])
		var timePart string
		if len(m) > 2 {
			timePart = strings.TrimSpace(m[2])
		}
		if p.hindi && timePart != "" && classify.LooksLikeTime(taskPart) && !classify.LooksLikeTime(timePart) {
			taskPart, timePart = timePart, taskPart
		}

		task := classify.CleanTask(taskPart)
		if len(task) < 2 {
			continue
		}

		res := domain.ReminderAnalysisResult{
			IsReminderRequest: true,
			Task:              task,
			Confidence:        p.confNoTime,
			Source:            "rule",
		}
		if timePart != "" {
			res.RawTime = timePart
			res.Confidence = p.confWithTime
		}
		return res
	}
	return domain.ReminderAnalysisResult{}
}

// aiExtractPrompt is the wire contract with the LLM collaborator: the reply
// must be line-oriented with reminder/task/time prefixes.
const aiExtractPrompt = `Extract reminder info from this text: "%s"
Reply in exactly this format:
REMINDER: yes/no
TASK: <task or none>
TIME: <time or none>`

func (s *AnalyzerService) aiExtract(ctx context.Context, input string) (domain.ReminderAnalysisResult, bool) {
	reply, err := s.llm.Generate(ctx, fmt.Sprintf(aiExtractPrompt, input), domain.GenerateOptions{
		MaxTokens:   100,
		Temperature: 0.1,
	}, nil)
	if err != nil {
		s.logger.Warn("ai reminder extraction failed", zap.Error(err))
		return domain.ReminderAnalysisResult{}, false
	}

	var isReminder bool
	var task, rawTime string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "reminder:"):
			isReminder = strings.Contains(lower, "yes")
		case strings.HasPrefix(lower, "task:"):
			task = cleanAIValue(line[len("task:"):])
		case strings.HasPrefix(lower, "time:"):
			rawTime = cleanAIValue(line[len("time:"):])
		}
	}

	if !isReminder {
		return domain.ReminderAnalysisResult{}, false
	}
	return domain.ReminderAnalysisResult{
		IsReminderRequest: true,
		Task:              classify.CleanTask(task),
		RawTime:           rawTime,
		Confidence:        0.9,
		Source:            "ai",
	}, true
}

// cleanAIValue strips brackets and quotes and maps none/null to absent.
func cleanAIValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `[]"'`)
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "none", "null", "n/a", "":
		return ""
	}
	return v
}

// withParsedTime resolves RawTime to an absolute timestamp, or defaults to
// one hour out when a reminder has no time expression at all.
func (s *AnalyzerService) withParsedTime(res domain.ReminderAnalysisResult) domain.ReminderAnalysisResult {
	if !res.IsReminderRequest {
		return res
	}
	now := s.now()
	var parsed time.Time
	if res.RawTime != "" {
		parsed = timeparse.Parse(res.RawTime, now)
	} else {
		parsed = now.Add(time.Hour)
	}
	res.ParsedTime = &parsed
	return res
}

