package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/classify"
	"github.com/novavoice/nova-core/internal/domain"
	"github.com/novavoice/nova-core/internal/parser"
)

// ErrSuperseded is returned when a newer utterance cancels an in-flight
// generation; the partial accumulation is discarded, never appended to the
// conversation context.
var ErrSuperseded = errors.New("query superseded")

// systemPrompt is the fixed preamble for the slow path. It binds the LLM to
// the action/conversation JSON wire shape the discriminator understands.
const systemPrompt = `You are Nova, a helpful voice assistant. Answer concisely in plain text.
If the user asks you to perform a device action, reply with exactly one JSON object:
{"type":"action","action":"<ACTION_NAME>","parameters":{...},"text":"<what to say>"}
Known actions: OPEN_APP, TOGGLE_SETTING, SET_TIMER, CREATE_REMINDER, SEARCH_WEB, CALL_CONTACT, SEND_MESSAGE, PLAY_MUSIC.
For anything else reply with plain conversational text.`

// RouterService is the two-speed dispatcher: instant intents execute
// synchronously and never touch the LLM; everything else flows through
// reminder analysis and then streamed LLM generation.
type RouterService struct {
	classifier *classify.Classifier
	executor   *ExecutorService
	analyzer   *AnalyzerService
	reminders  *ReminderService
	llm        domain.LLMClient
	ctxLog     *ContextLog
	history    *HistoryService
	logger     *zap.Logger

	useAI       bool
	maxTokens   int
	temperature float32
}

func NewRouterService(
	classifier *classify.Classifier,
	executor *ExecutorService,
	analyzer *AnalyzerService,
	reminders *ReminderService,
	llm domain.LLMClient,
	ctxLog *ContextLog,
	history *HistoryService,
	useAI bool,
	logger *zap.Logger,
) *RouterService {
	return &RouterService{
		classifier:  classifier,
		executor:    executor,
		analyzer:    analyzer,
		reminders:   reminders,
		llm:         llm,
		ctxLog:      ctxLog,
		history:     history,
		logger:      logger,
		useAI:       useAI,
		maxTokens:   512,
		temperature: 0.7,
	}
}

// ProcessQuery routes one utterance. onToken (may be nil) receives slow-path
// tokens as they stream in. Unexpected panics are converted to a generic
// failure response at this boundary so the conversation loop never dies.
func (s *RouterService) ProcessQuery(ctx context.Context, query string, onToken func(string)) (resp domain.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("query processing panicked", zap.Any("panic", r))
			resp = domain.Response{
				Text:       "Sorry, something went wrong handling that.",
				Intent:     domain.IntentUnknown,
				FailReason: fmt.Sprintf("internal error: %v", r),
			}
		}
	}()

	start := time.Now()
	res := s.classifier.Classify(query)
	latency := time.Since(start)

	s.logger.Debug("classified utterance",
		zap.String("intent", string(res.Intent)),
		zap.Float32("confidence", res.Confidence),
		zap.Duration("latency", latency))

	if s.history != nil {
		s.history.Record(query, res, latency)
	}

	if res.Intent.IsInstant() {
		resp = s.executor.Execute(ctx, res)
		s.ctxLog.Append("user", query)
		s.ctxLog.Append("assistant", resp.Text)
		return resp
	}

	return s.slowPath(ctx, query, res, onToken)
}

func (s *RouterService) slowPath(ctx context.Context, query string, res domain.ClassificationResult, onToken func(string)) domain.Response {
	// The utterance may still be a reminder the fast-path patterns missed.
	if analysis := s.analyzer.Analyze(ctx, query, s.useAI); analysis.IsReminderRequest {
		return s.reminderPath(ctx, query, analysis)
	}

	if s.llm == nil {
		return domain.Response{
			Text:       "The assistant model is not available right now.",
			Intent:     res.Intent,
			FailReason: "llm unavailable",
			Confidence: res.Confidence,
		}
	}

	prompt := s.buildPrompt(query)
	full, err := s.llm.Generate(ctx, prompt, domain.GenerateOptions{
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}, onToken)
	if err != nil {
		if ctx.Err() != nil {
			// Superseded by a newer utterance: discard the accumulation.
			return domain.Response{
				Intent:     res.Intent,
				FailReason: ErrSuperseded.Error(),
				Confidence: res.Confidence,
			}
		}
		s.logger.Error("llm generation failed", zap.Error(err))
		return domain.Response{
			Text:       "I couldn't reach the assistant model.",
			Intent:     res.Intent,
			FailReason: err.Error(),
			Confidence: res.Confidence,
		}
	}

	parsed := parser.Parse(full)
	var resp domain.Response
	if parsed.Kind == domain.ParsedAction {
		resp = s.executor.ExecuteAction(ctx, parsed)
		if parsed.Text != "" && resp.Success {
			resp.Text = parsed.Text
		}
		resp.Instant = false
	} else {
		resp = domain.Response{
			Text:       parsed.Text,
			Intent:     res.Intent,
			Success:    true,
			Confidence: res.Confidence,
		}
	}

	s.ctxLog.Append("user", query)
	s.ctxLog.Append("assistant", resp.Text)
	return resp
}

func (s *RouterService) reminderPath(ctx context.Context, query string, analysis domain.ReminderAnalysisResult) domain.Response {
	if s.reminders == nil {
		return domain.Response{
			Text:       "Reminders are not available right now.",
			Intent:     domain.IntentCreateReminder,
			FailReason: "reminder service unavailable",
			Confidence: analysis.Confidence,
		}
	}

	r, err := s.reminders.CreateFromAnalysis(ctx, analysis)
	if err != nil {
		return domain.Response{
			Text:       "I couldn't save that reminder.",
			Intent:     domain.IntentCreateReminder,
			FailReason: err.Error(),
			Confidence: analysis.Confidence,
		}
	}

	resp := domain.Response{
		Text:       fmt.Sprintf("Reminder set: %s at %s", r.Task, r.TriggerAt.Format("Mon 15:04")),
		Intent:     domain.IntentCreateReminder,
		Instant:    true,
		Success:    true,
		Confidence: analysis.Confidence,
	}
	s.ctxLog.Append("user", query)
	s.ctxLog.Append("assistant", resp.Text)
	return resp
}

func (s *RouterService) buildPrompt(query string) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	if prior := s.ctxLog.PromptContext(); prior != "" {
		sb.WriteString(prior)
	}
	sb.WriteString("User: ")
	sb.WriteString(query)
	sb.WriteString("\nAssistant:")
	return sb.String()
}
