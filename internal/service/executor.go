package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/classify"
	"github.com/novavoice/nova-core/internal/domain"
)

// ExecutorService runs instant intents against the platform collaborators.
// Every failure surfaces as a Response with Success=false and a reason
// string; Execute never panics a missing parameter into the caller.
type ExecutorService struct {
	launcher  domain.AppLauncher
	device    domain.DeviceController
	reminders *ReminderService
	resolver  *classify.AppResolver
	logger    *zap.Logger
}

func NewExecutorService(launcher domain.AppLauncher, device domain.DeviceController, reminders *ReminderService, resolver *classify.AppResolver, logger *zap.Logger) *ExecutorService {
	return &ExecutorService{
		launcher:  launcher,
		device:    device,
		reminders: reminders,
		resolver:  resolver,
		logger:    logger,
	}
}

// Execute runs one classified instant intent and returns the uniform
// response shape.
func (s *ExecutorService) Execute(ctx context.Context, res domain.ClassificationResult) domain.Response {
	if missing := res.MissingParams(); len(missing) > 0 {
		return failure(res, fmt.Sprintf("missing required parameter: %s", strings.Join(missing, ", ")))
	}

	switch res.Intent {
	case domain.IntentOpenApp:
		return s.openApp(ctx, res)
	case domain.IntentSetTimer:
		return s.setTimer(ctx, res)
	case domain.IntentCreateReminder:
		return s.createReminder(ctx, res)
	case domain.IntentShowReminders:
		return s.showReminders(ctx, res)
	default:
		return s.applyDevice(ctx, res)
	}
}

// ExecuteAction runs a structured action the discriminator extracted from
// LLM output, by mapping it onto the equivalent instant intent.
func (s *ExecutorService) ExecuteAction(ctx context.Context, parsed domain.ParsedResponse) domain.Response {
	res := domain.ClassificationResult{
		Intent:     actionIntent(parsed),
		Confidence: 1.0,
		Params:     parsed.Parameters,
	}
	if res.Intent == domain.IntentUnknown {
		return failure(res, fmt.Sprintf("unknown action: %s", parsed.Action))
	}
	return s.Execute(ctx, res)
}

func actionIntent(parsed domain.ParsedResponse) domain.Intent {
	switch parsed.Action {
	case domain.ActionOpenApp:
		return domain.IntentOpenApp
	case domain.ActionSetTimer:
		return domain.IntentSetTimer
	case domain.ActionCreateReminder:
		return domain.IntentCreateReminder
	case domain.ActionSearchWeb:
		return domain.IntentSearchWeb
	case domain.ActionCallContact:
		return domain.IntentCallContact
	case domain.ActionSendMessage:
		return domain.IntentSendMessage
	case domain.ActionPlayMusic:
		return domain.IntentPlayMusic
	case domain.ActionToggleSetting:
		switch strings.ToLower(parsed.Parameters["setting"]) {
		case "wifi":
			return domain.IntentToggleWifi
		case "bluetooth":
			return domain.IntentToggleBluetooth
		case "flashlight", "torch":
			return domain.IntentToggleFlashlight
		case "airplane", "airplane_mode":
			return domain.IntentToggleAirplane
		case "dnd", "do_not_disturb":
			return domain.IntentToggleDND
		case "hotspot":
			return domain.IntentToggleHotspot
		}
	}
	return domain.IntentUnknown
}

func (s *ExecutorService) openApp(ctx context.Context, res domain.ClassificationResult) domain.Response {
	name := res.Param(domain.ParamAppName)
	pkg := res.Param("packageId")
	if pkg == "" && s.resolver != nil {
		pkg = s.resolver.Resolve(name)
	}
	if pkg == "" {
		return failure(res, fmt.Sprintf("couldn't find an app called %q", name))
	}
	if s.launcher == nil {
		return failure(res, "app launcher unavailable")
	}
	if err := s.launcher.Launch(ctx, pkg); err != nil {
		s.logger.Warn("app launch failed", zap.String("package", pkg), zap.Error(err))
		return failure(res, fmt.Sprintf("failed to open %s: %v", name, err))
	}
	return success(res, fmt.Sprintf("Opening %s", name))
}

func (s *ExecutorService) setTimer(ctx context.Context, res domain.ClassificationResult) domain.Response {
	amount, err := strconv.Atoi(res.Param(domain.ParamDuration))
	if err != nil || amount <= 0 {
		return failure(res, fmt.Sprintf("invalid timer duration %q", res.Param(domain.ParamDuration)))
	}
	unit := res.Param(domain.ParamUnit)

	if s.reminders == nil {
		return failure(res, "reminder service unavailable")
	}
	r, err := s.reminders.CreateTimer(ctx, amount, unit)
	if err != nil {
		return failure(res, fmt.Sprintf("failed to set timer: %v", err))
	}

	label := unit
	if amount != 1 {
		label += "s"
	}
	return success(res, fmt.Sprintf("Timer set for %d %s (at %s)", amount, label, r.TriggerAt.Format("15:04")))
}

func (s *ExecutorService) createReminder(ctx context.Context, res domain.ClassificationResult) domain.Response {
	if s.reminders == nil {
		return failure(res, "reminder service unavailable")
	}
	r, err := s.reminders.CreateFromParams(ctx, res.Param(domain.ParamTask), res.Param(domain.ParamTime))
	if err != nil {
		return failure(res, fmt.Sprintf("failed to create reminder: %v", err))
	}
	return success(res, fmt.Sprintf("Reminder set: %s at %s", r.Task, r.TriggerAt.Format("Mon 15:04")))
}

func (s *ExecutorService) showReminders(ctx context.Context, res domain.ClassificationResult) domain.Response {
	if s.reminders == nil {
		return failure(res, "reminder service unavailable")
	}
	list, err := s.reminders.List(ctx, false)
	if err != nil {
		return failure(res, fmt.Sprintf("failed to list reminders: %v", err))
	}
	if len(list) == 0 {
		return success(res, "You have no pending reminders")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You have %d pending reminders:\n", len(list))
	for _, r := range list {
		fmt.Fprintf(&sb, "- %s at %s\n", r.Task, r.TriggerAt.Format("Mon 15:04"))
	}
	return success(res, strings.TrimSpace(sb.String()))
}

func (s *ExecutorService) applyDevice(ctx context.Context, res domain.ClassificationResult) domain.Response {
	if s.device == nil {
		return failure(res, "device controller unavailable")
	}
	if err := s.device.Apply(ctx, res.Intent, res.Params); err != nil {
		s.logger.Warn("device action failed",
			zap.String("intent", string(res.Intent)), zap.Error(err))
		return failure(res, fmt.Sprintf("failed to %s: %v", describeIntent(res), err))
	}
	return success(res, capitalize(describeIntent(res)))
}

func describeIntent(res domain.ClassificationResult) string {
	name := strings.ReplaceAll(string(res.Intent), "_", " ")
	if state := res.Param(domain.ParamState); state != "" {
		target := strings.TrimPrefix(string(res.Intent), "toggle_")
		switch state {
		case "on":
			return fmt.Sprintf("turn on %s", target)
		case "off":
			return fmt.Sprintf("turn off %s", target)
		default:
			return fmt.Sprintf("toggle %s", target)
		}
	}
	return name
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func success(res domain.ClassificationResult, text string) domain.Response {
	return domain.Response{
		Text:       text,
		Intent:     res.Intent,
		Instant:    true,
		Success:    true,
		Confidence: res.Confidence,
	}
}

func failure(res domain.ClassificationResult, reason string) domain.Response {
	return domain.Response{
		Text:       reason,
		Intent:     res.Intent,
		Instant:    true,
		Success:    false,
		FailReason: reason,
		Confidence: res.Confidence,
	}
}
