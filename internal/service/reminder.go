package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/domain"
	"github.com/novavoice/nova-core/internal/store"
	"github.com/novavoice/nova-core/internal/timeparse"
)

const (
	defaultSweepInterval = 15 * time.Second
	firedRetention       = 7 * 24 * time.Hour
)

var (
	ErrTaskEmpty        = errors.New("reminder task is empty")
	ErrReminderNotFound = errors.New("reminder not found")
)

// ReminderService persists reminders and fires the due ones through the
// Notifier collaborator on a periodic sweep.
type ReminderService struct {
	reminders domain.ReminderStore
	notifier  domain.Notifier
	logger    *zap.Logger
	now       func() time.Time

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewReminderService(reminders domain.ReminderStore, notifier domain.Notifier, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		reminders: reminders,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		interval:  defaultSweepInterval,
		stopCh:    make(chan struct{}),
	}
}

func (s *ReminderService) SetInterval(d time.Duration) {
	s.interval = d
}

// SetClock overrides the clock for tests.
func (s *ReminderService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateFromAnalysis persists a reminder from an extractor result and
// schedules its notification.
func (s *ReminderService) CreateFromAnalysis(ctx context.Context, res domain.ReminderAnalysisResult) (*domain.Reminder, error) {
	if !res.IsReminderRequest || res.Task == "" {
		return nil, ErrTaskEmpty
	}
	triggerAt := s.now().Add(time.Hour)
	if res.ParsedTime != nil {
		triggerAt = *res.ParsedTime
	}
	return s.create(ctx, res.Task, res.RawTime, triggerAt)
}

// CreateFromParams persists a reminder from fast-path classification params:
// a task plus an optional raw time expression.
func (s *ReminderService) CreateFromParams(ctx context.Context, task, rawTime string) (*domain.Reminder, error) {
	if task == "" {
		return nil, ErrTaskEmpty
	}
	triggerAt := s.now().Add(time.Hour)
	if rawTime != "" {
		triggerAt = timeparse.Parse(rawTime, s.now())
	}
	return s.create(ctx, task, rawTime, triggerAt)
}

// CreateTimer persists a timer as a short-lived reminder. The unit comes
// from the matcher already normalized to second/minute/hour.
func (s *ReminderService) CreateTimer(ctx context.Context, amount int, unit string) (*domain.Reminder, error) {
	if amount <= 0 {
		return nil, ErrTaskEmpty
	}
	var d time.Duration
	switch unit {
	case "second":
		d = time.Duration(amount) * time.Second
	case "minute":
		d = time.Duration(amount) * time.Minute
	default:
		d = time.Duration(amount) * time.Hour
	}
	task := "Timer"
	return s.create(ctx, task, "", s.now().Add(d))
}

func (s *ReminderService) create(ctx context.Context, task, rawTime string, triggerAt time.Time) (*domain.Reminder, error) {
	r := &domain.Reminder{Task: task, RawTime: rawTime, TriggerAt: triggerAt}
	if err := s.reminders.Create(ctx, r); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.Schedule(ctx, r.ID, r.TriggerAt, r.Task); err != nil {
			s.logger.Warn("failed to schedule reminder notification",
				zap.String("reminder_id", r.ID.String()), zap.Error(err))
		}
	}

	s.logger.Info("reminder created",
		zap.String("reminder_id", r.ID.String()),
		zap.String("task", r.Task),
		zap.Time("trigger_at", r.TriggerAt))
	return r, nil
}

func (s *ReminderService) List(ctx context.Context, includeFired bool) ([]domain.Reminder, error) {
	return s.reminders.List(ctx, includeFired)
}

func (s *ReminderService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.reminders.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrReminderNotFound
	}
	if err == nil && s.notifier != nil {
		if cancelErr := s.notifier.Cancel(ctx, id); cancelErr != nil {
			s.logger.Warn("failed to cancel reminder notification",
				zap.String("reminder_id", id.String()), zap.Error(cancelErr))
		}
	}
	return err
}

// Start runs the due-reminder sweeper in a background goroutine.
func (s *ReminderService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("reminder sweeper started", zap.Duration("interval", s.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				s.sweep(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("reminder sweeper stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the sweeper.
func (s *ReminderService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func (s *ReminderService) sweep(ctx context.Context) {
	now := s.now()

	due, err := s.reminders.ListDue(ctx, now)
	if err != nil {
		s.logger.Error("failed to list due reminders", zap.Error(err))
		return
	}

	for _, r := range due {
		if s.notifier != nil {
			if err := s.notifier.Schedule(ctx, r.ID, now, r.Task); err != nil {
				s.logger.Error("failed to fire reminder",
					zap.String("reminder_id", r.ID.String()), zap.Error(err))
				continue
			}
		}
		if err := s.reminders.MarkFired(ctx, r.ID, now); err != nil {
			s.logger.Error("failed to mark reminder fired",
				zap.String("reminder_id", r.ID.String()), zap.Error(err))
			continue
		}
		s.logger.Info("reminder fired",
			zap.String("reminder_id", r.ID.String()), zap.String("task", r.Task))
	}

	deleted, err := s.reminders.DeleteFiredBefore(ctx, now.Add(-firedRetention))
	if err != nil {
		s.logger.Error("failed to prune fired reminders", zap.Error(err))
	} else if deleted > 0 {
		s.logger.Info("pruned fired reminders", zap.Int64("count", deleted))
	}
}
