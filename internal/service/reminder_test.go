package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/novavoice/nova-core/internal/domain"
)

func newTestReminderService() (*ReminderService, *mockReminderStore, *mockNotifier) {
	store := newMockReminderStore()
	notifier := &mockNotifier{}
	svc := NewReminderService(store, notifier, testLogger())
	return svc, store, notifier
}

func TestCreateFromParams(t *testing.T) {
	svc, _, notifier := newTestReminderService()

	r, err := svc.CreateFromParams(context.Background(), "Call mom", "in 2 hours")
	if err != nil {
		t.Fatalf("CreateFromParams: %v", err)
	}
	if r.ID == uuid.Nil {
		t.Error("reminder has no ID")
	}
	until := time.Until(r.TriggerAt)
	if until < 119*time.Minute || until > 121*time.Minute {
		t.Errorf("trigger in %v, want ~2h", until)
	}
	if len(notifier.scheduled) != 1 {
		t.Errorf("scheduled = %d, want 1", len(notifier.scheduled))
	}
}

func TestCreateFromParams_EmptyTask(t *testing.T) {
	svc, _, _ := newTestReminderService()

	if _, err := svc.CreateFromParams(context.Background(), "", "5pm"); !errors.Is(err, ErrTaskEmpty) {
		t.Errorf("err = %v, want ErrTaskEmpty", err)
	}
}

func TestCreateFromAnalysis(t *testing.T) {
	svc, _, _ := newTestReminderService()

	at := time.Now().Add(3 * time.Hour)
	r, err := svc.CreateFromAnalysis(context.Background(), domain.ReminderAnalysisResult{
		IsReminderRequest: true,
		Task:              "Doctor jaana",
		RawTime:           "kal subah",
		ParsedTime:        &at,
		Confidence:        0.8,
		Source:            "rule",
	})
	if err != nil {
		t.Fatalf("CreateFromAnalysis: %v", err)
	}
	if !r.TriggerAt.Equal(at) {
		t.Errorf("trigger = %v, want %v", r.TriggerAt, at)
	}
	if r.RawTime != "kal subah" {
		t.Errorf("raw time = %q", r.RawTime)
	}
}

func TestCreateTimer(t *testing.T) {
	svc, _, _ := newTestReminderService()

	r, err := svc.CreateTimer(context.Background(), 30, "second")
	if err != nil {
		t.Fatalf("CreateTimer: %v", err)
	}
	until := time.Until(r.TriggerAt)
	if until <= 0 || until > 31*time.Second {
		t.Errorf("timer trigger in %v, want ~30s", until)
	}

	if _, err := svc.CreateTimer(context.Background(), 0, "minute"); err == nil {
		t.Error("zero-amount timer should fail")
	}
}

func TestDelete(t *testing.T) {
	svc, _, notifier := newTestReminderService()

	r, err := svc.CreateFromParams(context.Background(), "Task", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(notifier.cancelled) != 1 || notifier.cancelled[0] != r.ID {
		t.Errorf("cancelled = %v, want [%s]", notifier.cancelled, r.ID)
	}

	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrReminderNotFound) {
		t.Errorf("err = %v, want ErrReminderNotFound", err)
	}
}

func TestSweep_FiresDueReminders(t *testing.T) {
	svc, store, notifier := newTestReminderService()

	now := time.Now()
	svc.SetClock(func() time.Time { return now })

	due := &domain.Reminder{Task: "Due", TriggerAt: now.Add(-time.Minute)}
	future := &domain.Reminder{Task: "Future", TriggerAt: now.Add(time.Hour)}
	_ = store.Create(context.Background(), due)
	_ = store.Create(context.Background(), future)

	svc.sweep(context.Background())

	fired, _ := store.GetByID(context.Background(), due.ID)
	if !fired.Fired {
		t.Error("due reminder was not marked fired")
	}
	pending, _ := store.GetByID(context.Background(), future.ID)
	if pending.Fired {
		t.Error("future reminder fired early")
	}
	// One Schedule at creation is skipped here (created via store directly);
	// the sweep itself fires exactly one notification.
	if len(notifier.scheduled) != 1 {
		t.Errorf("scheduled = %d, want 1", len(notifier.scheduled))
	}
}

func TestSweep_PrunesOldFired(t *testing.T) {
	svc, store, _ := newTestReminderService()

	now := time.Now()
	svc.SetClock(func() time.Time { return now })

	old := &domain.Reminder{Task: "Old", TriggerAt: now.Add(-10 * 24 * time.Hour)}
	_ = store.Create(context.Background(), old)
	firedAt := now.Add(-8 * 24 * time.Hour)
	_ = store.MarkFired(context.Background(), old.ID, firedAt)

	svc.sweep(context.Background())

	if _, err := store.GetByID(context.Background(), old.ID); err == nil {
		t.Error("fired reminder past retention was not pruned")
	}
}

func TestStartStop(t *testing.T) {
	svc, store, _ := newTestReminderService()
	svc.SetInterval(10 * time.Millisecond)

	due := &domain.Reminder{Task: "Due", TriggerAt: time.Now().Add(-time.Minute)}
	_ = store.Create(context.Background(), due)

	svc.Start()
	time.Sleep(50 * time.Millisecond)
	svc.Stop()

	r, _ := store.GetByID(context.Background(), due.ID)
	if !r.Fired {
		t.Error("sweeper did not fire the due reminder")
	}
}
