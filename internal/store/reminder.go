package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/novavoice/nova-core/internal/domain"
)

type ReminderStore struct {
	db *pgxpool.Pool
}

func NewReminderStore(db *pgxpool.Pool) *ReminderStore {
	return &ReminderStore{db: db}
}

func (s *ReminderStore) Create(ctx context.Context, r *domain.Reminder) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO reminders (task, raw_time, trigger_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		r.Task, r.RawTime, r.TriggerAt,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *ReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	r := &domain.Reminder{}
	err := s.db.QueryRow(ctx,
		`SELECT id, task, raw_time, trigger_at, fired, fired_at, created_at
		 FROM reminders WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Task, &r.RawTime, &r.TriggerAt, &r.Fired, &r.FiredAt, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *ReminderStore) List(ctx context.Context, includeFired bool) ([]domain.Reminder, error) {
	query := `SELECT id, task, raw_time, trigger_at, fired, fired_at, created_at
		 FROM reminders`
	if !includeFired {
		query += ` WHERE NOT fired`
	}
	query += ` ORDER BY trigger_at ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReminders(rows)
}

func (s *ReminderStore) ListDue(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, task, raw_time, trigger_at, fired, fired_at, created_at
		 FROM reminders WHERE NOT fired AND trigger_at <= $1
		 ORDER BY trigger_at ASC`,
		now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReminders(rows)
}

func (s *ReminderStore) MarkFired(ctx context.Context, id uuid.UUID, firedAt time.Time) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE reminders SET fired = TRUE, fired_at = $2 WHERE id = $1`,
		id, firedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReminderStore) DeleteFiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM reminders WHERE fired AND fired_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanReminders(rows pgx.Rows) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	for rows.Next() {
		var r domain.Reminder
		if err := rows.Scan(&r.ID, &r.Task, &r.RawTime, &r.TriggerAt, &r.Fired, &r.FiredAt, &r.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}
