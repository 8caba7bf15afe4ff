package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/novavoice/nova-core/internal/domain"
)

type UtteranceStore struct {
	db *pgxpool.Pool
}

func NewUtteranceStore(db *pgxpool.Pool) *UtteranceStore {
	return &UtteranceStore{db: db}
}

func (s *UtteranceStore) Create(ctx context.Context, u *domain.Utterance) error {
	var embedding *pgvector.Vector
	if len(u.Embedding) > 0 {
		v := pgvector.NewVector(u.Embedding)
		embedding = &v
	}

	return s.db.QueryRow(ctx,
		`INSERT INTO utterances (input, intent, confidence, params, instant, latency_ms, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		u.Input, u.Intent, u.Confidence, u.Params, u.Instant, u.LatencyMs, embedding,
	).Scan(&u.ID, &u.CreatedAt)
}

// Similar recalls past utterances by cosine distance over their embeddings.
func (s *UtteranceStore) Similar(ctx context.Context, embedding []float32, limit int) ([]domain.UtteranceWithScore, error) {
	if limit <= 0 {
		limit = 10
	}
	vec := pgvector.NewVector(embedding)

	rows, err := s.db.Query(ctx,
		`SELECT id, input, intent, confidence, params, instant, latency_ms, created_at,
		        1 - (embedding <=> $1) AS score
		 FROM utterances
		 WHERE embedding IS NOT NULL
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		vec, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.UtteranceWithScore
	for rows.Next() {
		var u domain.UtteranceWithScore
		if err := rows.Scan(&u.ID, &u.Input, &u.Intent, &u.Confidence, &u.Params, &u.Instant, &u.LatencyMs, &u.CreatedAt, &u.Score); err != nil {
			return nil, err
		}
		results = append(results, u)
	}
	return results, rows.Err()
}

func (s *UtteranceStore) CountByIntent(ctx context.Context) (map[domain.Intent]int, error) {
	rows, err := s.db.Query(ctx,
		`SELECT intent, COUNT(*) FROM utterances GROUP BY intent`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Intent]int)
	for rows.Next() {
		var intent domain.Intent
		var count int
		if err := rows.Scan(&intent, &count); err != nil {
			return nil, err
		}
		counts[intent] = count
	}
	return counts, rows.Err()
}
