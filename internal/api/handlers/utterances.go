package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/domain"
	"github.com/novavoice/nova-core/internal/service"
)

// UtteranceHandler serves similarity search over recorded utterances.
type UtteranceHandler struct {
	history *service.HistoryService
	logger  *zap.Logger
}

func NewUtteranceHandler(history *service.HistoryService, logger *zap.Logger) *UtteranceHandler {
	return &UtteranceHandler{history: history, logger: logger}
}

type similarRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit,omitempty"`
}

type similarUtterance struct {
	ID        string        `json:"id"`
	Input     string        `json:"input"`
	Intent    domain.Intent `json:"intent"`
	Score     float32       `json:"score"`
	CreatedAt time.Time     `json:"created_at"`
}

// Similar handles POST /v1/utterances/similar
func (h *UtteranceHandler) Similar(w http.ResponseWriter, r *http.Request) {
	var req similarRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	results, err := h.history.Similar(r.Context(), req.Text, req.Limit)
	if err != nil {
		if errors.Is(err, service.ErrRecallDisabled) {
			writeError(w, http.StatusNotImplemented, "similarity search requires an embedding provider")
			return
		}
		h.logger.Error("similarity search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "similarity search failed")
		return
	}

	out := make([]similarUtterance, 0, len(results))
	for _, u := range results {
		out = append(out, similarUtterance{
			ID:        u.ID.String(),
			Input:     u.Input,
			Intent:    u.Intent,
			Score:     u.Score,
			CreatedAt: u.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
