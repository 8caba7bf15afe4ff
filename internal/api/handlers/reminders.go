package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/domain"
	"github.com/novavoice/nova-core/internal/service"
)

// ReminderHandler handles reminder analysis and CRUD.
type ReminderHandler struct {
	analyzer  *service.AnalyzerService
	reminders *service.ReminderService
	useAI     bool
	logger    *zap.Logger
}

func NewReminderHandler(analyzer *service.AnalyzerService, reminders *service.ReminderService, useAI bool, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		analyzer:  analyzer,
		reminders: reminders,
		useAI:     useAI,
		logger:    logger,
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
	// Create schedules the reminder when analysis finds one.
	Create bool `json:"create,omitempty"`
}

type analyzeResponse struct {
	IsReminder bool              `json:"is_reminder"`
	Task       string            `json:"task,omitempty"`
	RawTime    string            `json:"raw_time,omitempty"`
	ParsedTime *time.Time        `json:"parsed_time,omitempty"`
	Confidence float32           `json:"confidence"`
	Source     string            `json:"source,omitempty"`
	Reminder   *reminderResponse `json:"reminder,omitempty"`
}

type createReminderRequest struct {
	Task    string `json:"task"`
	RawTime string `json:"time,omitempty"`
}

type reminderResponse struct {
	ID        uuid.UUID  `json:"id"`
	Task      string     `json:"task"`
	RawTime   string     `json:"raw_time,omitempty"`
	TriggerAt time.Time  `json:"trigger_at"`
	Fired     bool       `json:"fired"`
	FiredAt   *time.Time `json:"fired_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toReminderResponse(rem *domain.Reminder) *reminderResponse {
	return &reminderResponse{
		ID:        rem.ID,
		Task:      rem.Task,
		RawTime:   rem.RawTime,
		TriggerAt: rem.TriggerAt,
		Fired:     rem.Fired,
		FiredAt:   rem.FiredAt,
		CreatedAt: rem.CreatedAt,
	}
}

// Analyze handles POST /v1/reminders/analyze
func (h *ReminderHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	analysis := h.analyzer.Analyze(r.Context(), req.Text, h.useAI)

	resp := analyzeResponse{
		IsReminder: analysis.IsReminderRequest,
		Task:       analysis.Task,
		RawTime:    analysis.RawTime,
		ParsedTime: analysis.ParsedTime,
		Confidence: analysis.Confidence,
		Source:     analysis.Source,
	}

	if req.Create && analysis.IsReminderRequest {
		rem, err := h.reminders.CreateFromAnalysis(r.Context(), analysis)
		if err != nil {
			h.logger.Error("failed to create reminder from analysis", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to create reminder")
			return
		}
		resp.Reminder = toReminderResponse(rem)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /v1/reminders
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rem, err := h.reminders.CreateFromParams(r.Context(), req.Task, req.RawTime)
	if err != nil {
		if errors.Is(err, service.ErrTaskEmpty) {
			writeError(w, http.StatusBadRequest, "task is required")
			return
		}
		h.logger.Error("failed to create reminder", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create reminder")
		return
	}

	writeJSON(w, http.StatusCreated, toReminderResponse(rem))
}

// List handles GET /v1/reminders?include_fired=true
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	includeFired := r.URL.Query().Get("include_fired") == "true"

	rems, err := h.reminders.List(r.Context(), includeFired)
	if err != nil {
		h.logger.Error("failed to list reminders", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list reminders")
		return
	}

	out := make([]reminderResponse, 0, len(rems))
	for i := range rems {
		out = append(out, *toReminderResponse(&rems[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /v1/reminders/{id}
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reminder id")
		return
	}

	if err := h.reminders.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			writeError(w, http.StatusNotFound, "reminder not found")
			return
		}
		h.logger.Error("failed to delete reminder", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete reminder")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
