package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/domain"
	"github.com/novavoice/nova-core/internal/service"
)

// QueryHandler runs the full two-speed pipeline for an utterance.
type QueryHandler struct {
	router *service.RouterService
	logger *zap.Logger
}

func NewQueryHandler(router *service.RouterService, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{router: router, logger: logger}
}

type queryRequest struct {
	Text   string `json:"text"`
	Stream bool   `json:"stream,omitempty"`
}

type queryResponse struct {
	Text       string        `json:"text"`
	Intent     domain.Intent `json:"intent"`
	Instant    bool          `json:"instant"`
	Success    bool          `json:"success"`
	FailReason string        `json:"fail_reason,omitempty"`
	Confidence float32       `json:"confidence"`
}

// Query handles POST /v1/query. With "stream": true the slow-path tokens are
// sent as SSE events before the final response event.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	if req.Stream {
		h.stream(w, r, req.Text)
		return
	}

	resp := h.router.ProcessQuery(r.Context(), req.Text, nil)
	writeJSON(w, http.StatusOK, toQueryResponse(resp))
}

func (h *QueryHandler) stream(w http.ResponseWriter, r *http.Request, text string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	resp := h.router.ProcessQuery(r.Context(), text, func(token string) {
		fmt.Fprintf(w, "event: token\ndata: %s\n\n", sseEscape(token))
		flusher.Flush()
	})

	fmt.Fprintf(w, "event: done\ndata: ")
	writeSSEJSON(w, toQueryResponse(resp))
	flusher.Flush()
}

func toQueryResponse(resp domain.Response) queryResponse {
	return queryResponse{
		Text:       resp.Text,
		Intent:     resp.Intent,
		Instant:    resp.Instant,
		Success:    resp.Success,
		FailReason: resp.FailReason,
		Confidence: resp.Confidence,
	}
}
