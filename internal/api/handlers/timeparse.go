package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/timeparse"
)

// TimeParseHandler exposes the natural-language time parser.
type TimeParseHandler struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewTimeParseHandler(logger *zap.Logger) *TimeParseHandler {
	return &TimeParseHandler{logger: logger, now: time.Now}
}

type timeParseRequest struct {
	Text string `json:"text"`
	// Now overrides the reference time, mainly for testing clients.
	Now *time.Time `json:"now,omitempty"`
}

type timeParseResponse struct {
	Text   string    `json:"text"`
	Result time.Time `json:"result"`
}

// Parse handles POST /v1/parse-time
func (h *TimeParseHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req timeParseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	now := h.now()
	if req.Now != nil {
		now = *req.Now
	}

	result := timeparse.Parse(req.Text, now)

	writeJSON(w, http.StatusOK, timeParseResponse{Text: req.Text, Result: result})
}
