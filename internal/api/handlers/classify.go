package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/classify"
	"github.com/novavoice/nova-core/internal/domain"
)

// ClassifyHandler exposes the rule classifier directly. It never touches
// the language model, so responses are fast enough to call per keystroke.
type ClassifyHandler struct {
	classifier *classify.Classifier
	logger     *zap.Logger
}

func NewClassifyHandler(classifier *classify.Classifier, logger *zap.Logger) *ClassifyHandler {
	return &ClassifyHandler{classifier: classifier, logger: logger}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Intent     domain.Intent     `json:"intent"`
	Confidence float32           `json:"confidence"`
	Instant    bool              `json:"instant"`
	Params     map[string]string `json:"params,omitempty"`
}

// Classify handles POST /v1/classify
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.classifier.Classify(req.Text)

	writeJSON(w, http.StatusOK, classifyResponse{
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Instant:    result.Intent.IsInstant(),
		Params:     result.Params,
	})
}
