package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"campaign-wizard/internal/core/domain"
)

// handleSynthesize converts text to base64 audio.
func (h *Handler) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req domain.TTSRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	resp, err := h.svc.Speech.Synthesize(r.Context(), req)
	if errors.Is(err, domain.ErrValidation) {
		h.writeError(w, http.StatusBadRequest, "Text is required")
		return
	}
	if err != nil {
		h.logger.Error("synthesize error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
