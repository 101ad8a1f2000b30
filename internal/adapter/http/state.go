package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
)

// handleStateStore persists the request body unchanged under ?name=.
func (h *Handler) handleStateStore(w http.ResponseWriter, r *http.Request) {
	blob, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if err = h.svc.State.Store(r.Context(), r.URL.Query().Get("name"), blob); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("store state error", slog.Any("error", err))
		}
		h.writeError(w, status, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleStateRetrieve writes the stored blob byte for byte, or {}.
func (h *Handler) handleStateRetrieve(w http.ResponseWriter, r *http.Request) {
	blob, err := h.svc.State.Retrieve(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.logger.Error("retrieve state error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(blob); err != nil {
		h.logger.Error("write response error", slog.Any("error", err))
	}
}
