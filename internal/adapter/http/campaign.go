package httpadapter

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-wizard/internal/core/domain"
)

// handleCampaignCreate relays the wizard's campaign to the workflow webhook
// and returns the upstream JSON unchanged. Failures answer {error, details}.
func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Failed to read request body", Details: err.Error()})
		return
	}
	resp, err := h.svc.Workflow.CreateCampaign(r.Context(), body)
	if err != nil {
		h.logger.Error("create campaign error", slog.Any("error", err))
		h.writeJSON(w, statusFor(err), errorResponse{Error: "Failed to create campaign", Details: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(resp); err != nil {
		h.logger.Error("write response error", slog.Any("error", err))
	}
}

// handleCampaignPublish returns the simulated publish confirmation.
func (h *Handler) handleCampaignPublish(w http.ResponseWriter, r *http.Request) {
	var req domain.PublishRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	resp, err := h.svc.Workflow.PublishCampaign(r.Context(), req)
	if err != nil {
		h.logger.Error("publish campaign error", slog.Any("error", err))
		h.writeError(w, statusFor(err), err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleCampaignGenerate runs the content pipeline synchronously.
func (h *Handler) handleCampaignGenerate(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	out, err := h.svc.Campaigns.Generate(r.Context(), in)
	if err != nil {
		h.logger.Error("generate campaign error", slog.Any("error", err))
		h.writeError(w, statusFor(err), err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleCampaignGet returns a stored campaign record.
func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("get campaign error", slog.Any("error", err))
		}
		h.writeError(w, status, http.StatusText(status))
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}
