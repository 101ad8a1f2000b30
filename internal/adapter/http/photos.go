package httpadapter

import (
	"net/http"

	"campaign-wizard/internal/core/domain"
)

type stockPhotosRequest struct {
	Posts     []domain.Post     `json:"posts"`
	BrandData *domain.BrandData `json:"brandData,omitempty"`
}

type stockPhotosResponse struct {
	Success        bool                          `json:"success"`
	Results        []domain.PhotoSelectionResult `json:"results"`
	TotalProcessed int                           `json:"totalProcessed"`
}

// handleStockPhotos picks one stock photo per post. Individual posts never
// fail the request.
func (h *Handler) handleStockPhotos(w http.ResponseWriter, r *http.Request) {
	var req stockPhotosRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.Posts) == 0 {
		h.writeError(w, http.StatusBadRequest, "Posts array is required")
		return
	}

	results := h.svc.Photos.SelectPhotos(r.Context(), req.Posts, req.BrandData)
	h.writeJSON(w, http.StatusOK, stockPhotosResponse{
		Success:        true,
		Results:        results,
		TotalProcessed: len(results),
	})
}
