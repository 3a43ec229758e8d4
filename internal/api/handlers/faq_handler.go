package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
)

// FAQService defines the FAQ operations used by the handler
type FAQService interface {
	List(ctx context.Context, filter repositories.FAQFilter) []*entities.FAQ
	Create(ctx context.Context, input services.FAQInput) *entities.FAQ
	Update(ctx context.Context, id string, patch entities.FAQPatch) *entities.FAQ
	Delete(ctx context.Context, id string) bool
}

// FAQHandler handles FAQ requests
type FAQHandler struct {
	service FAQService
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(service FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

// ListFAQs handles GET /api/faqs
func (h *FAQHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	filter := repositories.FAQFilter{
		Category:   strings.TrimSpace(r.URL.Query().Get("category")),
		ActiveOnly: true,
	}
	respondWithJSON(w, http.StatusOK, h.service.List(r.Context(), filter))
}

// ListAllFAQs handles GET /api/admin/faqs
func (h *FAQHandler) ListAllFAQs(w http.ResponseWriter, r *http.Request) {
	filter := repositories.FAQFilter{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
	}
	respondWithJSON(w, http.StatusOK, h.service.List(r.Context(), filter))
}

// CreateFAQ handles POST /api/admin/faqs
func (h *FAQHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var input services.FAQInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	faq := h.service.Create(r.Context(), input)
	if faq == nil {
		respondWithError(w, http.StatusInternalServerError, "failed to create FAQ")
		return
	}

	respondWithJSON(w, http.StatusCreated, faq)
}

// UpdateFAQ handles PATCH /api/admin/faqs/{id}
func (h *FAQHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch entities.FAQPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.DisplayOrder != nil && *patch.DisplayOrder < 0 {
		respondWithError(w, http.StatusBadRequest, "display_order must be at least 0")
		return
	}

	faq := h.service.Update(r.Context(), id, patch)
	if faq == nil {
		respondWithError(w, http.StatusNotFound, "FAQ not found")
		return
	}

	respondWithJSON(w, http.StatusOK, faq)
}

// DeleteFAQ handles DELETE /api/admin/faqs/{id}
func (h *FAQHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	if !h.service.Delete(r.Context(), r.PathValue("id")) {
		respondWithError(w, http.StatusNotFound, "FAQ not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
