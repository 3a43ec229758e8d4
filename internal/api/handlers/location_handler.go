package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
)

// LocationService defines the location operations used by the handler
type LocationService interface {
	List(ctx context.Context, filter repositories.LocationFilter) []*entities.Location
	GetBySlug(ctx context.Context, slug string) *entities.Location
	Create(ctx context.Context, input services.LocationInput) *entities.Location
	Update(ctx context.Context, id string, patch entities.LocationPatch) *entities.Location
	Delete(ctx context.Context, id string) bool
}

// LocationHandler handles clinic location requests
type LocationHandler struct {
	service LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// ListLocations handles GET /api/locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations := h.service.List(r.Context(), repositories.LocationFilter{ActiveOnly: true})
	respondWithJSON(w, http.StatusOK, locations)
}

// ListAllLocations handles GET /api/admin/locations, inactive locations included
func (h *LocationHandler) ListAllLocations(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.List(r.Context(), repositories.LocationFilter{}))
}

// GetLocation handles GET /api/locations/{slug}
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "slug is required")
		return
	}

	location := h.service.GetBySlug(r.Context(), slug)
	if location == nil {
		respondWithError(w, http.StatusNotFound, "location not found")
		return
	}

	respondWithJSON(w, http.StatusOK, location)
}

// CreateLocation handles POST /api/admin/locations
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var input services.LocationInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	location := h.service.Create(r.Context(), input)
	if location == nil {
		respondWithError(w, http.StatusInternalServerError, "failed to create location")
		return
	}

	respondWithJSON(w, http.StatusCreated, location)
}

// UpdateLocation handles PATCH /api/admin/locations/{id}
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var patch entities.LocationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if !checkSlug(w, patch.Slug) {
		return
	}

	location := h.service.Update(r.Context(), r.PathValue("id"), patch)
	if location == nil {
		respondWithError(w, http.StatusNotFound, "location not found")
		return
	}

	respondWithJSON(w, http.StatusOK, location)
}

// DeleteLocation handles DELETE /api/admin/locations/{id}. The location is
// deactivated, not removed.
func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if !h.service.Delete(r.Context(), r.PathValue("id")) {
		respondWithError(w, http.StatusNotFound, "location not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
