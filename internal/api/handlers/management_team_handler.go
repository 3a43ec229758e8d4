package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
)

// ManagementTeamService defines the management team operations used by the handler
type ManagementTeamService interface {
	List(ctx context.Context, filter repositories.ManagementTeamFilter) []*entities.ManagementTeamMember
	Create(ctx context.Context, input services.ManagementTeamInput) *entities.ManagementTeamMember
	Update(ctx context.Context, id string, patch entities.ManagementTeamMemberPatch) *entities.ManagementTeamMember
	Delete(ctx context.Context, id string) bool
}

// ManagementTeamHandler handles management team requests
type ManagementTeamHandler struct {
	service ManagementTeamService
}

// NewManagementTeamHandler creates a new management team handler
func NewManagementTeamHandler(service ManagementTeamService) *ManagementTeamHandler {
	return &ManagementTeamHandler{service: service}
}

// ListMembers handles GET /api/management-team
func (h *ManagementTeamHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members := h.service.List(r.Context(), repositories.ManagementTeamFilter{ActiveOnly: true})
	respondWithJSON(w, http.StatusOK, members)
}

// ListAllMembers handles GET /api/admin/management-team
func (h *ManagementTeamHandler) ListAllMembers(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.List(r.Context(), repositories.ManagementTeamFilter{}))
}

// CreateMember handles POST /api/admin/management-team
func (h *ManagementTeamHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var input services.ManagementTeamInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	member := h.service.Create(r.Context(), input)
	if member == nil {
		respondWithError(w, http.StatusInternalServerError, "failed to create management team member")
		return
	}

	respondWithJSON(w, http.StatusCreated, member)
}

// UpdateMember handles PATCH /api/admin/management-team/{id}
func (h *ManagementTeamHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var patch entities.ManagementTeamMemberPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	member := h.service.Update(r.Context(), r.PathValue("id"), patch)
	if member == nil {
		respondWithError(w, http.StatusNotFound, "management team member not found")
		return
	}

	respondWithJSON(w, http.StatusOK, member)
}

// DeleteMember handles DELETE /api/admin/management-team/{id}
func (h *ManagementTeamHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if !h.service.Delete(r.Context(), r.PathValue("id")) {
		respondWithError(w, http.StatusNotFound, "management team member not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
