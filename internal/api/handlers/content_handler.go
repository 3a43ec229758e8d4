package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/zatekoja/clinicsite/internal/domain/entities"
)

// ContentService defines the site content document operations used by the handler
type ContentService interface {
	GetTeamMembers(ctx context.Context) []entities.TeamMember
	UpdateTeamMembers(ctx context.Context, members []entities.TeamMember)
	GetPageContent(ctx context.Context) entities.PageContent
	GetPage(ctx context.Context, page string) entities.PageDocument
	UpdatePageContent(ctx context.Context, content entities.PageContent)
	GetChatbotSettings(ctx context.Context) entities.ChatbotSettings
	UpdateChatbotSettings(ctx context.Context, settings entities.ChatbotSettings)
}

// ContentHandler serves the team roster, page copy and chatbot settings
type ContentHandler struct {
	service ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(service ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetTeam handles GET /api/content/team
func (h *ContentHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.GetTeamMembers(r.Context()))
}

// UpdateTeam handles PUT /api/content/team. The roster is replaced as a whole.
func (h *ContentHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var members []entities.TeamMember
	if !decodeJSON(w, r, &members) {
		return
	}
	if members == nil {
		respondWithError(w, http.StatusBadRequest, "team must be an array")
		return
	}

	h.service.UpdateTeamMembers(r.Context(), members)
	respondWithJSON(w, http.StatusOK, members)
}

// GetPages handles GET /api/content/pages
func (h *ContentHandler) GetPages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.GetPageContent(r.Context()))
}

// GetPage handles GET /api/content/pages/{page}
func (h *ContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page := r.PathValue("page")
	if page == "" {
		respondWithError(w, http.StatusBadRequest, "page is required")
		return
	}

	doc := h.service.GetPage(r.Context(), page)
	if doc == nil {
		doc = entities.PageDocument{}
	}
	respondWithJSON(w, http.StatusOK, doc)
}

// UpdatePages handles PUT /api/content/pages
func (h *ContentHandler) UpdatePages(w http.ResponseWriter, r *http.Request) {
	var content entities.PageContent
	if !decodeJSON(w, r, &content) {
		return
	}
	if content == nil {
		respondWithError(w, http.StatusBadRequest, "page content must be an object")
		return
	}

	h.service.UpdatePageContent(r.Context(), content)
	respondWithJSON(w, http.StatusOK, content)
}

// GetChatbotSettings handles GET /api/content/chatbot
func (h *ContentHandler) GetChatbotSettings(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.GetChatbotSettings(r.Context()))
}

// UpdateChatbotSettings handles PUT /api/content/chatbot. Fields absent from
// the body keep their current value.
func (h *ContentHandler) UpdateChatbotSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	current := h.service.GetChatbotSettings(r.Context())
	merged, err := entities.MergeChatbotSettings(current, body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	h.service.UpdateChatbotSettings(r.Context(), merged)
	respondWithJSON(w, http.StatusOK, merged)
}
