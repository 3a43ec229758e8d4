package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

// ChatService defines the chat operations used by the handler
type ChatService interface {
	Start(ctx context.Context) (*entities.Conversation, error)
	Send(ctx context.Context, conv *entities.Conversation, text string) (entities.ChatMessage, error)
}

// ChatHandler relays chat widget messages
type ChatHandler struct {
	service ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// chatRequest carries the visitor message and, optionally, the conversation
// so far. The server keeps no conversation state.
type chatRequest struct {
	Message      string                 `json:"message" validate:"required,max=2000"`
	Conversation *entities.Conversation `json:"conversation,omitempty"`
}

type chatResponse struct {
	Reply        entities.ChatMessage   `json:"reply"`
	Conversation *entities.Conversation `json:"conversation"`
}

// SendMessage handles POST /api/chat. A request without a conversation
// starts one with the welcome message.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	conv := req.Conversation
	if conv == nil {
		started, err := h.service.Start(r.Context())
		if err != nil {
			h.respondWithChatError(w, err)
			return
		}
		conv = started
	}

	reply, err := h.service.Send(r.Context(), conv, req.Message)
	if err != nil {
		h.respondWithChatError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, chatResponse{Reply: reply, Conversation: conv})
}

func (h *ChatHandler) respondWithChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrChatDisabled):
		respondWithError(w, http.StatusServiceUnavailable, "chat is currently unavailable")
	case apperrors.IsValidation(err):
		respondWithError(w, http.StatusBadRequest, "message must not be blank")
	default:
		respondWithError(w, http.StatusInternalServerError, "failed to process message")
	}
}
