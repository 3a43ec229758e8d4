package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/clinicsite/internal/api/handlers"
	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
)

type stubChatService struct {
	disabled bool
	sent     []string
}

func (s *stubChatService) Start(context.Context) (*entities.Conversation, error) {
	if s.disabled {
		return nil, services.ErrChatDisabled
	}
	conv := &entities.Conversation{}
	conv.Append(entities.ChatMessage{ID: "w", Sender: entities.ChatSenderBot, Text: "Hi!"})
	return conv, nil
}

func (s *stubChatService) Send(_ context.Context, conv *entities.Conversation, text string) (entities.ChatMessage, error) {
	if s.disabled {
		return entities.ChatMessage{}, services.ErrChatDisabled
	}
	if strings.TrimSpace(text) == "" {
		return entities.ChatMessage{}, services.ErrBlankMessage
	}
	s.sent = append(s.sent, text)
	conv.Append(entities.ChatMessage{ID: "u", Sender: entities.ChatSenderUser, Text: text})
	reply := entities.ChatMessage{ID: "b", Sender: entities.ChatSenderBot, Text: "echo: " + text}
	conv.Append(reply)
	return reply, nil
}

type chatResponseBody struct {
	Reply        entities.ChatMessage  `json:"reply"`
	Conversation entities.Conversation `json:"conversation"`
}

func TestChatHandler_StartsConversation(t *testing.T) {
	handler := handlers.NewChatHandler(&stubChatService{})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"hello"}`))
	w := httptest.NewRecorder()
	handler.SendMessage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp chatResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "echo: hello", resp.Reply.Text)
	require.Len(t, resp.Conversation.Messages, 3)
	assert.Equal(t, "Hi!", resp.Conversation.Messages[0].Text)
}

func TestChatHandler_ContinuesConversation(t *testing.T) {
	handler := handlers.NewChatHandler(&stubChatService{})

	body := `{"message":"and on Sunday?","conversation":{"messages":[{"id":"1","sender":"user","text":"hours?"},{"id":"2","sender":"bot","text":"8-5"}]}}`
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.SendMessage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp chatResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Conversation.Messages, 4)
}

func TestChatHandler_RejectsBlankMessage(t *testing.T) {
	service := &stubChatService{}
	handler := handlers.NewChatHandler(service)

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `not json`} {
		req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.SendMessage(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, service.sent)
}

func TestChatHandler_Disabled(t *testing.T) {
	handler := handlers.NewChatHandler(&stubChatService{disabled: true})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"hello"}`))
	w := httptest.NewRecorder()
	handler.SendMessage(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
