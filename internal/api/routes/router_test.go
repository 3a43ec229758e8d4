package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/clinicsite/internal/adapters/kv"
	"github.com/zatekoja/clinicsite/internal/api/handlers"
	"github.com/zatekoja/clinicsite/internal/api/routes"
	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/seed"
	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/chatapi"
	"github.com/zatekoja/clinicsite/pkg/config"
)

// newTestServer wires the router the way cmd/api does with no relational
// store and no KV store configured.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.Nop()

	content := services.NewContentService(kv.NewMemoryStore(), seed.ChatbotSettings(config.ChatConfig{}), &logger, nil)
	blog := services.NewBlogService(nil, &logger, nil)
	faqs := services.NewFAQService(nil, &logger, nil)
	locations := services.NewLocationService(nil, &logger, nil)
	team := services.NewManagementTeamService(nil, &logger, nil)
	chat := services.NewChatService(content, chatapi.NewClient(0), &logger, nil)

	router := routes.NewRouter(routes.Handlers{
		Health:         handlers.NewHealthHandler(content.Durable(), nil, nil),
		Content:        handlers.NewContentHandler(content),
		Blog:           handlers.NewBlogHandler(blog),
		FAQ:            handlers.NewFAQHandler(faqs),
		Location:       handlers.NewLocationHandler(locations),
		ManagementTeam: handlers.NewManagementTeamHandler(team),
		Chat:           handlers.NewChatHandler(chat),
	}, []string{"*"}, nil)

	server := httptest.NewServer(router.SetupRoutes())
	t.Cleanup(server.Close)
	return server
}

func TestRouter_FallbackReads(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/locations")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var locations []entities.Location
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&locations))
	assert.Len(t, locations, 3)

	resp, err = http.Get(server.URL + "/api/locations/westside")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/blog")
	require.NoError(t, err)
	var posts []entities.BlogPost
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	resp.Body.Close()
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	resp, err = http.Get(server.URL + "/api/content/team")
	require.NoError(t, err)
	var team []entities.TeamMember
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&team))
	resp.Body.Close()
	assert.Equal(t, seed.TeamMembers(), team)
}

func TestRouter_MethodPatterns(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/locations", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Post(server.URL+"/api/admin/faqs", "application/json", strings.NewReader(`{"question":"Q","answer":"A"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRouter_ChatUsesStoredSettings(t *testing.T) {
	replies := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"reply": "You said " + body["message"]})
	}))
	defer replies.Close()

	server := newTestServer(t)

	settings := `{"apiUrl":"` + replies.URL + `"}`
	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/content/chatbot", strings.NewReader(settings))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(server.URL+"/api/chat", "application/json", strings.NewReader(`{"message":"hello"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Reply        entities.ChatMessage  `json:"reply"`
		Conversation entities.Conversation `json:"conversation"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "You said hello", body.Reply.Text)
	assert.Len(t, body.Conversation.Messages, 3)

	req, err = http.NewRequest(http.MethodPut, server.URL+"/api/content/chatbot", strings.NewReader(`{"isEnabled":false}`))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Post(server.URL+"/api/chat", "application/json", strings.NewReader(`{"message":"hello"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRouter_CORSOnEveryResponse(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://clinic.example")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
