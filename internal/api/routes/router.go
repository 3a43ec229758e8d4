package routes

import (
	"net/http"

	"github.com/zatekoja/clinicsite/internal/api/handlers"
	"github.com/zatekoja/clinicsite/internal/api/middleware"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
)

// Handlers groups the route handlers served by the router
type Handlers struct {
	Health         *handlers.HealthHandler
	Content        *handlers.ContentHandler
	Blog           *handlers.BlogHandler
	FAQ            *handlers.FAQHandler
	Location       *handlers.LocationHandler
	ManagementTeam *handlers.ManagementTeamHandler
	Chat           *handlers.ChatHandler
}

// Router holds all route handlers
type Router struct {
	mux            *http.ServeMux
	handlers       Handlers
	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(h Handlers, allowedOrigins []string, metrics *observability.Metrics) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		handlers:       h,
		allowedOrigins: allowedOrigins,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	h := r.handlers

	r.mux.HandleFunc("GET /health", h.Health.Health)

	// Site content documents
	r.mux.HandleFunc("GET /api/content/team", h.Content.GetTeam)
	r.mux.HandleFunc("PUT /api/content/team", h.Content.UpdateTeam)
	r.mux.HandleFunc("GET /api/content/pages", h.Content.GetPages)
	r.mux.HandleFunc("PUT /api/content/pages", h.Content.UpdatePages)
	r.mux.HandleFunc("GET /api/content/pages/{page}", h.Content.GetPage)
	r.mux.HandleFunc("GET /api/content/chatbot", h.Content.GetChatbotSettings)
	r.mux.HandleFunc("PUT /api/content/chatbot", h.Content.UpdateChatbotSettings)

	// Blog
	r.mux.HandleFunc("GET /api/blog", h.Blog.ListPosts)
	r.mux.HandleFunc("GET /api/blog/{slug}", h.Blog.GetPost)
	r.mux.HandleFunc("GET /api/admin/blog", h.Blog.ListAllPosts)
	r.mux.HandleFunc("GET /api/admin/blog/slug", h.Blog.GenerateSlug)
	r.mux.HandleFunc("POST /api/admin/blog", h.Blog.CreatePost)
	r.mux.HandleFunc("PATCH /api/admin/blog/{id}", h.Blog.UpdatePost)
	r.mux.HandleFunc("DELETE /api/admin/blog/{id}", h.Blog.DeletePost)

	// FAQs
	r.mux.HandleFunc("GET /api/faqs", h.FAQ.ListFAQs)
	r.mux.HandleFunc("GET /api/admin/faqs", h.FAQ.ListAllFAQs)
	r.mux.HandleFunc("POST /api/admin/faqs", h.FAQ.CreateFAQ)
	r.mux.HandleFunc("PATCH /api/admin/faqs/{id}", h.FAQ.UpdateFAQ)
	r.mux.HandleFunc("DELETE /api/admin/faqs/{id}", h.FAQ.DeleteFAQ)

	// Locations
	r.mux.HandleFunc("GET /api/locations", h.Location.ListLocations)
	r.mux.HandleFunc("GET /api/locations/{slug}", h.Location.GetLocation)
	r.mux.HandleFunc("GET /api/admin/locations", h.Location.ListAllLocations)
	r.mux.HandleFunc("POST /api/admin/locations", h.Location.CreateLocation)
	r.mux.HandleFunc("PATCH /api/admin/locations/{id}", h.Location.UpdateLocation)
	r.mux.HandleFunc("DELETE /api/admin/locations/{id}", h.Location.DeleteLocation)

	// Management team
	r.mux.HandleFunc("GET /api/management-team", h.ManagementTeam.ListMembers)
	r.mux.HandleFunc("GET /api/admin/management-team", h.ManagementTeam.ListAllMembers)
	r.mux.HandleFunc("POST /api/admin/management-team", h.ManagementTeam.CreateMember)
	r.mux.HandleFunc("PATCH /api/admin/management-team/{id}", h.ManagementTeam.UpdateMember)
	r.mux.HandleFunc("DELETE /api/admin/management-team/{id}", h.ManagementTeam.DeleteMember)

	// Chat widget
	r.mux.HandleFunc("POST /api/chat", h.Chat.SendMessage)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so 304 responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
