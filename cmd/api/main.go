package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/clinicsite/internal/adapters/database"
	"github.com/zatekoja/clinicsite/internal/adapters/kv"
	"github.com/zatekoja/clinicsite/internal/api/handlers"
	"github.com/zatekoja/clinicsite/internal/api/routes"
	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	"github.com/zatekoja/clinicsite/internal/domain/seed"
	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/chatapi"
	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
	"github.com/zatekoja/clinicsite/pkg/config"
)

// relationalRepositories holds the Postgres-backed repositories. Every field
// is nil when the relational store is not configured or unreachable.
type relationalRepositories struct {
	client         *postgres.Client
	blog           repositories.BlogRepository
	faqs           repositories.FAQRepository
	locations      repositories.LocationRepository
	managementTeam repositories.ManagementTeamRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Log.Env, cfg.Log.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Content documents: Redis when configured, memory otherwise
	backend := kv.SelectBackend(cfg.KV, nil, observability.ComponentLogger("kv"))
	defer backend.Close()

	repos := connectRelational(&cfg.Database)
	if repos.client != nil {
		defer repos.client.Close()
	}

	chatDefaults := seed.ChatbotSettings(cfg.Chat)

	contentService := services.NewContentService(backend.Store(), chatDefaults, nil, metrics)
	blogService := services.NewBlogService(repos.blog, nil, metrics)
	faqService := services.NewFAQService(repos.faqs, nil, metrics)
	locationService := services.NewLocationService(repos.locations, nil, metrics)
	managementTeamService := services.NewManagementTeamService(repos.managementTeam, nil, metrics)
	chatService := services.NewChatService(contentService, chatapi.NewClient(cfg.Chat.Timeout), nil, metrics)

	var kvPinger, dbPinger handlers.Pinger
	if backend.Durable() {
		kvPinger = backend
	}
	if repos.client != nil {
		dbPinger = repos.client
	}

	router := routes.NewRouter(routes.Handlers{
		Health:         handlers.NewHealthHandler(backend.Durable(), kvPinger, dbPinger),
		Content:        handlers.NewContentHandler(contentService),
		Blog:           handlers.NewBlogHandler(blogService),
		FAQ:            handlers.NewFAQHandler(faqService),
		Location:       handlers.NewLocationHandler(locationService),
		ManagementTeam: handlers.NewManagementTeamHandler(managementTeamService),
		Chat:           handlers.NewChatHandler(chatService),
	}, cfg.Server.AllowedOrigins, metrics)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

// connectRelational opens the Postgres client when configured. A store that
// stays unreachable after retries is treated as not configured.
func connectRelational(cfg *config.DatabaseConfig) relationalRepositories {
	if !cfg.Configured() {
		log.Info().Msg("Relational store not configured; blog, FAQ and team reads will be empty")
		return relationalRepositories{}
	}

	client, err := postgres.NewClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Relational store unavailable; continuing without it")
		return relationalRepositories{}
	}

	return relationalRepositories{
		client:         client,
		blog:           database.NewBlogPostAdapter(client),
		faqs:           database.NewFAQAdapter(client),
		locations:      database.NewLocationAdapter(client),
		managementTeam: database.NewManagementTeamAdapter(client),
	}
}
