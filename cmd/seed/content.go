package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zatekoja/clinicsite/internal/adapters/kv"
	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/seed"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
	"github.com/zatekoja/clinicsite/pkg/retry"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Write the default team, page and chatbot documents to the KV store",
	Long: `Reads every content document once. Documents that are missing or empty
are written from the built-in defaults; existing documents are kept.`,
	RunE: runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, args []string) error {
	backend := kv.SelectBackend(cfg.KV, nil, observability.ComponentLogger("kv"))
	defer backend.Close()

	if !backend.Durable() {
		return errors.New("KV store not configured: set KV_REST_API_URL and KV_REST_API_TOKEN")
	}

	ctx := cmd.Context()
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = 3
	if err := retry.Do(ctx, retryCfg, func() error { return backend.Ping(ctx) }); err != nil {
		return fmt.Errorf("KV store unreachable: %w", err)
	}

	svc := services.NewContentService(backend.Store(), seed.ChatbotSettings(cfg.Chat), nil, nil)

	team := svc.GetTeamMembers(ctx)
	pages := svc.GetPageContent(ctx)
	settings := svc.GetChatbotSettings(ctx)

	// Reads fall back to defaults without writing, so confirm every document landed
	for _, key := range []string{services.TeamMembersKey, services.PageContentKey, services.ChatbotSettingsKey} {
		if _, err := backend.Store().Get(ctx, key); err != nil {
			return fmt.Errorf("content document %s not stored: %w", key, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Team roster: %d members\n", len(team))
	fmt.Fprintf(cmd.OutOrStdout(), "Pages: %d\n", len(pages))
	fmt.Fprintf(cmd.OutOrStdout(), "Chatbot: %s (enabled=%t)\n", settings.BotName, settings.IsEnabled)
	return nil
}
