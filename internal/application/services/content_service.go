package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/providers"
	"github.com/zatekoja/clinicsite/internal/domain/seed"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
)

// Keys of the content documents in the document store
const (
	TeamMembersKey     = "team_members"
	PageContentKey     = "page_content"
	ChatbotSettingsKey = "chatbot_settings"
)

type documentState int

const (
	documentFound documentState = iota
	documentMissing
	documentUnavailable
)

// ContentService reads and writes the site's editable content documents:
// the team roster, the page content map and the chatbot settings. Each
// document is seeded from static data on the first read that finds it
// missing. Reads never fail and writes never report failure; problems are
// logged and answered with the static seed.
type ContentService struct {
	store           providers.DocumentStore
	chatbotDefaults entities.ChatbotSettings
	logger          *zerolog.Logger
	metrics         *observability.Metrics
}

// NewContentService creates a content service over store. A nil logger uses
// the global logger; metrics may be nil.
func NewContentService(
	store providers.DocumentStore,
	chatbotDefaults entities.ChatbotSettings,
	logger *zerolog.Logger,
	metrics *observability.Metrics,
) *ContentService {
	if logger == nil {
		logger = observability.ComponentLogger("content")
	}
	return &ContentService{
		store:           store,
		chatbotDefaults: chatbotDefaults,
		logger:          logger,
		metrics:         metrics,
	}
}

// Durable reports whether content is persisted in the durable KV store
func (s *ContentService) Durable() bool {
	return s.store.Durable()
}

// GetTeamMembers returns the team roster
func (s *ContentService) GetTeamMembers(ctx context.Context) []entities.TeamMember {
	return getDocument(ctx, s, TeamMembersKey, seed.TeamMembers)
}

// UpdateTeamMembers replaces the team roster
func (s *ContentService) UpdateTeamMembers(ctx context.Context, members []entities.TeamMember) {
	s.write(ctx, TeamMembersKey, members)
}

// GetPageContent returns the content documents of every page
func (s *ContentService) GetPageContent(ctx context.Context) entities.PageContent {
	return getDocument(ctx, s, PageContentKey, seed.PageContent)
}

// GetPage returns the content document of one page; unknown pages yield an
// empty document.
func (s *ContentService) GetPage(ctx context.Context, page string) entities.PageDocument {
	if doc, ok := s.GetPageContent(ctx)[page]; ok && doc != nil {
		return doc
	}
	return entities.PageDocument{}
}

// UpdatePageContent replaces the content documents of every page
func (s *ContentService) UpdatePageContent(ctx context.Context, content entities.PageContent) {
	s.write(ctx, PageContentKey, content)
}

// GetChatbotSettings returns the chatbot settings with every field resolved:
// fields absent from the stored record take their default value.
func (s *ContentService) GetChatbotSettings(ctx context.Context) entities.ChatbotSettings {
	raw, state := s.load(ctx, ChatbotSettingsKey)

	switch state {
	case documentFound:
		merged, err := entities.MergeChatbotSettings(s.chatbotDefaults, raw)
		if err != nil {
			s.log(ctx).Error().Err(err).Str("key", ChatbotSettingsKey).Msg("Stored document is unreadable; using defaults")
			observability.RecordFallback(ctx, s.metrics, ChatbotSettingsKey, "corrupt")
			return s.chatbotDefaults
		}
		observability.RecordStoreHit(ctx, s.metrics, ChatbotSettingsKey)
		return merged
	case documentMissing:
		s.seedDocument(ctx, ChatbotSettingsKey, s.chatbotDefaults)
	}
	return s.chatbotDefaults
}

// UpdateChatbotSettings replaces the stored chatbot settings
func (s *ContentService) UpdateChatbotSettings(ctx context.Context, settings entities.ChatbotSettings) {
	s.write(ctx, ChatbotSettingsKey, settings)
}

// getDocument decodes the document at key, seeding it when missing. The
// returned value is decoded fresh on every call, so callers may mutate it.
func getDocument[T any](ctx context.Context, s *ContentService, key string, seedFn func() T) T {
	raw, state := s.load(ctx, key)

	switch state {
	case documentFound:
		var value T
		if err := json.Unmarshal(raw, &value); err != nil {
			s.log(ctx).Error().Err(err).Str("key", key).Msg("Stored document is unreadable; using seed data")
			observability.RecordFallback(ctx, s.metrics, key, "corrupt")
			return seedFn()
		}
		observability.RecordStoreHit(ctx, s.metrics, key)
		return value
	case documentMissing:
		value := seedFn()
		s.seedDocument(ctx, key, value)
		return value
	default:
		return seedFn()
	}
}

func (s *ContentService) load(ctx context.Context, key string) ([]byte, documentState) {
	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, providers.ErrDocumentNotFound) {
		return nil, documentMissing
	}
	if err != nil {
		// A failed read must not overwrite whatever the store holds.
		s.log(ctx).Error().Err(err).Str("key", key).Msg("Failed to read content document; using seed data")
		observability.RecordFallback(ctx, s.metrics, key, "unavailable")
		return nil, documentUnavailable
	}
	if isEmptyDocument(raw) {
		return nil, documentMissing
	}
	return raw, documentFound
}

func (s *ContentService) seedDocument(ctx context.Context, key string, value any) {
	s.log(ctx).Info().Str("key", key).Bool("durable", s.store.Durable()).Msg("Seeding content document")
	observability.RecordStoreSeed(ctx, s.metrics, key)
	s.write(ctx, key, value)
}

func (s *ContentService) write(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("key", key).Msg("Failed to encode content document")
		return
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		s.log(ctx).Error().Err(err).Str("key", key).Msg("Failed to write content document")
	}
}

func (s *ContentService) log(ctx context.Context) *zerolog.Logger {
	return observability.LoggerFromContext(ctx, s.logger)
}

// isEmptyDocument reports whether raw holds nothing worth serving: no bytes,
// null, an empty string, an empty array or an empty object.
func isEmptyDocument(raw []byte) bool {
	if len(raw) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch doc := v.(type) {
	case nil:
		return true
	case string:
		return doc == ""
	case []any:
		return len(doc) == 0
	case map[string]any:
		return len(doc) == 0
	}
	return false
}
