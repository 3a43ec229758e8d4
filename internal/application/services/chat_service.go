package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/providers"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

// Bot messages used when the reply service does not produce a reply
const (
	ChatTimeoutMessage    = "Sorry, I'm taking longer than expected to respond. Please try again in a moment."
	ChatConnectionMessage = "Sorry, I'm having trouble connecting right now. Please check your connection and try again."
	ChatApologyMessage    = "Sorry, I couldn't process your message. Please try again or call us directly."
)

var (
	// ErrBlankMessage is returned for messages with no visible text
	ErrBlankMessage = apperrors.NewValidationError("message must not be blank")

	// ErrChatDisabled is returned when the chatbot is switched off in settings
	ErrChatDisabled = errors.New("chatbot is disabled")
)

// ChatSettingsSource provides the resolved chatbot settings
type ChatSettingsSource interface {
	GetChatbotSettings(ctx context.Context) entities.ChatbotSettings
}

// ChatService relays visitor messages to the external reply service and
// records both sides in the conversation.
type ChatService struct {
	settings ChatSettingsSource
	provider providers.ChatReplyProvider
	logger   *zerolog.Logger
	metrics  *observability.Metrics
	now      func() time.Time
}

// NewChatService creates a new chat service
func NewChatService(
	settings ChatSettingsSource,
	provider providers.ChatReplyProvider,
	logger *zerolog.Logger,
	metrics *observability.Metrics,
) *ChatService {
	if logger == nil {
		logger = observability.ComponentLogger("chat")
	}
	return &ChatService{
		settings: settings,
		provider: provider,
		logger:   logger,
		metrics:  metrics,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start opens a conversation with the configured welcome message
func (s *ChatService) Start(ctx context.Context) (*entities.Conversation, error) {
	settings := s.settings.GetChatbotSettings(ctx)
	if !settings.IsEnabled {
		return nil, ErrChatDisabled
	}

	conv := &entities.Conversation{}
	conv.Append(s.message(entities.ChatSenderBot, settings.WelcomeMessage))
	return conv, nil
}

// Send appends text and exactly one bot message to conv and returns the bot
// message. Blank text is rejected without touching conv. Reply service
// failures are answered with a bot message, never an error.
func (s *ChatService) Send(ctx context.Context, conv *entities.Conversation, text string) (entities.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ChatMessage{}, ErrBlankMessage
	}

	settings := s.settings.GetChatbotSettings(ctx)
	if !settings.IsEnabled {
		return entities.ChatMessage{}, ErrChatDisabled
	}

	conv.Append(s.message(entities.ChatSenderUser, text))

	ctx, span := observability.StartSpan(ctx, "chat.reply")
	defer span.End()

	reply, err := s.provider.Reply(ctx, settings.APIURL, text)
	if err != nil {
		observability.RecordError(span, err)
		reply = s.fallbackReply(ctx, err)
	}

	msg := s.message(entities.ChatSenderBot, reply)
	conv.Append(msg)
	return msg, nil
}

func (s *ChatService) fallbackReply(ctx context.Context, err error) string {
	logger := observability.LoggerFromContext(ctx, s.logger)

	switch {
	case errors.Is(err, providers.ErrChatTimeout):
		logger.Warn().Err(err).Msg("Chat reply timed out")
		observability.RecordFallback(ctx, s.metrics, "chat", "timeout")
		return ChatTimeoutMessage
	case errors.Is(err, providers.ErrChatUnavailable):
		logger.Warn().Err(err).Msg("Chat reply service unreachable")
		observability.RecordFallback(ctx, s.metrics, "chat", "unavailable")
		return ChatConnectionMessage
	default:
		logger.Error().Err(err).Msg("Chat reply service failed")
		observability.RecordFallback(ctx, s.metrics, "chat", "bad_response")
		return ChatApologyMessage
	}
}

func (s *ChatService) message(sender entities.ChatSender, text string) entities.ChatMessage {
	return entities.ChatMessage{
		ID:     uuid.New().String(),
		Sender: sender,
		Text:   text,
		SentAt: s.now(),
	}
}
