package seed

import (
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/pkg/config"
)

// ChatbotSettings returns the default chat widget settings, taking the
// endpoint, bot name, theme and colour from configuration.
func ChatbotSettings(cfg config.ChatConfig) entities.ChatbotSettings {
	settings := entities.ChatbotSettings{
		IsEnabled:      true,
		APIURL:         cfg.APIURL,
		BotName:        cfg.BotName,
		Theme:          entities.ChatTheme(cfg.Theme),
		Position:       entities.ChatPositionBottomRight,
		WelcomeMessage: "Hi there! How can we help you today?",
		Placeholder:    "Type your message...",
		PrimaryColor:   cfg.PrimaryColor,
		AutoOpen:       false,
		ShowBranding:   true,
		Width:          380,
		Height:         600,
	}

	return settings.Normalize(entities.ChatbotSettings{
		APIURL:         "http://localhost:5000/chat",
		BotName:        "Care Assistant",
		Theme:          entities.ChatThemeBlue,
		Position:       entities.ChatPositionBottomRight,
		WelcomeMessage: settings.WelcomeMessage,
		Placeholder:    settings.Placeholder,
		PrimaryColor:   "#2563eb",
		Width:          settings.Width,
		Height:         settings.Height,
	})
}
