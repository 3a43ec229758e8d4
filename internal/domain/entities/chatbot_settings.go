package entities

import (
	"encoding/json"
	"strings"
)

// ChatTheme is the colour scheme of the chat widget
type ChatTheme string

const (
	ChatThemeBlue  ChatTheme = "blue"
	ChatThemeGreen ChatTheme = "green"
	ChatThemeRed   ChatTheme = "red"
	ChatThemeGray  ChatTheme = "gray"
)

// Valid reports whether t is a known theme
func (t ChatTheme) Valid() bool {
	switch t {
	case ChatThemeBlue, ChatThemeGreen, ChatThemeRed, ChatThemeGray:
		return true
	}
	return false
}

// ChatPosition is the screen corner the chat widget is anchored to
type ChatPosition string

const (
	ChatPositionBottomRight ChatPosition = "bottom-right"
	ChatPositionBottomLeft  ChatPosition = "bottom-left"
)

// Valid reports whether p is a known position
func (p ChatPosition) Valid() bool {
	return p == ChatPositionBottomRight || p == ChatPositionBottomLeft
}

// ChatbotSettings configures the chat widget. Consumers always receive a
// fully resolved record; see MergeChatbotSettings.
type ChatbotSettings struct {
	IsEnabled      bool         `json:"isEnabled"`
	APIURL         string       `json:"apiUrl"`
	BotName        string       `json:"botName"`
	Theme          ChatTheme    `json:"theme"`
	Position       ChatPosition `json:"position"`
	WelcomeMessage string       `json:"welcomeMessage"`
	Placeholder    string       `json:"placeholder"`
	PrimaryColor   string       `json:"primaryColor"`
	AutoOpen       bool         `json:"autoOpen"`
	ShowBranding   bool         `json:"showBranding"`
	Width          int          `json:"width"`
	Height         int          `json:"height"`
}

// MergeChatbotSettings overlays the fields present in stored onto defaults.
// Fields missing from stored, or stored as null, keep their default value,
// so records written before a field existed still resolve completely.
func MergeChatbotSettings(defaults ChatbotSettings, stored []byte) (ChatbotSettings, error) {
	merged := defaults
	if len(stored) == 0 {
		return merged, nil
	}
	if err := json.Unmarshal(stored, &merged); err != nil {
		return defaults, err
	}
	return merged.Normalize(defaults), nil
}

// Normalize replaces unknown enum values, blank text and non-positive sizes
// with the corresponding value from defaults.
func (s ChatbotSettings) Normalize(defaults ChatbotSettings) ChatbotSettings {
	if !s.Theme.Valid() {
		s.Theme = defaults.Theme
	}
	if !s.Position.Valid() {
		s.Position = defaults.Position
	}
	if strings.TrimSpace(s.APIURL) == "" {
		s.APIURL = defaults.APIURL
	}
	if strings.TrimSpace(s.BotName) == "" {
		s.BotName = defaults.BotName
	}
	if strings.TrimSpace(s.WelcomeMessage) == "" {
		s.WelcomeMessage = defaults.WelcomeMessage
	}
	if strings.TrimSpace(s.Placeholder) == "" {
		s.Placeholder = defaults.Placeholder
	}
	if strings.TrimSpace(s.PrimaryColor) == "" {
		s.PrimaryColor = defaults.PrimaryColor
	}
	if s.Width <= 0 {
		s.Width = defaults.Width
	}
	if s.Height <= 0 {
		s.Height = defaults.Height
	}
	return s
}
