package entities

import "time"

// ChatSender identifies who wrote a chat message
type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderBot  ChatSender = "bot"
)

// ChatMessage is a single line in a chat conversation
type ChatMessage struct {
	ID     string     `json:"id"`
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
	SentAt time.Time  `json:"sent_at"`
}

// Conversation is the ordered message history of one chat widget session
type Conversation struct {
	Messages []ChatMessage `json:"messages"`
}

// Append adds msg to the end of the conversation
func (c *Conversation) Append(msg ChatMessage) {
	c.Messages = append(c.Messages, msg)
}

