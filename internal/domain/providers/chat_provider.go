package providers

import (
	"context"
	"errors"
)

var (
	// ErrChatTimeout means the reply service did not answer within the budget
	ErrChatTimeout = errors.New("chat reply timed out")

	// ErrChatUnavailable means the reply service could not be reached
	ErrChatUnavailable = errors.New("chat reply service unreachable")

	// ErrChatBadResponse means the reply service answered with a non-2xx
	// status or a body without a reply
	ErrChatBadResponse = errors.New("chat reply service returned an invalid response")
)

// ChatReplyProvider forwards a visitor's message to the external reply service
type ChatReplyProvider interface {
	Reply(ctx context.Context, endpoint, message string) (string, error)
}
