package ports

import (
	"context"

	"opsconsole/internal/core/domain/model/chat"
	"opsconsole/internal/core/domain/model/kernel"
)

// ChatRepository defines the persistence contract for assistant
// conversations and their messages.
type ChatRepository interface {
	// Add persists a new conversation and any messages it carries.
	Add(ctx context.Context, aggregate *chat.Conversation) error

	// Update persists new messages and the refreshed title/timestamps of an
	// existing conversation.
	Update(ctx context.Context, aggregate *chat.Conversation) error

	// Get retrieves a conversation with its messages by identifier.
	// Returns ErrObjectNotFound when no such conversation exists.
	Get(ctx context.Context, id kernel.TokenID) (*chat.Conversation, error)
}
