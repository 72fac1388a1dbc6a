package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"opsconsole/internal/core/domain/model/chat"
	"opsconsole/internal/pkg/errs"
)

// GetConversationsQueryHandler reads the caller's assistant threads.
type GetConversationsQueryHandler struct {
	db *gorm.DB
}

// NewGetConversationsQueryHandler creates a handler for thread listings.
func NewGetConversationsQueryHandler(db *gorm.DB) GetConversationsQueryHandler {
	return GetConversationsQueryHandler{db: db}
}

type conversationRow struct {
	ID           string
	OwnerID      uuid.UUID
	Title        string
	MessageCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type messageRow struct {
	ID        string
	Role      int
	Content   string
	CreatedAt time.Time
}

// Handle lists the caller's threads, most recently updated first.
func (h GetConversationsQueryHandler) Handle(
	ctx context.Context,
	query GetConversationsQuery,
) ([]ConversationSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []conversationRow
	err := h.db.WithContext(ctx).Table("conversations").
		Select(`conversations.id, conversations.title, conversations.updated_at,
			(SELECT COUNT(*) FROM messages WHERE messages.conversation_id = conversations.id) AS message_count`).
		Where("owner_id = ?", query.Caller().ID.Bytes()).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, ConversationSummaryResponse{
			ID:           row.ID,
			Title:        row.Title,
			MessageCount: row.MessageCount,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return summaries, nil
}

// GetConversationQueryHandler reads one thread with its messages.
type GetConversationQueryHandler struct {
	db *gorm.DB
}

// NewGetConversationQueryHandler creates a handler for thread detail reads.
func NewGetConversationQueryHandler(db *gorm.DB) GetConversationQueryHandler {
	return GetConversationQueryHandler{db: db}
}

// Handle executes the thread detail query. Only the owner may read a
// thread; anyone else gets a forbidden error.
func (h GetConversationQueryHandler) Handle(
	ctx context.Context,
	query GetConversationQuery,
) (GetConversationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetConversationQueryResponse{}, err
	}

	var row conversationRow
	err := h.db.WithContext(ctx).Table("conversations").
		Where("id = ?", query.ConversationID().String()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetConversationQueryResponse{},
			errs.NewObjectNotFoundError("conversationID", query.ConversationID())
	}
	if err != nil {
		return GetConversationQueryResponse{}, err
	}

	if query.Caller().ID.String() != row.OwnerID.String() {
		return GetConversationQueryResponse{}, errs.NewAccessForbiddenError("view conversation")
	}

	var messageRows []messageRow
	err = h.db.WithContext(ctx).Table("messages").
		Where("conversation_id = ?", query.ConversationID().String()).
		Order("created_at, id").
		Find(&messageRows).Error
	if err != nil {
		return GetConversationQueryResponse{}, err
	}

	messages := make([]MessageResponse, 0, len(messageRows))
	for _, message := range messageRows {
		messages = append(messages, MessageResponse{
			ID:        message.ID,
			Role:      chat.MessageRole(message.Role).String(),
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		})
	}

	return GetConversationQueryResponse{
		ID:        row.ID,
		Title:     row.Title,
		Messages:  messages,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
