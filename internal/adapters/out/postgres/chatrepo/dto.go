// Package chatrepo provides data transfer objects and mapping functions for
// assistant conversation persistence.
package chatrepo

import (
	"time"

	"github.com/google/uuid"

	"opsconsole/internal/core/domain/model/chat"
	"opsconsole/internal/core/domain/model/kernel"
)

// ConversationDTO represents the database structure for persisting
// conversation aggregates.
type ConversationDTO struct {
	ID        string    `gorm:"primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Messages []MessageDTO `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for conversation entities.
func (ConversationDTO) TableName() string {
	return "conversations"
}

// MessageDTO represents the database structure for persisting messages.
type MessageDTO struct {
	ID             string `gorm:"primaryKey"`
	ConversationID string `gorm:"index"`
	Role           int
	Content        string
	CreatedAt      time.Time
}

// TableName specifies the database table name for message entities.
func (MessageDTO) TableName() string {
	return "messages"
}

// fromDomain converts a conversation aggregate to its database representation.
func fromDomain(aggregate *chat.Conversation) ConversationDTO {
	messages := make([]MessageDTO, 0, len(aggregate.Messages()))
	for _, m := range aggregate.Messages() {
		messages = append(messages, messageFromDomain(m))
	}

	return ConversationDTO{
		ID:        aggregate.ID().String(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Title:     aggregate.Title(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Messages:  messages,
	}
}

func messageFromDomain(m *chat.Message) MessageDTO {
	return MessageDTO{
		ID:             m.ID().String(),
		ConversationID: m.ConversationID().String(),
		Role:           int(m.Role()),
		Content:        m.Content(),
		CreatedAt:      m.CreatedAt(),
	}
}

// toDomain converts a database DTO back into a conversation aggregate.
func toDomain(dto ConversationDTO) (*chat.Conversation, error) {
	id, err := kernel.TokenIDFromString(kernel.ConversationPrefix, dto.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	messages := make([]*chat.Message, 0, len(dto.Messages))
	for _, m := range dto.Messages {
		message, err := messageToDomain(id, m)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return chat.RestoreConversation(id, ownerID, dto.Title, messages,
		dto.CreatedAt, dto.UpdatedAt)
}

func messageToDomain(conversationID kernel.TokenID, dto MessageDTO) (*chat.Message, error) {
	id, err := kernel.TokenIDFromString(kernel.MessagePrefix, dto.ID)
	if err != nil {
		return nil, err
	}

	return chat.RestoreMessage(id, conversationID,
		chat.MessageRole(dto.Role), dto.Content, dto.CreatedAt)
}
