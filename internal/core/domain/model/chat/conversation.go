package chat

import (
	"errors"
	"time"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/pkg/errs"
)

// ErrConversationIsNotConstructed is returned when a Conversation was not
// created through NewConversation or RestoreConversation.
var ErrConversationIsNotConstructed = errors.New(
	"Conversation must be created via NewConversation or RestoreConversation")

const titleMaxLength = 50

// Conversation is an assistant chat thread owned by a single user.
// Messages are appended in pairs: the caller's question followed by the
// responder's answer.
type Conversation struct {
	id        kernel.TokenID
	ownerID   kernel.UUID
	title     string
	messages  []*Message
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewConversation starts a thread for ownerID. The title is derived from
// the first question once RecordExchange is called.
func NewConversation(id kernel.TokenID, ownerID kernel.UUID) (*Conversation, error) {
	now := time.Now().UTC()
	return RestoreConversation(id, ownerID, "", nil, now, now)
}

// RestoreConversation reconstructs a conversation from persistence.
func RestoreConversation(
	id kernel.TokenID,
	ownerID kernel.UUID,
	title string,
	messages []*Message,
	createdAt, updatedAt time.Time,
) (*Conversation, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}
	for _, m := range messages {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if !m.ConversationID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidError("messages")
		}
	}

	return &Conversation{
		id:            id,
		ownerID:       ownerID,
		title:         title,
		messages:      messages,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the conversation was created through a constructor.
func (c *Conversation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConversationIsNotConstructed
	}
	return nil
}

// RecordExchange appends a question/answer pair and returns both messages.
// The first question of a thread also becomes its title.
func (c *Conversation) RecordExchange(question, answer string) (*Message, *Message, error) {
	userMsg, err := NewMessage(c.id, MessageRoleUser, question)
	if err != nil {
		return nil, nil, err
	}
	assistantMsg, err := NewMessage(c.id, MessageRoleAssistant, answer)
	if err != nil {
		return nil, nil, err
	}

	if len(c.messages) == 0 {
		c.title = deriveTitle(question)
	}
	c.messages = append(c.messages, userMsg, assistantMsg)
	c.updatedAt = time.Now().UTC()

	return userMsg, assistantMsg, nil
}

func deriveTitle(question string) string {
	runes := []rune(question)
	if len(runes) <= titleMaxLength {
		return question
	}
	return string(runes[:titleMaxLength]) + "..."
}

// ID returns the conversation identifier.
func (c *Conversation) ID() kernel.TokenID { return c.id }

// OwnerID returns the owning user's identifier.
func (c *Conversation) OwnerID() kernel.UUID { return c.ownerID }

// Title returns the thread title derived from the first question.
func (c *Conversation) Title() string { return c.title }

// Messages returns the thread's messages in append order.
func (c *Conversation) Messages() []*Message { return c.messages }

// CreatedAt returns the creation timestamp.
func (c *Conversation) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last-exchange timestamp.
func (c *Conversation) UpdatedAt() time.Time { return c.updatedAt }
