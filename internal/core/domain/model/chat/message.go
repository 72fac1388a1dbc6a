package chat

import (
	"errors"
	"fmt"
	"time"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message was not created
// through NewMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

// MessageRole identifies the author side of a chat message.
type MessageRole int

const (
	// MessageRoleUnknown represents an invalid or undefined message role.
	MessageRoleUnknown MessageRole = iota

	// MessageRoleUser marks a message written by the caller.
	MessageRoleUser

	// MessageRoleAssistant marks a canned reply produced by the responder.
	MessageRoleAssistant
)

func getMessageRoleStrings() map[MessageRole]string {
	return map[MessageRole]string{
		MessageRoleUnknown:   "unknown",
		MessageRoleUser:      "user",
		MessageRoleAssistant: "assistant",
	}
}

// ParseMessageRole converts "user" or "assistant" into a MessageRole.
func ParseMessageRole(s string) (MessageRole, error) {
	for role, str := range getMessageRoleStrings() {
		if role != MessageRoleUnknown && str == s {
			return role, nil
		}
	}
	return MessageRoleUnknown, errs.NewValueIsInvalidErrorWithCause("messageRole",
		fmt.Errorf("%q is not a valid message role", s))
}

// Validate checks if the MessageRole value is valid.
func (r MessageRole) Validate() error {
	if r != MessageRoleUser && r != MessageRoleAssistant {
		return errs.NewValueIsInvalidErrorWithCause("messageRole",
			fmt.Errorf("%d is not a valid message role", r))
	}
	return nil
}

// String returns the lowercase role name. Implements fmt.Stringer.
func (r MessageRole) String() string {
	if str, ok := getMessageRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Message is one entry in an assistant conversation.
type Message struct {
	id             kernel.TokenID
	conversationID kernel.TokenID
	role           MessageRole
	content        string
	createdAt      time.Time

	isConstructed bool
}

// NewMessage creates a message with a fresh identifier.
func NewMessage(conversationID kernel.TokenID, role MessageRole, content string) (*Message, error) {
	return RestoreMessage(kernel.NewTokenID(kernel.MessagePrefix),
		conversationID, role, content, time.Now().UTC())
}

// RestoreMessage reconstructs a message from persistence.
func RestoreMessage(
	id, conversationID kernel.TokenID,
	role MessageRole,
	content string,
	createdAt time.Time,
) (*Message, error) {
	if err := errors.Join(
		id.Validate(),
		conversationID.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errs.NewValueIsRequiredError("message content")
	}

	return &Message{
		id:             id,
		conversationID: conversationID,
		role:           role,
		content:        content,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the message was created through a constructor.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message identifier.
func (m *Message) ID() kernel.TokenID { return m.id }

// ConversationID returns the owning conversation's identifier.
func (m *Message) ConversationID() kernel.TokenID { return m.conversationID }

// Role returns the author side of the message.
func (m *Message) Role() MessageRole { return m.role }

// Content returns the message text.
func (m *Message) Content() string { return m.content }

// CreatedAt returns the creation timestamp.
func (m *Message) CreatedAt() time.Time { return m.createdAt }
