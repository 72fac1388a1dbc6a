package commands

import (
	"errors"
	"strings"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var (
	ErrPostChatMessageCommandIsNotConstructed = errors.New(
		"PostChatMessageCommand must be created via NewPostChatMessageCommand constructor",
	)
	ErrQuestionIsRequired = errors.New("message content is required")
)

// PostChatMessageCommand represents a question sent to the assistant.
// ConversationID addresses an existing thread; StartNew marks it as a fresh
// identifier for a thread to be created in the same transaction.
type PostChatMessageCommand struct { //nolint:recvcheck //using for validation
	caller         services.Caller
	conversationID kernel.TokenID
	startNew       bool
	question       string

	guard guard.ConstructorGuard
}

// NewPostChatMessageCommand creates a command to post a question into an
// existing conversation.
func NewPostChatMessageCommand(
	caller services.Caller,
	conversationID kernel.TokenID,
	question string,
) (PostChatMessageCommand, error) {
	return newPostChatMessageCommand(caller, conversationID, question, false)
}

// NewStartConversationCommand creates a command that opens a new thread
// under the given pre-generated identifier and posts the first question.
func NewStartConversationCommand(
	caller services.Caller,
	conversationID kernel.TokenID,
	question string,
) (PostChatMessageCommand, error) {
	return newPostChatMessageCommand(caller, conversationID, question, true)
}

func newPostChatMessageCommand(
	caller services.Caller,
	conversationID kernel.TokenID,
	question string,
	startNew bool,
) (PostChatMessageCommand, error) {
	cmd := PostChatMessageCommand{
		guard:    guard.NewConstructorGuard(),
		startNew: startNew,
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setConversationID(conversationID),
		cmd.setQuestion(question),
	); err != nil {
		return PostChatMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c PostChatMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostChatMessageCommandIsNotConstructed)
}

// Caller returns the authenticated user asking the question.
func (c PostChatMessageCommand) Caller() services.Caller {
	return c.caller
}

// ConversationID returns the thread identifier.
func (c PostChatMessageCommand) ConversationID() kernel.TokenID {
	return c.conversationID
}

// StartNew reports whether the thread must be created first.
func (c PostChatMessageCommand) StartNew() bool {
	return c.startNew
}

// Question returns the caller's message text.
func (c PostChatMessageCommand) Question() string {
	return c.question
}

func (c *PostChatMessageCommand) setCaller(caller services.Caller) error {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *PostChatMessageCommand) setConversationID(conversationID kernel.TokenID) error {
	if err := conversationID.Validate(); err != nil {
		return err
	}

	c.conversationID = conversationID
	return nil
}

func (c *PostChatMessageCommand) setQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrQuestionIsRequired
	}

	c.question = question
	return nil
}
