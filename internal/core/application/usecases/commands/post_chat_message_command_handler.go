package commands

import (
	"context"

	"opsconsole/internal/core/domain/model/chat"
	"opsconsole/internal/pkg/errs"
)

// PostChatMessageCommandHandler handles assistant questions. It appends the
// question and the responder's answer to the thread in one transaction,
// creating the thread first when the command starts a new one.
//
// Conversations are personal: only the owner may post into a thread,
// admins included.
type PostChatMessageCommandHandler struct {
	uowFactory ChatUoWFactory
	responder  *chat.CannedResponder
}

// NewPostChatMessageCommandHandler creates a handler for assistant questions.
func NewPostChatMessageCommandHandler(
	uowFactory ChatUoWFactory,
	responder *chat.CannedResponder,
) PostChatMessageCommandHandler {
	return PostChatMessageCommandHandler{
		uowFactory: uowFactory,
		responder:  responder,
	}
}

// Handle processes the question and persists the exchange.
func (h *PostChatMessageCommandHandler) Handle(ctx context.Context, cmd PostChatMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	chatRepo := uow.ChatRepository()

	var conversation *chat.Conversation
	var err error
	if cmd.StartNew() {
		conversation, err = chat.NewConversation(cmd.ConversationID(), cmd.Caller().ID)
	} else {
		conversation, err = chatRepo.Get(ctx, cmd.ConversationID())
	}
	if err != nil {
		return err
	}

	if !conversation.OwnerID().IsEqual(cmd.Caller().ID) {
		return errs.NewAccessForbiddenError("post message")
	}

	answer := h.responder.Reply(cmd.Question())
	if _, _, err = conversation.RecordExchange(cmd.Question(), answer); err != nil {
		return err
	}

	if cmd.StartNew() {
		err = chatRepo.Add(ctx, conversation)
	} else {
		err = chatRepo.Update(ctx, conversation)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
