package queries

import (
	"errors"
	"time"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var (
	ErrGetConversationsQueryIsNotConstructed = errors.New(
		"GetConversationsQuery must be created via NewGetConversationsQuery constructor",
	)
	ErrGetConversationQueryIsNotConstructed = errors.New(
		"GetConversationQuery must be created via NewGetConversationQuery constructor",
	)
)

// GetConversationsQuery lists the caller's assistant threads, most recently
// updated first. Conversations are personal, so no cross-user listing exists.
type GetConversationsQuery struct {
	caller services.Caller

	guard guard.ConstructorGuard
}

// NewGetConversationsQuery creates a thread listing query for the caller.
func NewGetConversationsQuery(caller services.Caller) (GetConversationsQuery, error) {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return GetConversationsQuery{}, err
	}

	return GetConversationsQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConversationsQuery) Validate() error {
	return q.guard.Validate(ErrGetConversationsQueryIsNotConstructed)
}

// Caller returns the authenticated user listing their threads.
func (q GetConversationsQuery) Caller() services.Caller { return q.caller }

// ConversationSummaryResponse is one thread in the listing.
type ConversationSummaryResponse struct {
	ID           string
	Title        string
	MessageCount int
	UpdatedAt    time.Time
}

// GetConversationQuery retrieves one thread with its messages.
type GetConversationQuery struct {
	caller         services.Caller
	conversationID kernel.TokenID

	guard guard.ConstructorGuard
}

// NewGetConversationQuery creates a thread detail query for the caller.
func NewGetConversationQuery(
	caller services.Caller,
	conversationID kernel.TokenID,
) (GetConversationQuery, error) {
	if err := errors.Join(
		caller.ID.Validate(),
		caller.Role.Validate(),
		conversationID.Validate(),
	); err != nil {
		return GetConversationQuery{}, err
	}

	return GetConversationQuery{
		caller:         caller,
		conversationID: conversationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConversationQuery) Validate() error {
	return q.guard.Validate(ErrGetConversationQueryIsNotConstructed)
}

// Caller returns the authenticated user reading the thread.
func (q GetConversationQuery) Caller() services.Caller { return q.caller }

// ConversationID returns the identifier of the thread to read.
func (q GetConversationQuery) ConversationID() kernel.TokenID { return q.conversationID }

// MessageResponse is one message in a thread detail response.
type MessageResponse struct {
	ID        string
	Role      string
	Content   string
	CreatedAt time.Time
}

// GetConversationQueryResponse is a thread with its messages in send order.
type GetConversationQueryResponse struct {
	ID        string
	Title     string
	Messages  []MessageResponse
	CreatedAt time.Time
	UpdatedAt time.Time
}
