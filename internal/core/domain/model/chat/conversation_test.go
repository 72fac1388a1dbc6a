package chat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsconsole/internal/core/domain/model/chat"
	"opsconsole/internal/core/domain/model/kernel"
)

func Test_NewConversation(t *testing.T) {
	t.Run("should create empty conversation for owner", func(t *testing.T) {
		owner := kernel.NewUUID()

		conv, err := chat.NewConversation(kernel.NewTokenID(kernel.ConversationPrefix), owner)

		require.NoError(t, err)
		assert.NoError(t, conv.Validate())
		assert.True(t, conv.OwnerID().IsEqual(owner))
		assert.Equal(t, kernel.ConversationPrefix, conv.ID().Prefix())
		assert.Empty(t, conv.Messages())
		assert.Empty(t, conv.Title())
	})

	t.Run("should fail on empty owner", func(t *testing.T) {
		_, err := chat.NewConversation(kernel.NewTokenID(kernel.ConversationPrefix), kernel.UUID{})

		assert.Error(t, err)
	})
}

func Test_Conversation_RecordExchange(t *testing.T) {
	t.Run("should append question and answer in order", func(t *testing.T) {
		conv, err := chat.NewConversation(kernel.NewTokenID(kernel.ConversationPrefix), kernel.NewUUID())
		require.NoError(t, err)

		userMsg, assistantMsg, err := conv.RecordExchange("where is my order?", "check the orders page")

		require.NoError(t, err)
		require.Len(t, conv.Messages(), 2)
		assert.Equal(t, userMsg, conv.Messages()[0])
		assert.Equal(t, assistantMsg, conv.Messages()[1])
		assert.Equal(t, chat.MessageRoleUser, userMsg.Role())
		assert.Equal(t, chat.MessageRoleAssistant, assistantMsg.Role())
		assert.Equal(t, "where is my order?", userMsg.Content())
		assert.Equal(t, "check the orders page", assistantMsg.Content())
		assert.True(t, userMsg.ConversationID().IsEqual(conv.ID()))
	})

	t.Run("should derive title from first question", func(t *testing.T) {
		conv, err := chat.NewConversation(kernel.NewTokenID(kernel.ConversationPrefix), kernel.NewUUID())
		require.NoError(t, err)

		_, _, err = conv.RecordExchange("short question", "answer")
		require.NoError(t, err)

		assert.Equal(t, "short question", conv.Title())
	})

	t.Run("should truncate long titles", func(t *testing.T) {
		conv, err := chat.NewConversation(kernel.NewTokenID(kernel.ConversationPrefix), kernel.NewUUID())
		require.NoError(t, err)
		question := strings.Repeat("a", 80)

		_, _, err = conv.RecordExchange(question, "answer")
		require.NoError(t, err)

		assert.Equal(t, strings.Repeat("a", 50)+"...", conv.Title())
	})

	t.Run("should keep title after later exchanges", func(t *testing.T) {
		conv, err := chat.NewConversation(kernel.NewTokenID(kernel.ConversationPrefix), kernel.NewUUID())
		require.NoError(t, err)
		_, _, err = conv.RecordExchange("first question", "first answer")
		require.NoError(t, err)

		_, _, err = conv.RecordExchange("second question", "second answer")
		require.NoError(t, err)

		assert.Equal(t, "first question", conv.Title())
		assert.Len(t, conv.Messages(), 4)
	})

	t.Run("should fail on empty question", func(t *testing.T) {
		conv, err := chat.NewConversation(kernel.NewTokenID(kernel.ConversationPrefix), kernel.NewUUID())
		require.NoError(t, err)

		_, _, err = conv.RecordExchange("", "answer")

		assert.Error(t, err)
		assert.Empty(t, conv.Messages())
	})
}

func Test_RestoreConversation(t *testing.T) {
	t.Run("should reject message from different conversation", func(t *testing.T) {
		convID := kernel.NewTokenID(kernel.ConversationPrefix)
		otherID := kernel.NewTokenID(kernel.ConversationPrefix)
		msg, err := chat.NewMessage(otherID, chat.MessageRoleUser, "hello")
		require.NoError(t, err)

		_, err = chat.RestoreConversation(convID, kernel.NewUUID(), "t",
			[]*chat.Message{msg}, msg.CreatedAt(), msg.CreatedAt())

		assert.Error(t, err)
	})
}

func Test_ParseMessageRole(t *testing.T) {
	t.Run("should parse known roles", func(t *testing.T) {
		for _, s := range []string{"user", "assistant"} {
			role, err := chat.ParseMessageRole(s)

			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("should fail on unknown role", func(t *testing.T) {
		_, err := chat.ParseMessageRole("system")

		assert.Error(t, err)
	})
}

func Test_CannedResponder(t *testing.T) {
	responder := chat.NewCannedResponder()

	t.Run("should match keywords case-insensitively", func(t *testing.T) {
		reply := responder.Reply("Where is my ORDER?")

		assert.Contains(t, reply, "orders")
	})

	t.Run("should answer billing questions with pricing rules", func(t *testing.T) {
		reply := responder.Reply("how is the total calculated?")

		assert.Contains(t, reply, "9% tax")
		assert.Contains(t, reply, "5.00 shipping")
	})

	t.Run("should fall back to default reply", func(t *testing.T) {
		reply := responder.Reply("what is the weather like?")

		assert.Contains(t, reply, "I'm not sure")
	})
}
