package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classforum/classforum/internal/pkg/apperrors"
)

func newChatServiceForTest() (ChatService, *fakeChatRepo) {
	repo := newFakeChatRepo()
	return NewChatService(repo, zerolog.Nop()), repo
}

func TestChatSend(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a trimmed message", func(t *testing.T) {
		svc, repo := newChatServiceForTest()

		msg, err := svc.Send(ctx, regularUser, "  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "hello", msg.Content)
		assert.Equal(t, regularUser.ID, msg.UserID)
		assert.Len(t, repo.messages, 1)
	})

	t.Run("rejects whitespace-only content", func(t *testing.T) {
		svc, repo := newChatServiceForTest()

		_, err := svc.Send(ctx, regularUser, "   \n\t ")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Empty(t, repo.messages)
	})
}

func TestChatPoll(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatServiceForTest()

	m1, err := svc.Send(ctx, adminUser, "first")
	require.NoError(t, err)
	_, err = svc.Send(ctx, regularUser, "second")
	require.NoError(t, err)
	m3, err := svc.Send(ctx, adminUser, "third")
	require.NoError(t, err)

	t.Run("returns only messages after the cursor", func(t *testing.T) {
		msgs, err := svc.PollNew(ctx, regularUser, m1.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, m3.ID, msgs[0].ID)
	})

	t.Run("excludes the caller's own messages", func(t *testing.T) {
		msgs, err := svc.PollNew(ctx, regularUser, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		for _, m := range msgs {
			assert.NotEqual(t, regularUser.ID, m.UserID)
		}
	})

	t.Run("negative cursor behaves like zero", func(t *testing.T) {
		msgs, err := svc.PollNew(ctx, adminUser, -5)
		require.NoError(t, err)
		assert.Len(t, msgs, 1) // only the regular user's message
	})

	t.Run("history returns everything in order", func(t *testing.T) {
		msgs, err := svc.History(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "first", msgs[0].Content)
		assert.Equal(t, "third", msgs[2].Content)
	})
}
