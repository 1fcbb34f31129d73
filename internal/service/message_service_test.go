package service

import (
	"context"
	"testing"

	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage_ProvisionsBothUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	msg, err := f.messages.SendMessage(ctx, SendMessageInput{
		SenderID:    "u-new",
		ReceiverID:  "u-new2",
		MessageText: "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Nil(t, msg.PackageID)
	assert.False(t, msg.CreatedAt.IsZero())

	assert.Equal(t, int64(2), f.count(t, &models.User{}))
	assert.Equal(t, int64(1), f.count(t, &models.Message{}))
	assert.Equal(t, []string{KeyMessageSent}, f.pub.keys())
}

func TestSendMessage_SelfMessageCreatesOneUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.messages.SendMessage(context.Background(), SendMessageInput{
		SenderID:    "solo",
		ReceiverID:  "solo",
		MessageText: "note to self",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.count(t, &models.User{}))
}

func TestSendMessage_MissingPackageRollsBackUsers(t *testing.T) {
	f := newFixture(t)

	_, err := f.messages.SendMessage(context.Background(), SendMessageInput{
		SenderID:    "a",
		ReceiverID:  "b",
		PackageID:   strPtr("pkg-404"),
		MessageText: "about that trip",
	})
	assert.ErrorIs(t, err, ErrPackageNotFound)
	assert.Zero(t, f.count(t, &models.User{}))
	assert.Zero(t, f.count(t, &models.Message{}))
}

func TestSendMessage_RequiresParticipants(t *testing.T) {
	f := newFixture(t)

	_, err := f.messages.SendMessage(context.Background(), SendMessageInput{ReceiverID: "b", MessageText: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.messages.SendMessage(context.Background(), SendMessageInput{SenderID: "a", MessageText: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSendMessage_ScopedToPackage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.packages.UpdatePackage(ctx, "pkg-1", nil)
	require.NoError(t, err)

	_, err = f.messages.SendMessage(ctx, SendMessageInput{
		SenderID:      "agent-user",
		ReceiverID:    "guest",
		PackageID:     strPtr("pkg-1"),
		MessageText:   "itinerary attached",
		AttachmentURL: strPtr("https://cdn.partywknd.io/itinerary.pdf"),
	})
	require.NoError(t, err)
	_, err = f.messages.SendMessage(ctx, SendMessageInput{SenderID: "guest", ReceiverID: "agent-user", MessageText: "thanks"})
	require.NoError(t, err)

	scoped, err := f.messages.ListMessages(ctx, repository.MessageFilter{PackageID: "pkg-1"})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "https://cdn.partywknd.io/itinerary.pdf", *scoped[0].AttachmentURL)

	all, err := f.messages.ListMessages(ctx, repository.MessageFilter{UserID: "guest"})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
