package service

import (
	"context"
	"testing"
	"time"

	"bbl-admins-portal/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedAdmin(t *testing.T, env *testEnv, name, email string) *entity.AdminOutputModel {
	t.Helper()
	ctx := context.Background()

	admin := invite(t, env, name, email)
	_, err := env.services.Admin.SetPassword(ctx, admin.Id, "a-strong-password")
	require.NoError(t, err)
	approved, err := env.services.Admin.Approve(ctx, admin.Id)
	require.NoError(t, err)

	return approved
}

func TestPostMessageCarriesAuthorDetails(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	author := approvedAdmin(t, env, "Tatenda", "tatenda@example.com")

	message, err := env.services.Chat.PostMessage(ctx, author.Id, "Morning team")
	require.NoError(t, err)
	assert.Equal(t, author.Id, message.AdminId)
	assert.Equal(t, "Tatenda", message.AdminName)
	assert.Equal(t, "Morning team", message.Message)
	assert.False(t, message.Edited)

	_, err = env.services.Chat.PostMessage(ctx, "no-such-admin", "hello")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestPostMessageRendersTags(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	author := approvedAdmin(t, env, "Tatenda", "tatenda@example.com")

	message, err := env.services.Chat.PostMessage(ctx, author.Id, "Check #BBL-123456 and #settings")
	require.NoError(t, err)

	assert.Contains(t, message.MessageHtml, `href="/admin/tracking?q=BBL-123456"`)
	assert.Contains(t, message.MessageHtml, `href="/admin/settings"`)
	assert.Contains(t, message.MessageHtml, "text-accent underline")

	// Raw HTML in the message body gets escaped, not rendered.
	message, err = env.services.Chat.PostMessage(ctx, author.Id, "<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, message.MessageHtml, "<script>")
}

func TestEditMessageWithinWindow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	author := approvedAdmin(t, env, "Tatenda", "tatenda@example.com")
	other := approvedAdmin(t, env, "Simba", "simba@example.com")

	message, err := env.services.Chat.PostMessage(ctx, author.Id, "Original")
	require.NoError(t, err)

	// Only the author may edit.
	_, err = env.services.Chat.EditMessage(ctx, other.Id, message.Id, "Hijacked")
	assert.ErrorIs(t, err, ErrNotMessageAuthor)

	edited, err := env.services.Chat.EditMessage(ctx, author.Id, message.Id, "Corrected")
	require.NoError(t, err)
	assert.Equal(t, "Corrected", edited.Message)
	assert.True(t, edited.Edited)
}

func TestEditWindowCloses(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	author := approvedAdmin(t, env, "Tatenda", "tatenda@example.com")

	message, err := env.services.Chat.PostMessage(ctx, author.Id, "Original")
	require.NoError(t, err)

	// Age the message past the window.
	stored, err := env.repos.Chat.GetMessageById(ctx, message.Id)
	require.NoError(t, err)
	stored.Timestamp = time.Now().UTC().Add(-entity.EditWindow - time.Minute)
	require.NoError(t, env.repos.Chat.UpdateMessage(ctx, stored))

	_, err = env.services.Chat.EditMessage(ctx, author.Id, message.Id, "Too late")
	assert.ErrorIs(t, err, ErrEditWindowClosed)

	err = env.services.Chat.DeleteMessage(ctx, author.Id, message.Id)
	assert.ErrorIs(t, err, ErrEditWindowClosed)
}

func TestDeleteMessage(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	author := approvedAdmin(t, env, "Tatenda", "tatenda@example.com")
	other := approvedAdmin(t, env, "Simba", "simba@example.com")

	message, err := env.services.Chat.PostMessage(ctx, author.Id, "Delete me")
	require.NoError(t, err)

	err = env.services.Chat.DeleteMessage(ctx, other.Id, message.Id)
	assert.ErrorIs(t, err, ErrNotMessageAuthor)

	require.NoError(t, env.services.Chat.DeleteMessage(ctx, author.Id, message.Id))

	messages, err := env.services.Chat.GetMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestClearHistory(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	author := approvedAdmin(t, env, "Tatenda", "tatenda@example.com")
	for _, text := range []string{"one", "two", "three"} {
		_, err := env.services.Chat.PostMessage(ctx, author.Id, text)
		require.NoError(t, err)
	}

	require.NoError(t, env.services.Chat.ClearHistory(ctx))

	messages, err := env.services.Chat.GetMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
