package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/storage"
)

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.InsertUser(ctx, model.User{Name: "alice", Password: "pw"}))
	assert.ErrorIs(t, s.InsertUser(ctx, model.User{Name: "alice", Password: "other"}), storage.ErrUserExists)

	ok, err := s.Authenticate(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Authenticate(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = s.Authenticate(ctx, "nobody", "pw")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.DeleteUser(ctx, "alice"))
	ok, err = s.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, s.DeleteUser(ctx, "alice"), "deleting an absent user is a no-op")
}

func TestListUsersGlob(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, name := range []string{"alice", "alina", "bob"} {
		require.NoError(t, s.InsertUser(ctx, model.User{Name: name, Password: "pw"}))
	}

	names, err := s.ListUsers(ctx, "al*")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alina"}, names)

	names, err = s.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alina", "bob"}, names)

	names, err = s.ListUsers(ctx, "z*")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestAppendAssignsTimestamp(t *testing.T) {
	ctx := context.Background()
	s := New()
	m := model.Message{From: "alice", To: "bob", Text: "hi"}
	require.NoError(t, s.AppendMessage(ctx, &m))
	require.NotEmpty(t, m.Sent)
	_, err := model.ParseSent(m.Sent)
	assert.NoError(t, err, "assigned timestamp must use the canonical layout")
}

func TestAppendDuplicate(t *testing.T) {
	ctx := context.Background()
	s := New()
	m := model.Message{From: "alice", To: "bob", Text: "hi", Sent: "2025-01-02T03:04:05.678Z"}
	require.NoError(t, s.AppendMessage(ctx, &m))
	dup := m
	assert.ErrorIs(t, s.AppendMessage(ctx, &dup), storage.ErrDuplicateMessage)

	msgs, err := s.ScanMessages(ctx, "")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestScanMessagesParticipantOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, m := range []model.Message{
		{From: "alice", To: "bob", Text: "second", Sent: "2025-01-01T00:00:02.000Z"},
		{From: "bob", To: "alice", Text: "first", Sent: "2025-01-01T00:00:01.000Z"},
		{From: "carol", To: "dan", Text: "other", Sent: "2025-01-01T00:00:00.000Z"},
	} {
		m := m
		require.NoError(t, s.AppendMessage(ctx, &m))
	}

	msgs, err := s.ScanMessages(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
}

func TestDeleteUserRemovesConversations(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, m := range []model.Message{
		{From: "alice", To: "bob", Text: "a", Sent: "2025-01-01T00:00:00.000Z"},
		{From: "bob", To: "alice", Text: "b", Sent: "2025-01-01T00:00:01.000Z"},
		{From: "carol", To: "dan", Text: "c", Sent: "2025-01-01T00:00:02.000Z"},
	} {
		m := m
		require.NoError(t, s.AppendMessage(ctx, &m))
	}

	require.NoError(t, s.DeleteUser(ctx, "alice"))
	msgs, err := s.ScanMessages(ctx, "")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "c", msgs[0].Text)
}
