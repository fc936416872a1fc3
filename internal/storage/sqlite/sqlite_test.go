package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/storage"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSchemaIdempotent(t *testing.T) {
	dir := t.TempDir()
	pathname := filepath.Join(dir, "chat.db")
	s, err := Open(pathname)
	require.NoError(t, err)
	require.NoError(t, s.InsertUser(context.Background(), model.User{Name: "alice", Password: "pw"}))
	require.NoError(t, s.Close())

	// Reopening an existing database keeps its contents.
	s, err = Open(pathname)
	require.NoError(t, err)
	defer s.Close()
	ok, err := s.UserExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInsertUserConflict(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	require.NoError(t, s.InsertUser(ctx, model.User{Name: "alice", Password: "pw"}))
	assert.ErrorIs(t, s.InsertUser(ctx, model.User{Name: "alice", Password: "pw2"}), storage.ErrUserExists)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	require.NoError(t, s.InsertUser(ctx, model.User{Name: "alice", Password: "pw"}))

	ok, err := s.Authenticate(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Authenticate(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListUsersGlob(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	for _, name := range []string{"alice", "alina", "bob"} {
		require.NoError(t, s.InsertUser(ctx, model.User{Name: name, Password: "pw"}))
	}

	names, err := s.ListUsers(ctx, "al*")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alina"}, names)

	names, err = s.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alina", "bob"}, names)
}

func TestAppendMessageDedupe(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	m := model.Message{From: "alice", To: "bob", Text: "hi", Sent: "2025-01-02T03:04:05.678Z"}
	require.NoError(t, s.AppendMessage(ctx, &m))
	dup := m
	dup.Text = "different body, same identity"
	assert.ErrorIs(t, s.AppendMessage(ctx, &dup), storage.ErrDuplicateMessage)

	// Same pair, different timestamp is a new message.
	later := model.Message{From: "alice", To: "bob", Text: "hi", Sent: "2025-01-02T03:04:05.679Z"}
	assert.NoError(t, s.AppendMessage(ctx, &later))
}

func TestAppendAssignsCanonicalTimestamp(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	m := model.Message{From: "alice", To: "bob", Text: "hi"}
	require.NoError(t, s.AppendMessage(ctx, &m))
	_, err := model.ParseSent(m.Sent)
	assert.NoError(t, err)
}

func TestScanMessagesOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	s := open(t)
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

	all, err := s.ScanMessages(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "other", all[0].Text)
}

func TestDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	require.NoError(t, s.InsertUser(ctx, model.User{Name: "alice", Password: "pw"}))
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
