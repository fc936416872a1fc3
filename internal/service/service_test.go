package service

import (
	"context"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/domain/registry"
	"github.com/relaymesh/chat-service/internal/metrics"
	"github.com/relaymesh/chat-service/internal/storage"
	"github.com/relaymesh/chat-service/internal/storage/memory"
)

func newCore(t *testing.T) *Core {
	t.Helper()
	return New(memory.New(), registry.NewHub(), metrics.NoopCollector{}, slog.Default())
}

func TestMessagePersistsDeliversAndFansOut(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)

	_, mb := c.Install("bob")
	subID, feed, history, err := c.SnapshotMessages(ctx)
	require.NoError(t, err)
	defer c.UnsubscribeMessages(subID)
	assert.Empty(t, history)

	m := model.Message{From: "alice", To: "bob", Text: "hi"}
	require.NoError(t, c.Message(ctx, &m))
	require.NotEmpty(t, m.Sent, "store must assign the timestamp")

	got, ok := mb.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "hi", got.Text)

	rep, ok := feed.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, m, rep)
}

func TestMessageRapidSendsDoNotCollide(t *testing.T) {
	// Back-to-back sends between the same pair land in the same
	// millisecond; every one must still be stored, distinct and in
	// order.
	ctx := context.Background()
	c := newCore(t)

	const n = 200
	for i := 0; i < n; i++ {
		m := model.Message{From: "alice", To: "bob", Text: strconv.Itoa(i)}
		require.NoError(t, c.Message(ctx, &m))
	}

	id, _, history, err := c.SnapshotMessages(ctx)
	require.NoError(t, err)
	c.UnsubscribeMessages(id)
	require.Len(t, history, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, strconv.Itoa(i), history[i].Text)
		if i > 0 {
			assert.Less(t, history[i-1].Sent, history[i].Sent)
		}
	}
}

func TestMergeMessageDeliversOnce(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)
	_, mb := c.Install("bob")

	m := model.Message{From: "alice", To: "bob", Text: "hi", Sent: "2025-01-01T00:00:00.000Z"}
	dup, err := c.MergeMessage(ctx, m)
	require.NoError(t, err)
	assert.False(t, dup)

	dup, err = c.MergeMessage(ctx, m)
	require.NoError(t, err)
	assert.True(t, dup)

	got, ok := mb.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "hi", got.Text)
	assert.Equal(t, 0, mb.Len(), "duplicate merge must not deliver again")
}

func TestMergeMessageNotRefanned(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)
	subID, feed, _, err := c.SnapshotMessages(ctx)
	require.NoError(t, err)
	defer c.UnsubscribeMessages(subID)

	_, err = c.MergeMessage(ctx, model.Message{From: "a", To: "b", Text: "x", Sent: "2025-01-01T00:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, 0, feed.Len(), "merged messages must not echo back to peers")
}

func TestMergeMessageDetectsStoreDuplicate(t *testing.T) {
	// Duplicate arriving after the dedupe cache would have evicted it
	// still falls back to the storage identity constraint.
	ctx := context.Background()
	store := memory.New()
	c := New(store, registry.NewHub(), metrics.NoopCollector{}, slog.Default())

	m := model.Message{From: "alice", To: "bob", Text: "hi", Sent: "2025-01-01T00:00:00.000Z"}
	require.NoError(t, store.AppendMessage(ctx, &m))

	dup, err := c.MergeMessage(ctx, m)
	require.NoError(t, err)
	assert.True(t, dup)
}

func TestCreateUserAnnounces(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)
	subID, feed, snapshot, err := c.SnapshotUsers(ctx)
	require.NoError(t, err)
	defer c.UnsubscribeUsers(subID)
	assert.Empty(t, snapshot)

	require.NoError(t, c.CreateUser(ctx, model.User{Name: "alice", Password: "pw"}))
	up, ok := feed.Get(ctx)
	require.True(t, ok)
	assert.True(t, up.Create)
	assert.Equal(t, "alice", up.User.Name)

	assert.ErrorIs(t, c.CreateUser(ctx, model.User{Name: "alice", Password: "pw"}), storage.ErrUserExists)
}

func TestDeleteUserAnnounces(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)
	require.NoError(t, c.CreateUser(ctx, model.User{Name: "alice", Password: "pw"}))

	subID, feed, snapshot, err := c.SnapshotUsers(ctx)
	require.NoError(t, err)
	defer c.UnsubscribeUsers(subID)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "alice", snapshot[0].User.Name)

	require.NoError(t, c.DeleteUser(ctx, "alice"))
	up, ok := feed.Get(ctx)
	require.True(t, ok)
	assert.False(t, up.Create)
	assert.Equal(t, "alice", up.User.Name)
}

func TestMergeUserUpdateSwallowsExisting(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)
	require.NoError(t, c.CreateUser(ctx, model.User{Name: "alice", Password: "pw"}))

	require.NoError(t, c.MergeUserUpdate(ctx, model.UserUpdate{
		Create: true,
		User:   model.User{Name: "alice", Password: "other"},
	}))

	// The first registration wins.
	ok, err := c.Authenticate(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMergeUserUpdateDelete(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)
	require.NoError(t, c.CreateUser(ctx, model.User{Name: "alice", Password: "pw"}))

	require.NoError(t, c.MergeUserUpdate(ctx, model.UserUpdate{User: model.User{Name: "alice"}}))
	ok, err := c.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReplayAndInstallAtomic(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)

	first := model.Message{From: "alice", To: "bob", Text: "before login"}
	require.NoError(t, c.Message(ctx, &first))

	id, mb, history, err := c.ReplayAndInstall(ctx, "bob")
	require.NoError(t, err)
	defer c.Remove("bob", id)
	require.Len(t, history, 1)
	assert.Equal(t, "before login", history[0].Text)

	second := model.Message{From: "alice", To: "bob", Text: "after login"}
	require.NoError(t, c.Message(ctx, &second))
	got, ok := mb.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "after login", got.Text)
}

func TestSnapshotMessagesIncludesHistory(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)
	m := model.Message{From: "alice", To: "bob", Text: "old"}
	require.NoError(t, c.Message(ctx, &m))

	subID, feed, history, err := c.SnapshotMessages(ctx)
	require.NoError(t, err)
	defer c.UnsubscribeMessages(subID)
	require.Len(t, history, 1)
	assert.Equal(t, "old", history[0].Text)

	live := model.Message{From: "bob", To: "alice", Text: "new"}
	require.NoError(t, c.Message(ctx, &live))
	got, ok := feed.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "new", got.Text)
}
