package textproto

import (
	"bufio"
	"context"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymesh/chat-service/internal/metrics"
)

type client struct {
	t    *testing.T
	conn net.Conn
	r    *bufio.Reader
}

func startServer(t *testing.T) (*Server, string) {
	t.Helper()
	srv := NewServer(slog.Default(), metrics.NoopCollector{})
	require.NoError(t, srv.Listen("127.0.0.1:0"))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go srv.Serve(ctx)
	return srv, srv.Addr().String()
}

func dial(t *testing.T, addr string) *client {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetDeadline(time.Now().Add(5 * time.Second))
	return &client{t: t, conn: conn, r: bufio.NewReader(conn)}
}

func (c *client) sendFrame(frame string) {
	c.t.Helper()
	_, err := c.conn.Write(append([]byte(frame), 0))
	require.NoError(c.t, err)
}

func (c *client) recvFrame() string {
	c.t.Helper()
	frame, err := c.r.ReadString(0)
	require.NoError(c.t, err)
	return strings.TrimSuffix(frame, "\x00")
}

func (c *client) register(name, pw string) {
	c.t.Helper()
	c.sendFrame("REGISTER " + name)
	c.sendFrame(pw)
	require.Equal(c.t, "SUCCESS You are logged in.", c.recvFrame())
}

func TestRegisterAndLogin(t *testing.T) {
	_, addr := startServer(t)

	alice := dial(t, addr)
	alice.register("alice", "pw")
	alice.conn.Close()
	time.Sleep(50 * time.Millisecond) // let the session unwind

	again := dial(t, addr)
	again.sendFrame("LOGIN alice")
	again.sendFrame("pw")
	assert.Equal(t, "SUCCESS You are logged in.", again.recvFrame())
}

func TestRegisterNameTaken(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("alice", "pw")

	other := dial(t, addr)
	other.sendFrame("REGISTER alice")
	other.sendFrame("pw2")
	assert.Equal(t, `ERROR Username "alice" is not available.`, other.recvFrame())
}

func TestLoginFailures(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("alice", "pw")
	alice.conn.Close()
	time.Sleep(50 * time.Millisecond)

	c := dial(t, addr)
	c.sendFrame("LOGIN ghost")
	c.sendFrame("pw")
	assert.Equal(t, "ERROR Incorrect username.", c.recvFrame())

	c.sendFrame("LOGIN alice")
	c.sendFrame("wrong")
	assert.Equal(t, "ERROR Incorrect password.", c.recvFrame())
}

func TestAssociateRejectsMalformedHead(t *testing.T) {
	_, addr := startServer(t)
	c := dial(t, addr)
	c.sendFrame("REGISTER ab cd")
	c.sendFrame("pw")
	assert.Equal(t, "ERROR Username must not contain whitespace or be empty.", c.recvFrame())

	c.sendFrame("HELLO alice")
	c.sendFrame("pw")
	assert.Equal(t, "ERROR Must LOGIN or REGISTER to begin session.", c.recvFrame())
}

func TestSingleSessionGate(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("alice", "pw")

	intruder := dial(t, addr)
	intruder.sendFrame("LOGIN alice")
	intruder.sendFrame("pw")
	reply := intruder.recvFrame()
	assert.Equal(t, "ERROR alice is already logged in; are you trying to break in?", reply)

	notice := alice.recvFrame()
	assert.True(t, strings.HasPrefix(notice,
		"ADMIN Someone from "), "sitting session gets the break-in notice, got %q", notice)
	assert.True(t, strings.HasSuffix(notice,
		"tried to log in as you and guessed your password correctly."))
}

func TestMessageDeliveryAndSent(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("alice", "pw")
	bob := dial(t, addr)
	bob.register("bob", "pw")

	alice.sendFrame("MESSAGE bob hello there")
	assert.Equal(t, "SENT", alice.recvFrame())

	frame := bob.recvFrame()
	lines := strings.SplitN(frame, "\n", 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "MESSAGE alice", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Sent: "))
	assert.Equal(t, "hello there", lines[2])
}

func TestMessageUnknownRecipient(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("alice", "pw")

	alice.sendFrame("MESSAGE ghost hi")
	assert.Equal(t, "ERROR ghost is not a user; try LIST to see available users.", alice.recvFrame())
}

func TestOfflineQueueDrainedOnLogin(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("alice", "pw")
	bob := dial(t, addr)
	bob.register("bob", "pw")
	bob.conn.Close()
	// Let the server observe the disconnect so the sends queue instead
	// of racing the dying session.
	time.Sleep(50 * time.Millisecond)

	for _, text := range []string{"one", "two"} {
		alice.sendFrame("MESSAGE bob " + text)
		require.Equal(t, "SENT", alice.recvFrame())
	}

	back := dial(t, addr)
	back.sendFrame("LOGIN bob")
	back.sendFrame("pw")
	require.Equal(t, "SUCCESS You are logged in.", back.recvFrame())
	first := back.recvFrame()
	second := back.recvFrame()
	assert.True(t, strings.HasSuffix(first, "one"), "got %q", first)
	assert.True(t, strings.HasSuffix(second, "two"), "got %q", second)
}

func TestListOnlineSuffix(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("Alice", "pw")
	alvin := dial(t, addr)
	alvin.register("Alvin", "pw")
	alvin.conn.Close()
	bob := dial(t, addr)
	bob.register("Bob", "pw")

	time.Sleep(50 * time.Millisecond)

	alice.sendFrame("LIST Al*")
	assert.Equal(t, "LISTING\nAlice (online)\nAlvin", alice.recvFrame())

	alice.sendFrame("LIST")
	assert.Equal(t, "LISTING\nAlice (online)\nAlvin\nBob (online)", alice.recvFrame())
}

func TestDeleteDisconnects(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("alice", "pw")

	alice.sendFrame("DELETE")
	assert.Equal(t, "DELETED Account deleted; you are being disconnected.", alice.recvFrame())

	c := dial(t, addr)
	c.sendFrame("LOGIN alice")
	c.sendFrame("pw")
	assert.Equal(t, "ERROR Incorrect username.", c.recvFrame())
}

func TestUnknownCommand(t *testing.T) {
	_, addr := startServer(t)
	alice := dial(t, addr)
	alice.register("alice", "pw")
	alice.sendFrame("FROBNICATE now")
	assert.Equal(t, "ERROR Unknown command.", alice.recvFrame())
}
