package grpchandler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/relaymesh/chat-service/gen/chatpb"
	"github.com/relaymesh/chat-service/gen/replicapb"
	"github.com/relaymesh/chat-service/internal/cluster"
	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/domain/registry"
	"github.com/relaymesh/chat-service/internal/metrics"
	"github.com/relaymesh/chat-service/internal/service"
	"github.com/relaymesh/chat-service/internal/storage/memory"
)

type firehoseStream struct {
	fakeServerStream
	mu     sync.Mutex
	frames []*replicapb.ReplicatedMessage
}

func (s *firehoseStream) Send(m *replicapb.ReplicatedMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, m)
	return nil
}

func (s *firehoseStream) sent() []*replicapb.ReplicatedMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*replicapb.ReplicatedMessage(nil), s.frames...)
}

type userUpdateStream struct {
	fakeServerStream
	mu     sync.Mutex
	frames []*chatpb.InitialRequest
}

func (s *userUpdateStream) Send(m *chatpb.InitialRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, m)
	return nil
}

func (s *userUpdateStream) sent() []*chatpb.InitialRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*chatpb.InitialRequest(nil), s.frames...)
}

type replicaFixture struct {
	core   *service.Core
	peers  *cluster.Registry
	svc    *ReplicaService
	dialed chan string
}

func newReplicaFixture(t *testing.T) *replicaFixture {
	t.Helper()
	core := service.New(memory.New(), registry.NewHub(), metrics.NoopCollector{}, slog.Default())
	peers := cluster.NewRegistry("self:6000", core, metrics.NoopCollector{}, slog.Default())
	dialed := make(chan string, 8)
	peers.SetDial(func(addr string) (replicapb.ReplicaClient, io.Closer, error) {
		dialed <- addr
		return nil, nil, io.ErrUnexpectedEOF
	})
	return &replicaFixture{
		core:   core,
		peers:  peers,
		svc:    NewReplicaService(core, peers, slog.Default()),
		dialed: dialed,
	}
}

func TestClusterReportsInboundPeers(t *testing.T) {
	f := newReplicaFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	stream := &firehoseStream{fakeServerStream: fakeServerStream{ctx}}
	done := make(chan error, 1)
	go func() {
		done <- f.svc.Firehose(&replicapb.Peer{New: false, Address: "peer:6000"}, stream)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(f.peers.Peers()) == 1 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	members, err := f.svc.Cluster(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"peer:6000"}, members.GetPeers())

	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, f.peers.Peers(), "peer forgotten when its stream closes")
}

func TestFirehoseStateTransferThenLive(t *testing.T) {
	f := newReplicaFixture(t)
	ctx := context.Background()

	old := model.Message{From: "alice", To: "bob", Text: "old"}
	require.NoError(t, f.core.Message(ctx, &old))

	streamCtx, cancel := context.WithCancel(context.Background())
	stream := &firehoseStream{fakeServerStream: fakeServerStream{streamCtx}}
	done := make(chan error, 1)
	go func() {
		done <- f.svc.Firehose(&replicapb.Peer{New: false, Address: "peer:6000"}, stream)
	}()

	waitCond(t, func() bool { return len(stream.sent()) == 1 }, "state transfer frame")
	frame := stream.sent()[0]
	assert.Equal(t, "alice", frame.GetFrom())
	assert.Equal(t, "bob", frame.GetMessage().GetUsername(), "replication frame names the recipient")
	assert.Equal(t, "old", frame.GetMessage().GetText())

	live := model.Message{From: "bob", To: "alice", Text: "new"}
	require.NoError(t, f.core.Message(ctx, &live))
	waitCond(t, func() bool { return len(stream.sent()) == 2 }, "live frame")

	cancel()
	require.NoError(t, <-done)
}

func TestFirehoseReciprocatesForNewPeer(t *testing.T) {
	f := newReplicaFixture(t)
	streamCtx, cancel := context.WithCancel(context.Background())
	stream := &firehoseStream{fakeServerStream: fakeServerStream{streamCtx}}
	done := make(chan error, 1)
	go func() {
		done <- f.svc.Firehose(&replicapb.Peer{New: true, Address: "peer:6000"}, stream)
	}()

	select {
	case addr := <-f.dialed:
		assert.Equal(t, "peer:6000", addr)
	case <-time.After(2 * time.Second):
		t.Fatal("no reciprocal dial for a new peer")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestFirehoseNoReciprocationForKnownPeer(t *testing.T) {
	f := newReplicaFixture(t)
	streamCtx, cancel := context.WithCancel(context.Background())
	stream := &firehoseStream{fakeServerStream: fakeServerStream{streamCtx}}
	done := make(chan error, 1)
	go func() {
		done <- f.svc.Firehose(&replicapb.Peer{New: false, Address: "peer:6000"}, stream)
	}()

	select {
	case addr := <-f.dialed:
		t.Fatalf("unexpected dial to %s for new=false", addr)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestUserUpdateStateTransferThenLive(t *testing.T) {
	f := newReplicaFixture(t)
	ctx := context.Background()
	require.NoError(t, f.core.CreateUser(ctx, model.User{Name: "alice", Password: "pw"}))

	streamCtx, cancel := context.WithCancel(context.Background())
	stream := &userUpdateStream{fakeServerStream: fakeServerStream{streamCtx}}
	done := make(chan error, 1)
	go func() {
		done <- f.svc.UserUpdate(&replicapb.Peer{New: false, Address: "peer:6000"}, stream)
	}()

	waitCond(t, func() bool { return len(stream.sent()) == 1 }, "user snapshot frame")
	first := stream.sent()[0]
	assert.True(t, first.GetCreate())
	assert.Equal(t, "alice", first.GetUser().GetUsername())
	assert.Equal(t, "pw", first.GetUser().GetPassword())

	require.NoError(t, f.core.DeleteUser(ctx, "alice"))
	waitCond(t, func() bool { return len(stream.sent()) == 2 }, "live delete frame")
	second := stream.sent()[1]
	assert.False(t, second.GetCreate())
	assert.Equal(t, "alice", second.GetUser().GetUsername())

	cancel()
	require.NoError(t, <-done)
}

func waitCond(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
