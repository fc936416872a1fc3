// Package cluster maintains this replica's outbound connections to its
// peers: the bootstrap handshake, the firehose and account-update
// subscriptions, and the bookkeeping that tears a peer down when its
// last stream closes.
package cluster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/relaymesh/chat-service/gen/replicapb"
	"github.com/relaymesh/chat-service/internal/metrics"
	"github.com/relaymesh/chat-service/internal/service"
)

// DialFunc opens a replica client for addr. Swapped out in tests.
type DialFunc func(addr string) (replicapb.ReplicaClient, io.Closer, error)

func grpcDial(addr string) (replicapb.ReplicaClient, io.Closer, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("cluster: dial %s: %w", addr, err)
	}
	return replicapb.NewReplicaClient(conn), conn, nil
}

type peer struct {
	client  replicapb.ReplicaClient
	conn    io.Closer
	breaker *gobreaker.CircuitBreaker

	streams    int
	firehose   bool
	userupdate bool
}

// Registry tracks peers by advertised address. A peer exists while at
// least one outbound stream to it is open; when the last stream ends
// the connection is closed and the address forgotten.
//
// Outbound streams live on the registry's own context, not the
// caller's: a bootstrap or reciprocation trigger returning must not
// tear the subscription down. Close cancels them all.
type Registry struct {
	self    string
	core    *service.Core
	metrics metrics.Collector
	log     *slog.Logger
	dial    DialFunc
	ctx     context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	peers   map[string]*peer
	inbound map[string]int
}

func NewRegistry(self string, core *service.Core, collector metrics.Collector, log *slog.Logger) *Registry {
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		self:    self,
		core:    core,
		metrics: collector,
		log:     log,
		dial:    grpcDial,
		ctx:     ctx,
		cancel:  cancel,
		peers:   make(map[string]*peer),
		inbound: make(map[string]int),
	}
}

// SetDial replaces the gRPC dialer. Test hook.
func (r *Registry) SetDial(d DialFunc) { r.dial = d }

// Self returns this replica's advertised address.
func (r *Registry) Self() string { return r.self }

// Peers returns the addresses with at least one open stream in either
// direction, sorted.
func (r *Registry) Peers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{}, len(r.peers)+len(r.inbound))
	for addr := range r.peers {
		seen[addr] = struct{}{}
	}
	for addr := range r.inbound {
		seen[addr] = struct{}{}
	}
	addrs := make([]string, 0, len(seen))
	for addr := range seen {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

// TrackInbound records an inbound peer stream from addr.
func (r *Registry) TrackInbound(addr string) {
	if addr == "" || addr == r.self {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inbound[addr] == 0 {
		if _, out := r.peers[addr]; !out {
			r.metrics.PeerAttached()
		}
	}
	r.inbound[addr]++
}

// UntrackInbound undoes one TrackInbound.
func (r *Registry) UntrackInbound(addr string) {
	if addr == "" || addr == r.self {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.inbound[addr]
	if !ok {
		return
	}
	if n <= 1 {
		delete(r.inbound, addr)
		if _, out := r.peers[addr]; !out {
			r.metrics.PeerDetached()
		}
		r.log.Info("inbound peer detached", "peer", addr)
		return
	}
	r.inbound[addr] = n - 1
}

// Bootstrap joins an existing cluster through the contact address: ask
// it for the membership list, then attach to every member and the
// contact itself, announcing this replica as new.
func (r *Registry) Bootstrap(ctx context.Context, contact string) error {
	if contact == "" || contact == r.self {
		return nil
	}
	client, conn, err := r.dial(contact)
	if err != nil {
		return err
	}
	members, err := client.Cluster(ctx, &emptypb.Empty{})
	conn.Close()
	if err != nil {
		return fmt.Errorf("cluster: membership from %s: %w", contact, err)
	}

	targets := map[string]struct{}{contact: {}}
	for _, addr := range members.GetPeers() {
		targets[addr] = struct{}{}
	}
	delete(targets, r.self)

	for addr := range targets {
		if err := r.AttachFirehose(addr, true); err != nil {
			return err
		}
		if err := r.AttachUserUpdate(addr, true); err != nil {
			return err
		}
	}
	r.log.Info("cluster joined", "contact", contact, "peers", len(targets))
	return nil
}

// AttachFirehose opens the message subscription to addr on the
// registry's lifetime and merges its frames until the stream ends.
// announce marks this replica as new so the acceptor reciprocates.
func (r *Registry) AttachFirehose(addr string, announce bool) error {
	if addr == r.self {
		return nil
	}
	p, err := r.acquire(addr, func(p *peer) *bool { return &p.firehose })
	if err != nil {
		return err
	}
	if p == nil {
		return nil // already subscribed
	}
	stream, err := breakerOpen(p, func() (replicapb.Replica_FirehoseClient, error) {
		return p.client.Firehose(r.ctx, &replicapb.Peer{New: announce, Address: r.self})
	})
	if err != nil {
		r.release(addr, func(p *peer) *bool { return &p.firehose })
		return fmt.Errorf("cluster: firehose to %s: %w", addr, err)
	}
	r.log.Info("firehose attached", "peer", addr, "announce", announce)
	go r.drainFirehose(r.ctx, addr, stream)
	return nil
}

// AttachUserUpdate opens the account subscription to addr, mirroring
// AttachFirehose.
func (r *Registry) AttachUserUpdate(addr string, announce bool) error {
	if addr == r.self {
		return nil
	}
	p, err := r.acquire(addr, func(p *peer) *bool { return &p.userupdate })
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	stream, err := breakerOpen(p, func() (replicapb.Replica_UserUpdateClient, error) {
		return p.client.UserUpdate(r.ctx, &replicapb.Peer{New: announce, Address: r.self})
	})
	if err != nil {
		r.release(addr, func(p *peer) *bool { return &p.userupdate })
		return fmt.Errorf("cluster: user updates from %s: %w", addr, err)
	}
	r.log.Info("user update stream attached", "peer", addr, "announce", announce)
	go r.drainUserUpdates(r.ctx, addr, stream)
	return nil
}

func (r *Registry) drainFirehose(ctx context.Context, addr string, stream replicapb.Replica_FirehoseClient) {
	defer r.release(addr, func(p *peer) *bool { return &p.firehose })
	for {
		frame, err := stream.Recv()
		if err != nil {
			if err != io.EOF && ctx.Err() == nil {
				r.log.Warn("firehose closed", "peer", addr, "error", err)
			}
			return
		}
		m, err := messageFromWire(frame)
		if err != nil {
			r.log.Warn("dropping malformed replication frame", "peer", addr, "error", err)
			continue
		}
		if _, err := r.core.MergeMessage(ctx, m); err != nil {
			r.log.Error("merge replicated message", "peer", addr, "error", err)
		}
	}
}

func (r *Registry) drainUserUpdates(ctx context.Context, addr string, stream replicapb.Replica_UserUpdateClient) {
	defer r.release(addr, func(p *peer) *bool { return &p.userupdate })
	for {
		frame, err := stream.Recv()
		if err != nil {
			if err != io.EOF && ctx.Err() == nil {
				r.log.Warn("user update stream closed", "peer", addr, "error", err)
			}
			return
		}
		up := userUpdateFromWire(frame)
		if err := r.core.MergeUserUpdate(ctx, up); err != nil {
			r.log.Error("merge user update", "peer", addr, "error", err)
		}
	}
}

// acquire registers interest in addr for the stream type selected by
// flag. Returns nil when that stream is already open.
func (r *Registry) acquire(addr string, flag func(*peer) *bool) (*peer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.peers[addr]
	if !ok {
		client, conn, err := r.dial(addr)
		if err != nil {
			return nil, err
		}
		p = &peer{
			client: client,
			conn:   conn,
			breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
				Name: "replica:" + addr,
			}),
		}
		r.peers[addr] = p
		if r.inbound[addr] == 0 {
			r.metrics.PeerAttached()
		}
	}
	f := flag(p)
	if *f {
		return nil, nil
	}
	*f = true
	p.streams++
	return p, nil
}

// release undoes one acquire; the peer is dropped with its connection
// when no streams remain.
func (r *Registry) release(addr string, flag func(*peer) *bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.peers[addr]
	if !ok {
		return
	}
	f := flag(p)
	if !*f {
		return
	}
	*f = false
	p.streams--
	if p.streams <= 0 {
		delete(r.peers, addr)
		p.conn.Close()
		if r.inbound[addr] == 0 {
			r.metrics.PeerDetached()
		}
		r.log.Info("peer detached", "peer", addr)
	}
}

// Close cancels every outbound stream, drops the connections, and
// forgets all membership, inbound included.
func (r *Registry) Close() {
	r.cancel()
	r.mu.Lock()
	defer r.mu.Unlock()
	for addr, p := range r.peers {
		p.conn.Close()
		delete(r.peers, addr)
		if r.inbound[addr] == 0 {
			r.metrics.PeerDetached()
		}
	}
	for addr := range r.inbound {
		delete(r.inbound, addr)
		r.metrics.PeerDetached()
	}
}

func breakerOpen[S any](p *peer, open func() (S, error)) (S, error) {
	v, err := p.breaker.Execute(func() (any, error) { return open() })
	if err != nil {
		var zero S
		return zero, err
	}
	return v.(S), nil
}
