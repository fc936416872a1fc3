package grpchandler

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/relaymesh/chat-service/gen/chatpb"
	"github.com/relaymesh/chat-service/gen/replicapb"
	"github.com/relaymesh/chat-service/internal/cluster"
	"github.com/relaymesh/chat-service/internal/service"
)

// ReplicaService serves peers: membership, the message firehose, and
// the account update stream. Both streams open with a full state
// transfer and then follow the live feed.
type ReplicaService struct {
	replicapb.UnimplementedReplicaServer

	core  *service.Core
	peers *cluster.Registry
	log   *slog.Logger
}

func NewReplicaService(core *service.Core, peers *cluster.Registry, log *slog.Logger) *ReplicaService {
	return &ReplicaService{core: core, peers: peers, log: log}
}

// Cluster returns the addresses currently in the peer registry.
func (s *ReplicaService) Cluster(context.Context, *emptypb.Empty) (*replicapb.Peers, error) {
	return &replicapb.Peers{Peers: s.peers.Peers()}, nil
}

// Firehose streams the full message log and then every subsequent
// locally-originated message. A peer announcing itself as new gets a
// reciprocal subscription opened back to it.
func (s *ReplicaService) Firehose(req *replicapb.Peer, stream replicapb.Replica_FirehoseServer) error {
	ctx := stream.Context()
	addr := req.GetAddress()
	s.peers.TrackInbound(addr)
	defer s.peers.UntrackInbound(addr)
	s.log.Info("peer firehose open", "peer", addr, "new", req.GetNew())

	subID, feed, history, err := s.core.SnapshotMessages(ctx)
	if err != nil {
		return status.Errorf(codes.Internal, "state transfer: %v", err)
	}
	defer s.core.UnsubscribeMessages(subID)

	for _, m := range history {
		frame, err := replicatedToWire(m)
		if err != nil {
			s.log.Warn("dropping unreplicable message", "peer", addr, "error", err)
			continue
		}
		if err := stream.Send(frame); err != nil {
			return err
		}
	}

	if req.GetNew() {
		// Outlives this inbound stream; torn down with the registry.
		go func() {
			if err := s.peers.AttachFirehose(addr, false); err != nil {
				s.log.Warn("reciprocal firehose failed", "peer", addr, "error", err)
			}
		}()
	}

	for {
		m, ok := feed.Get(ctx)
		if !ok {
			return nil
		}
		frame, err := replicatedToWire(m)
		if err != nil {
			s.log.Warn("dropping unreplicable message", "peer", addr, "error", err)
			continue
		}
		if err := stream.Send(frame); err != nil {
			return err
		}
	}
}

// UserUpdate mirrors Firehose for the account directory.
func (s *ReplicaService) UserUpdate(req *replicapb.Peer, stream replicapb.Replica_UserUpdateServer) error {
	ctx := stream.Context()
	addr := req.GetAddress()
	s.peers.TrackInbound(addr)
	defer s.peers.UntrackInbound(addr)
	s.log.Info("peer user update stream open", "peer", addr, "new", req.GetNew())

	subID, feed, snapshot, err := s.core.SnapshotUsers(ctx)
	if err != nil {
		return status.Errorf(codes.Internal, "state transfer: %v", err)
	}
	defer s.core.UnsubscribeUsers(subID)

	for _, up := range snapshot {
		if err := stream.Send(updateToWire(up)); err != nil {
			return err
		}
	}

	if req.GetNew() {
		go func() {
			if err := s.peers.AttachUserUpdate(addr, false); err != nil {
				s.log.Warn("reciprocal user update stream failed", "peer", addr, "error", err)
			}
		}()
	}

	for {
		up, ok := feed.Get(ctx)
		if !ok {
			return nil
		}
		if err := stream.Send(updateToWire(up)); err != nil {
			return err
		}
	}
}

var _ chatpb.ChatServer = (*ChatService)(nil)
var _ replicapb.ReplicaServer = (*ReplicaService)(nil)
