// Package grpchandler implements the two gRPC surfaces on top of the
// service core: the client-facing Chat service and the peer-facing
// Replica service.
package grpchandler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/relaymesh/chat-service/gen/chatpb"
	"github.com/relaymesh/chat-service/internal/domain/model"
	"github.com/relaymesh/chat-service/internal/domain/registry"
	"github.com/relaymesh/chat-service/internal/metrics"
	"github.com/relaymesh/chat-service/internal/service"
	"github.com/relaymesh/chat-service/internal/storage"
)

const (
	msgBadName  = "Username must not contain whitespace or be empty."
	msgBadCreds = "Incorrect username or password."
)

// ChatService serves clients: registration, login with history replay,
// live delivery, sending, listing, and account deletion.
type ChatService struct {
	chatpb.UnimplementedChatServer

	core    *service.Core
	metrics metrics.Collector
	log     *slog.Logger
}

func NewChatService(core *service.Core, collector metrics.Collector, log *slog.Logger) *ChatService {
	return &ChatService{core: core, metrics: collector, log: log}
}

// Initiate registers or authenticates the caller, emits the heartbeat
// frame, replays history on login, then pushes live deliveries until
// the client disconnects.
func (s *ChatService) Initiate(req *chatpb.InitialRequest, stream chatpb.Chat_InitiateServer) error {
	ctx := stream.Context()
	name := req.GetUser().GetUsername()
	password := req.GetUser().GetPassword()
	if !model.ValidName(name) {
		return status.Error(codes.InvalidArgument, msgBadName)
	}

	if req.GetCreate() {
		err := s.core.CreateUser(ctx, model.User{Name: name, Password: password})
		if errors.Is(err, storage.ErrUserExists) {
			return status.Errorf(codes.AlreadyExists, "Username %s is not available.", name)
		}
		if err != nil {
			return status.Errorf(codes.Internal, "create user: %v", err)
		}
	} else {
		ok, err := s.core.Authenticate(ctx, name, password)
		if err != nil {
			return status.Errorf(codes.Internal, "authenticate: %v", err)
		}
		if !ok {
			return status.Error(codes.InvalidArgument, msgBadCreds)
		}
	}

	// Heartbeat so the client knows registration/login succeeded.
	if err := stream.Send(&chatpb.ReceivedMessage{}); err != nil {
		return err
	}

	if req.GetCreate() {
		// A brand new account has no history to replay.
		id, mailbox := s.core.Install(name)
		return s.pump(ctx, stream, name, id, mailbox, nil)
	}

	id, mailbox, history, err := s.core.ReplayAndInstall(ctx, name)
	if err != nil {
		return status.Errorf(codes.Internal, "replay: %v", err)
	}
	return s.pump(ctx, stream, name, id, mailbox, history)
}

// pump replays history and then forwards mailbox deliveries until the
// stream dies or the mailbox is displaced by a newer login.
func (s *ChatService) pump(ctx context.Context, stream chatpb.Chat_InitiateServer, name string, id uuid.UUID, mailbox *registry.Mailbox, history []model.Message) error {
	defer s.core.Remove(name, id)
	s.metrics.StreamOpened()
	defer s.metrics.StreamClosed()
	s.log.Info("client stream open", "user", name)
	defer s.log.Info("client stream closed", "user", name)

	for _, m := range history {
		frame, err := receivedToWire(m)
		if err != nil {
			s.log.Warn("dropping undeliverable message", "user", name, "error", err)
			continue
		}
		if err := stream.Send(frame); err != nil {
			return err
		}
	}
	for {
		m, ok := mailbox.Get(ctx)
		if !ok {
			return nil
		}
		frame, err := receivedToWire(m)
		if err != nil {
			s.log.Warn("dropping undeliverable message", "user", name, "error", err)
			continue
		}
		if err := stream.Send(frame); err != nil {
			return err
		}
	}
}

// SendMessage authenticates the sender, verifies the recipient locally,
// stores the message, and fans it out.
func (s *ChatService) SendMessage(ctx context.Context, req *chatpb.SentMessage) (*emptypb.Empty, error) {
	name := req.GetUser().GetUsername()
	ok, err := s.core.Authenticate(ctx, name, req.GetUser().GetPassword())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "authenticate: %v", err)
	}
	if !ok {
		return nil, status.Error(codes.InvalidArgument, msgBadCreds)
	}

	to := req.GetMessage().GetUsername()
	exists, err := s.core.UserExists(ctx, to)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "recipient lookup: %v", err)
	}
	if !exists {
		return nil, status.Error(codes.InvalidArgument,
			fmt.Sprintf("%s is not a user; try ListUsers to see available users.", to))
	}

	m := model.Message{From: name, To: to, Text: req.GetMessage().GetText()}
	if err := s.core.Message(ctx, &m); err != nil {
		return nil, status.Errorf(codes.Internal, "store message: %v", err)
	}
	return &emptypb.Empty{}, nil
}

// DeleteAccount authenticates and removes the account cluster-wide.
func (s *ChatService) DeleteAccount(ctx context.Context, req *chatpb.Authentication) (*emptypb.Empty, error) {
	name := req.GetUsername()
	ok, err := s.core.Authenticate(ctx, name, req.GetPassword())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "authenticate: %v", err)
	}
	if !ok {
		return nil, status.Error(codes.InvalidArgument, msgBadCreds)
	}
	if err := s.core.DeleteUser(ctx, name); err != nil {
		return nil, status.Errorf(codes.Internal, "delete user: %v", err)
	}
	return &emptypb.Empty{}, nil
}

// ListUsers matches the local directory against the glob pattern.
func (s *ChatService) ListUsers(ctx context.Context, req *chatpb.Filter) (*chatpb.Users, error) {
	names, err := s.core.ListUsers(ctx, req.GetGlob())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list users: %v", err)
	}
	return &chatpb.Users{Usernames: names}, nil
}
