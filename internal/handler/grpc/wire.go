package grpchandler

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/relaymesh/chat-service/gen/chatpb"
	"github.com/relaymesh/chat-service/gen/replicapb"
	"github.com/relaymesh/chat-service/internal/domain/model"
)

func sentToWire(sent string) (*timestamppb.Timestamp, error) {
	t, err := model.ParseSent(sent)
	if err != nil {
		return nil, fmt.Errorf("malformed sent stamp %q: %w", sent, err)
	}
	return timestamppb.New(t), nil
}

// Delivery frame: username names the sender.
func receivedToWire(m model.Message) (*chatpb.ReceivedMessage, error) {
	sent, err := sentToWire(m.Sent)
	if err != nil {
		return nil, err
	}
	return &chatpb.ReceivedMessage{
		Message: &chatpb.Message{Username: m.From, Text: m.Text},
		Sent:    sent,
	}, nil
}

// Replication frame: the embedded message names the recipient, the
// sender rides alongside.
func replicatedToWire(m model.Message) (*replicapb.ReplicatedMessage, error) {
	sent, err := sentToWire(m.Sent)
	if err != nil {
		return nil, err
	}
	return &replicapb.ReplicatedMessage{
		Message: &chatpb.Message{Username: m.To, Text: m.Text},
		From:    m.From,
		Sent:    sent,
	}, nil
}

func updateToWire(up model.UserUpdate) *chatpb.InitialRequest {
	return &chatpb.InitialRequest{
		Create: up.Create,
		User: &chatpb.Authentication{
			Username: up.User.Name,
			Password: up.User.Password,
		},
	}
}
