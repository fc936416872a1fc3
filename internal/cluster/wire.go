package cluster

import (
	"errors"

	"github.com/relaymesh/chat-service/gen/chatpb"
	"github.com/relaymesh/chat-service/gen/replicapb"
	"github.com/relaymesh/chat-service/internal/domain/model"
)

// Inbound frame decoding. The Message field carries recipient and body;
// sender and timestamp ride alongside. A frame without its timestamp
// has no identity and cannot be merged.
func messageFromWire(frame *replicapb.ReplicatedMessage) (model.Message, error) {
	if frame.GetSent() == nil {
		return model.Message{}, errors.New("replicated message missing sent stamp")
	}
	return model.Message{
		From: frame.GetFrom(),
		To:   frame.GetMessage().GetUsername(),
		Text: frame.GetMessage().GetText(),
		Sent: model.FormatSent(frame.GetSent().AsTime()),
	}, nil
}

func userUpdateFromWire(frame *chatpb.InitialRequest) model.UserUpdate {
	return model.UserUpdate{
		Create: frame.GetCreate(),
		User: model.User{
			Name:     frame.GetUser().GetUsername(),
			Password: frame.GetUser().GetPassword(),
		},
	}
}
