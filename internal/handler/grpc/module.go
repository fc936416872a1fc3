package grpchandler

import (
	"go.uber.org/fx"

	"github.com/relaymesh/chat-service/gen/chatpb"
	"github.com/relaymesh/chat-service/gen/replicapb"
	grpcsrv "github.com/relaymesh/chat-service/infra/server/grpc"
)

var Module = fx.Module(
	"grpc_handler",

	fx.Provide(
		NewChatService,
		NewReplicaService,
	),

	fx.Invoke(func(servers *grpcsrv.Servers, chat *ChatService, replica *ReplicaService) {
		chatpb.RegisterChatServer(servers.Chat.GRPC(), chat)
		replicapb.RegisterReplicaServer(servers.Replica.GRPC(), replica)
	}),
)
