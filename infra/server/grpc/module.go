package grpcsrv

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/relaymesh/chat-service/config"
)

// Servers bundles the two listeners of one replica process: the
// client-facing chat surface and the peer-facing replica surface.
type Servers struct {
	Chat    *Server
	Replica *Server
}

func NewServers(cfg *config.Config, log *slog.Logger) *Servers {
	return &Servers{
		Chat:    New("chat", cfg.ChatAddr, log),
		Replica: New("replica", cfg.ReplicaAddr, log),
	}
}

var Module = fx.Module(
	"grpc_server",

	fx.Provide(NewServers),

	fx.Invoke(func(lc fx.Lifecycle, s *Servers) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				if err := s.Chat.Start(); err != nil {
					return err
				}
				return s.Replica.Start()
			},
			OnStop: func(ctx context.Context) error {
				s.Chat.Stop(ctx)
				s.Replica.Stop(ctx)
				return nil
			},
		})
	}),
)
