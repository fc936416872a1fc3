package cmd

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/relaymesh/chat-service/config"
	grpcsrv "github.com/relaymesh/chat-service/infra/server/grpc"
	"github.com/relaymesh/chat-service/internal/cluster"
	"github.com/relaymesh/chat-service/internal/domain/registry"
	grpchandler "github.com/relaymesh/chat-service/internal/handler/grpc"
	"github.com/relaymesh/chat-service/internal/metrics"
	"github.com/relaymesh/chat-service/internal/service"
	"github.com/relaymesh/chat-service/internal/storage/sqlite"
)

// NewApp assembles one replica process: store, core, both gRPC
// listeners, and the cluster bootstrap.
func NewApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.Provide(
			func() *config.Config { return cfg },
			ProvideLogger,
		),
		metrics.Module,
		sqlite.Module,
		registry.Module,
		service.Module,
		grpcsrv.Module,
		grpchandler.Module,
		cluster.Module,
		fx.Invoke(armSelfDestruct),
	)
}

// armSelfDestruct schedules a clean shutdown, used by crash testing.
func armSelfDestruct(cfg *config.Config, sd fx.Shutdowner, log *slog.Logger) {
	if cfg.SelfDestruct <= 0 {
		return
	}
	log.Info("self-destruct armed", "after", cfg.SelfDestruct.String())
	time.AfterFunc(cfg.SelfDestruct, func() {
		log.Info("self-destruct firing")
		if err := sd.Shutdown(); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	})
}
