package cluster

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/relaymesh/chat-service/config"
	"github.com/relaymesh/chat-service/internal/metrics"
	"github.com/relaymesh/chat-service/internal/service"
)

var Module = fx.Module(
	"cluster",

	fx.Provide(func(cfg *config.Config, core *service.Core, collector metrics.Collector, log *slog.Logger) *Registry {
		return NewRegistry(cfg.Advertise, core, collector, log)
	}),

	fx.Invoke(func(lc fx.Lifecycle, r *Registry, cfg *config.Config, log *slog.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if cfg.Cluster == "" {
					return nil
				}
				// Join failures are not fatal; the operator can
				// restart to re-bootstrap.
				if err := r.Bootstrap(ctx, cfg.Cluster); err != nil {
					log.Warn("cluster bootstrap failed", "contact", cfg.Cluster, "error", err)
				}
				return nil
			},
			OnStop: func(context.Context) error {
				r.Close()
				return nil
			},
		})
	}),
)
