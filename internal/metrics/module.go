package metrics

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"github.com/relaymesh/chat-service/config"
)

var Module = fx.Module(
	"metrics",

	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) Collector {
		if cfg.MetricsAddr == "" {
			return NoopCollector{}
		}
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		collector := NewPrometheusCollector(reg)
		srv := NewHTTPServer(cfg.MetricsAddr, reg, log)
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				srv.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return srv.Shutdown(ctx)
			},
		})
		return collector
	}),
)
