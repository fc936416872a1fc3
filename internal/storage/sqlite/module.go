package sqlite

import (
	"context"

	"go.uber.org/fx"

	"github.com/relaymesh/chat-service/config"
	"github.com/relaymesh/chat-service/internal/storage"
)

var Module = fx.Module(
	"sqlite",

	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config) (storage.Store, error) {
		store, err := Open(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})
		return store, nil
	}),
)
