package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/htmx-todos/internal/config"
)

// NewLogger builds the process logger: JSON production output by default,
// the development console encoder when LOG_FORMAT=console.
func NewLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}
