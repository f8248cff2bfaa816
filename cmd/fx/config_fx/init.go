package config_fx

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/config"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
)

var Module = fx.Provide(
	provideConfig,
	provideLogger,
)

func provideConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (logger.Logger, error) {
	lggr, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = lggr.Sync()
	}))
	return lggr, nil
}
