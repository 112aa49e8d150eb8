package main

import (
	"fmt"
	"log/slog"

	"github.com/keshavkumar4699/cloro-questions/internal/config"
	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
)

// loadAppConfig loads the configuration and sets up the process logger.
func loadAppConfig(opts *rootOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("timezone", cfg.SRS.Timezone))

	return cfg, log, nil
}
