// Package providers contains dependency injection providers for the NextRead server.
package providers

import (
	"os"

	"github.com/samber/do/v2"

	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.Load(os.Args[1:])
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Log.Level),
		Format:      cfg.Log.Format,
		AddSource:   cfg.IsDevelopment(),
		Environment: cfg.Server.Environment,
	})

	log.Info("Starting NextRead Server",
		"environment", cfg.Server.Environment,
		"log_level", cfg.Log.Level,
		"addr", cfg.Server.Address(),
	)

	return log, nil
}
