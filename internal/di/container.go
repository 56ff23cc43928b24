// Package di provides dependency injection configuration for the NextRead server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/di/providers"
	"github.com/nextreadapp/nextread-server/internal/history/readwise"
	"github.com/nextreadapp/nextread-server/internal/logger"
	"github.com/nextreadapp/nextread-server/internal/metadata/googlebooks"
	"github.com/nextreadapp/nextread-server/internal/metadata/nytimes"
	"github.com/nextreadapp/nextread-server/internal/metrics"
	"github.com/nextreadapp/nextread-server/internal/recommend"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideMetrics)

	// Taxonomy
	do.Provide(injector, providers.ProvideGenreStore)

	// Provider clients
	do.Provide(injector, providers.ProvideReadwiseClient)
	do.Provide(injector, providers.ProvideNYTClient)
	do.Provide(injector, providers.ProvideGoogleBooksClient)

	// Pipeline
	do.Provide(injector, providers.ProvideSources)
	do.Provide(injector, providers.ProvideEngine)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is up.
// This triggers lazy initialization of the full dependency graph.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*metrics.Metrics](injector)
	_ = do.MustInvoke[*providers.GenreStoreHandle](injector)
	_ = do.MustInvoke[*readwise.Client](injector)
	_ = do.MustInvoke[*nytimes.Client](injector)
	_ = do.MustInvoke[*googlebooks.Client](injector)
	_ = do.MustInvoke[*providers.Sources](injector)
	_ = do.MustInvoke[*recommend.Engine](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
