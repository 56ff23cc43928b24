package providers

import (
	"github.com/samber/do/v2"

	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/history/readwise"
	"github.com/nextreadapp/nextread-server/internal/logger"
	"github.com/nextreadapp/nextread-server/internal/metadata/googlebooks"
	"github.com/nextreadapp/nextread-server/internal/metadata/nytimes"
)

// ProvideReadwiseClient provides the reading-history client. A missing
// token is not an error here; endpoints that need it fail with CONFIG.
func ProvideReadwiseClient(i do.Injector) (*readwise.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := readwise.New(cfg.Providers.ReadwiseBaseURL, cfg.Providers.ReadwiseToken, log.Logger).
		WithTimeout(cfg.Providers.RequestTimeout)
	if !client.Configured() {
		log.Warn("Readwise token not configured, history endpoints disabled")
	}
	return client, nil
}

// ProvideNYTClient provides the NYT bestseller lists client.
func ProvideNYTClient(i do.Injector) (*nytimes.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := nytimes.New(cfg.Providers.NYTBaseURL, cfg.Providers.NYTAPIKey, log.Logger).
		WithTimeout(cfg.Providers.RequestTimeout)
	if !client.Configured() {
		log.Warn("NYT API key not configured, bestseller source disabled")
	}
	return client, nil
}

// ProvideGoogleBooksClient provides the Google Books search client. Works
// unauthenticated at a lower quota, so no configuration warning.
func ProvideGoogleBooksClient(i do.Injector) (*googlebooks.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := googlebooks.New(cfg.Providers.GoogleBooksBaseURL, cfg.Providers.GoogleBooksKey, log.Logger).
		WithRate(cfg.Providers.RatePerSecond, cfg.Providers.Burst).
		WithTimeout(cfg.Providers.RequestTimeout)
	return client, nil
}
