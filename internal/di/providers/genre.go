package providers

import (
	"github.com/samber/do/v2"

	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/genre"
	"github.com/nextreadapp/nextread-server/internal/logger"
)

// GenreStoreHandle wraps genre.Store with Shutdownable so the taxonomy
// watcher goroutine stops on shutdown.
type GenreStoreHandle struct {
	*genre.Store
}

// Shutdown implements do.Shutdownable.
func (h *GenreStoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideGenreStore provides the taxonomy store, with hot reload when a
// taxonomy override file is configured.
func ProvideGenreStore(i do.Injector) (*GenreStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	store, err := genre.NewStore(cfg.Recommend.TaxonomyPath, log)
	if err != nil {
		return nil, err
	}

	tax := store.Current()
	log.Info("Taxonomy loaded",
		"patterns", len(tax.Patterns),
		"curated", len(tax.Curated),
		"override", cfg.Recommend.TaxonomyPath != "",
	)

	return &GenreStoreHandle{Store: store}, nil
}
