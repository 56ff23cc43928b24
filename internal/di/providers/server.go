package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"

	"github.com/nextreadapp/nextread-server/internal/api"
	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/history/readwise"
	"github.com/nextreadapp/nextread-server/internal/logger"
	"github.com/nextreadapp/nextread-server/internal/metrics"
	"github.com/nextreadapp/nextread-server/internal/recommend"
)

const shutdownTimeout = 10 * time.Second

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts it in the
// background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	engine := do.MustInvoke[*recommend.Engine](i)
	history := do.MustInvoke[*readwise.Client](i)
	storeHandle := do.MustInvoke[*GenreStoreHandle](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	handler := api.NewServer(api.Dependencies{
		Config:   cfg,
		Engine:   engine,
		History:  history,
		Sampler:  recommend.NewRandomSampler(uint64(time.Now().UnixNano())),
		Store:    storeHandle.Store,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.Recommend.PipelineTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
