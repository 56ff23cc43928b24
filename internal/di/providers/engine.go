package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"

	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/logger"
	"github.com/nextreadapp/nextread-server/internal/media/covers"
	"github.com/nextreadapp/nextread-server/internal/metrics"
	"github.com/nextreadapp/nextread-server/internal/profile"
	"github.com/nextreadapp/nextread-server/internal/recommend"
)

// ProvideMetrics provides the Prometheus collectors on the default registry.
func ProvideMetrics(i do.Injector) (*metrics.Metrics, error) {
	return metrics.New(prometheus.DefaultRegisterer), nil
}

// ProvideEngine provides the recommendation orchestrator.
func ProvideEngine(i do.Injector) (*recommend.Engine, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*GenreStoreHandle](i)
	sources := do.MustInvoke[*Sources](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	var prober *covers.Prober
	if cfg.Recommend.CoverProbe {
		prober = covers.NewProber(log.Logger)
	}

	return recommend.NewEngine(recommend.EngineConfig{
		Extractor:    profile.New(storeHandle.Store),
		Sources:      sources.List,
		Scorer:       recommend.NewScorer(recommend.DefaultWeights(), time.Now),
		Assembler:    recommend.NewAssembler(cfg.Recommend.ScoreCutoff, cfg.Recommend.DefaultLimit, time.Now),
		Store:        storeHandle.Store,
		Logger:       log,
		Metrics:      m,
		Prober:       prober,
		Concurrency:  cfg.Recommend.AdapterConcurrency,
		Timeout:      cfg.Recommend.PipelineTimeout,
		DefaultLimit: cfg.Recommend.DefaultLimit,
	}), nil
}
