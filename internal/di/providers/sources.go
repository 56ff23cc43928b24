package providers

import (
	"time"

	"github.com/samber/do/v2"

	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/logger"
	"github.com/nextreadapp/nextread-server/internal/metadata/googlebooks"
	"github.com/nextreadapp/nextread-server/internal/metadata/nytimes"
	"github.com/nextreadapp/nextread-server/internal/source"
)

// Sources is the ordered set of candidate adapters. Order matters: on
// duplicate candidates the first source's copy wins.
type Sources struct {
	List []source.CandidateSource
}

// ProvideSources assembles the adapter set: bestsellers, the curated award
// index, then live search.
func ProvideSources(i do.Injector) (*Sources, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*GenreStoreHandle](i)
	nytClient := do.MustInvoke[*nytimes.Client](i)
	booksClient := do.MustInvoke[*googlebooks.Client](i)

	curated, err := source.NewCuratedSource(storeHandle.Store, log.Logger)
	if err != nil {
		return nil, err
	}

	search := source.NewSearchSource(booksClient, source.Filters{
		RatingFloor:       cfg.Recommend.RatingFloor,
		RatingsCountFloor: cfg.Recommend.RatingsCountFloor,
		DescriptionFloor:  cfg.Recommend.DescriptionFloor,
		RecencyYears:      cfg.Recommend.RecencyYears,
	}, log.Logger, time.Now)

	return &Sources{List: []source.CandidateSource{
		source.NewBestsellerSource(nytClient, storeHandle.Store, log.Logger),
		curated,
		search,
	}}, nil
}
