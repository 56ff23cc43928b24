// Package recommend implements the recommendation pipeline: deduplication,
// scoring, assembly, and the orchestrator that drives profiling, source
// fan-out, and fallback behavior.
package recommend

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/errors"
	"github.com/nextreadapp/nextread-server/internal/genre"
	"github.com/nextreadapp/nextread-server/internal/id"
	"github.com/nextreadapp/nextread-server/internal/logger"
	"github.com/nextreadapp/nextread-server/internal/media/covers"
	"github.com/nextreadapp/nextread-server/internal/metrics"
	"github.com/nextreadapp/nextread-server/internal/profile"
	"github.com/nextreadapp/nextread-server/internal/source"
)

// State is one stage of the pipeline state machine.
type State string

// Pipeline states, in order. A run moves idle -> profiling -> searching ->
// scoring -> done; only an input error moves it to failed. Adapter
// failures never do.
const (
	StateIdle      State = "idle"
	StateProfiling State = "profiling"
	StateSearching State = "searching"
	StateScoring   State = "scoring"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// FallbackSource labels fallback-shelf recommendations so callers can tell
// them apart from live results.
const FallbackSource = "Fallback Picks"

// SourceResult is one adapter's contribution to a run. The orchestrator
// merges these explicitly; a failed adapter is a visible empty
// contribution, not a hidden exception.
type SourceResult struct {
	Source     string
	Candidates []domain.CandidateBook
	Err        error
}

// SingleResult is the output of RecommendFromSingle.
type SingleResult struct {
	Recommendations []domain.Recommendation
	SearchedFor     string
	Fallback        bool
}

// HistoryResult is the output of RecommendFromHistory.
type HistoryResult struct {
	Recommendations []domain.Recommendation
	ProfiledBooks   int
	Fallback        bool
}

// EngineConfig wires the orchestrator's collaborators and tuning.
type EngineConfig struct {
	Extractor *profile.Extractor
	Sources   []source.CandidateSource
	Scorer    *Scorer
	Assembler *Assembler
	Store     *genre.Store
	Logger    *logger.Logger
	Metrics   *metrics.Metrics
	// Prober is optional; nil disables thumbnail placeholders.
	Prober *covers.Prober

	Concurrency  int
	Timeout      time.Duration
	DefaultLimit int
}

// Engine orchestrates one recommendation run end to end. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	cfg EngineConfig
}

// NewEngine creates the orchestrator.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.DefaultLimit < 1 {
		cfg.DefaultLimit = 5
	}
	return &Engine{cfg: cfg}
}

// RecommendFromSingle produces recommendations from one reference book.
func (e *Engine) RecommendFromSingle(ctx context.Context, book domain.ReferenceBook, limit int) (*SingleResult, error) {
	if strings.TrimSpace(book.Title) == "" {
		return nil, errors.Validation("reference book title is required")
	}

	books := FilterNoise([]domain.ReferenceBook{book})
	if len(books) == 0 {
		return nil, errors.Validation("reference book looks like non-book noise")
	}

	recs, fallback := e.run(ctx, books, limit)
	return &SingleResult{
		Recommendations: recs,
		SearchedFor:     book.Title,
		Fallback:        fallback,
	}, nil
}

// RecommendFromHistory produces recommendations from a reading history.
func (e *Engine) RecommendFromHistory(ctx context.Context, books []domain.ReferenceBook, limit int) (*HistoryResult, error) {
	books = FilterNoise(books)
	if len(books) == 0 {
		return nil, errors.Validation("history contains no usable books")
	}

	recs, fallback := e.run(ctx, books, limit)
	return &HistoryResult{
		Recommendations: recs,
		ProfiledBooks:   len(books),
		Fallback:        fallback,
	}, nil
}

// run drives the pipeline state machine. It never returns an error: by the
// time run is entered the input is valid, and everything downstream
// degrades to the fallback shelf instead of failing.
func (e *Engine) run(ctx context.Context, books []domain.ReferenceBook, limit int) ([]domain.Recommendation, bool) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	runID := id.MustGenerate("run")
	log := e.cfg.Logger.WithField("run_id", runID)
	start := time.Now()

	state := StateIdle
	step := func(next State) {
		state = next
		log.Debug("pipeline state", "state", string(state))
	}

	step(StateProfiling)
	prof := e.cfg.Extractor.Extract(books)
	log.Info("profile extracted",
		"books", len(books),
		"primary_genre", prof.PrimaryGenre(),
		"keywords", len(prof.Keywords),
	)

	step(StateSearching)
	results := e.gather(ctx, prof)
	var merged []domain.CandidateBook
	for _, r := range results {
		if r.Err != nil {
			e.cfg.Metrics.SourceFailures.WithLabelValues(r.Source).Inc()
			if errors.Is(r.Err, errors.ErrConfig) {
				log.Warn("source skipped, not configured", "source", r.Source)
			} else {
				log.WithError(r.Err).Warn("source failed, continuing without it", "source", r.Source)
			}
			continue
		}
		e.cfg.Metrics.SourceCandidates.WithLabelValues(r.Source).Add(float64(len(r.Candidates)))
		merged = append(merged, r.Candidates...)
	}

	step(StateScoring)
	candidates := Dedupe(merged)
	scored := e.cfg.Scorer.Score(candidates, prof)
	recs := e.cfg.Assembler.Assemble(scored, limit)

	fallback := false
	if len(recs) == 0 {
		fallback = true
		recs = e.fallback(prof, limit)
		e.cfg.Metrics.FallbackServed.Inc()
		log.Warn("candidate starvation, serving fallback shelf",
			"genre", prof.PrimaryGenre(),
			"count", len(recs),
		)
	}

	e.probeCovers(ctx, recs, log)

	step(StateDone)
	outcome := "done"
	if fallback {
		outcome = "fallback"
	}
	e.cfg.Metrics.PipelineDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	log.Info("pipeline finished",
		"candidates", len(candidates),
		"recommendations", len(recs),
		"fallback", fallback,
		"duration", time.Since(start),
	)
	return recs, fallback
}

// gather fans out to every source with a bounded worker count. One slow or
// failed source cannot block or fail the others; each slot is filled with
// that source's result or error.
func (e *Engine) gather(ctx context.Context, prof domain.ReferenceProfile) []SourceResult {
	results := make([]SourceResult, len(e.cfg.Sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)
	for i, src := range e.cfg.Sources {
		g.Go(func() error {
			candidates, err := src.Fetch(gctx, prof)
			results[i] = SourceResult{Source: src.Name(), Candidates: candidates, Err: err}
			// Errors are recorded, never returned: returning one would
			// cancel the sibling fetches.
			return nil
		})
	}
	g.Wait()

	return results
}

// fallback builds recommendations from the static shelf for the profile's
// primary genre.
func (e *Engine) fallback(prof domain.ReferenceProfile, limit int) []domain.Recommendation {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	shelf := e.cfg.Store.Current().FallbackFor(prof.PrimaryGenre())
	if len(shelf) > limit {
		shelf = shelf[:limit]
	}

	recs := make([]domain.Recommendation, 0, len(shelf))
	for _, book := range shelf {
		recs = append(recs, domain.Recommendation{
			ID:           id.MustGenerate("rec"),
			Title:        book.Title,
			Author:       book.Author,
			Description:  book.Description,
			Source:       FallbackSource,
			Categories:   []string{book.Genre},
			Reason:       "This book is a dependable " + genreDisplay(book.Genre) + " pick while live results are unavailable.",
			AmazonURL:    AmazonSearchURL(book.Title, book.Author),
			GoodreadsURL: GoodreadsSearchURL(book.Title, book.Author),
		})
	}
	return recs
}

// probeCovers fills thumbnail placeholders, best effort.
func (e *Engine) probeCovers(ctx context.Context, recs []domain.Recommendation, log *logger.Logger) {
	if e.cfg.Prober == nil {
		return
	}
	for i := range recs {
		if recs[i].ThumbnailURL == "" {
			continue
		}
		hash, err := e.cfg.Prober.Hash(ctx, recs[i].ThumbnailURL)
		if err != nil {
			log.WithError(err).Debug("cover probe failed", "url", recs[i].ThumbnailURL)
			continue
		}
		recs[i].ThumbnailHash = hash
	}
}

// FilterNoise drops history entries that are not books: rows with neither
// title nor author, and rows whose title or author is a raw URL.
func FilterNoise(books []domain.ReferenceBook) []domain.ReferenceBook {
	out := make([]domain.ReferenceBook, 0, len(books))
	for _, b := range books {
		title := strings.TrimSpace(b.Title)
		author := strings.TrimSpace(b.Author)
		if title == "" && author == "" {
			continue
		}
		if looksLikeURL(title) || looksLikeURL(author) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "www.")
}
