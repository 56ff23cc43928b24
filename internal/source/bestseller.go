package source

import (
	"context"
	"log/slog"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/errors"
	"github.com/nextreadapp/nextread-server/internal/genre"
	"github.com/nextreadapp/nextread-server/internal/metadata/nytimes"
)

// maxListsPerRun caps bestseller list fan-out; the NYT free tier is five
// requests a minute.
const maxListsPerRun = 2

// maxPerList trims each list; entries past the top ten add volume, not
// signal.
const maxPerList = 10

// defaultListRating is the rating floor for bestseller entries; the feed
// carries no ratings, and being on the list is itself a quality signal.
const defaultListRating = 4.0

// BestsellerSource fetches current bestseller lists mapped from the
// profile's top genres.
type BestsellerSource struct {
	client *nytimes.Client
	store  *genre.Store
	logger *slog.Logger
}

// NewBestsellerSource creates the bestseller adapter.
func NewBestsellerSource(client *nytimes.Client, store *genre.Store, logger *slog.Logger) *BestsellerSource {
	return &BestsellerSource{client: client, store: store, logger: logger}
}

// Name implements CandidateSource.
func (s *BestsellerSource) Name() string { return "bestsellers" }

// Fetch implements CandidateSource. A list that fails after others
// succeeded is skipped rather than failing the whole source.
func (s *BestsellerSource) Fetch(ctx context.Context, profile domain.ReferenceProfile) ([]domain.CandidateBook, error) {
	if !s.client.Configured() {
		return nil, errors.Config("nyt api key not configured")
	}

	lists := s.store.Current().ListsFor(profile.TopGenres(3), maxListsPerRun)

	var candidates []domain.CandidateBook
	var firstErr error
	for _, list := range lists {
		books, err := s.client.CurrentList(ctx, list)
		if err != nil {
			s.logger.Warn("bestseller list fetch failed", "list", list, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(books) > maxPerList {
			books = books[:maxPerList]
		}
		for i := range books {
			books[i].Description = cleanDescription(books[i].Description)
			if books[i].AverageRating == 0 {
				books[i].AverageRating = defaultListRating
			}
		}
		candidates = append(candidates, books...)
	}

	if len(candidates) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return candidates, nil
}
