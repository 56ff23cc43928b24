package source

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/metadata/googlebooks"
	"github.com/nextreadapp/nextread-server/internal/normalize"
)

const (
	// maxSearchQueries caps fan-out per run; the client's rate limiter
	// paces the sequential requests.
	maxSearchQueries = 3

	perQueryResults = 10
)

// Filters are the acceptance thresholds for general search results. A
// candidate is accepted when any one quality signal holds; the recency
// window applies only to candidates with a parseable date.
type Filters struct {
	RatingFloor       float64
	RatingsCountFloor int
	DescriptionFloor  int
	RecencyYears      int
}

// SearchSource queries the general bibliographic index with several
// queries built from the profile's top genre and keywords.
type SearchSource struct {
	client  *googlebooks.Client
	filters Filters
	logger  *slog.Logger
	now     func() time.Time
}

// NewSearchSource creates the bibliographic search adapter. now is
// injectable for tests; nil means time.Now.
func NewSearchSource(client *googlebooks.Client, filters Filters, logger *slog.Logger, now func() time.Time) *SearchSource {
	if now == nil {
		now = time.Now
	}
	return &SearchSource{client: client, filters: filters, logger: logger, now: now}
}

// Name implements CandidateSource.
func (s *SearchSource) Name() string { return "search" }

// Fetch implements CandidateSource. Queries run sequentially; a failed
// query yields fewer candidates, and only a fully empty run surfaces the
// first error.
func (s *SearchSource) Fetch(ctx context.Context, profile domain.ReferenceProfile) ([]domain.CandidateBook, error) {
	queries := s.buildQueries(profile)

	var accepted []domain.CandidateBook
	var firstErr error
	seen := make(map[string]bool)
	fetched := 0

	for _, q := range queries {
		candidates, err := s.client.Search(ctx, q, perQueryResults)
		if err != nil {
			s.logger.Warn("search query failed", "query", q, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fetched += len(candidates)

		for _, c := range candidates {
			if seen[c.Key()] {
				continue
			}
			seen[c.Key()] = true

			c.Description = cleanDescription(c.Description)
			if !s.accept(c) {
				continue
			}
			accepted = append(accepted, c)
		}
	}

	if len(accepted) == 0 && firstErr != nil {
		return nil, firstErr
	}
	s.logger.Debug("search source", "queries", len(queries), "fetched", fetched, "accepted", len(accepted))
	return accepted, nil
}

// accept applies the quality and recency filters. Search results are the
// noisiest source, so anything without a single quality signal is dropped.
func (s *SearchSource) accept(c domain.CandidateBook) bool {
	quality := c.AverageRating >= s.filters.RatingFloor ||
		c.RatingsCount >= s.filters.RatingsCountFloor ||
		len(c.Description) >= s.filters.DescriptionFloor
	if !quality {
		return false
	}

	if s.filters.RecencyYears > 0 {
		if year, ok := normalize.Year(c.PublishedDate); ok {
			if year < s.now().Year()-s.filters.RecencyYears {
				return false
			}
		}
	}
	return true
}

// buildQueries combines the primary genre with recency qualifiers, then
// the strongest keywords. A "general" profile with no keywords falls back
// to one broad query.
func (s *SearchSource) buildQueries(profile domain.ReferenceProfile) []string {
	year := strconv.Itoa(s.now().Year())
	var queries []string

	if primary := profile.PrimaryGenre(); primary != domain.GeneralGenre {
		term := genreQueryTerm(primary)
		queries = append(queries,
			term+" "+year+" award winner",
			"best "+term+" "+year,
		)
	}
	if keywords := profile.TopKeywords(3); len(keywords) > 0 {
		queries = append(queries, strings.Join(keywords, " "))
	}

	if len(queries) == 0 {
		queries = append(queries, "best books "+year)
	}
	if len(queries) > maxSearchQueries {
		queries = queries[:maxSearchQueries]
	}
	return queries
}

// genreQueryTerm is the tag as usable query text.
func genreQueryTerm(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}
