package source

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/genre"
)

// SourceLabelCurated identifies the award table in candidate output.
const SourceLabelCurated = "Award Winners"

// curatedMaxHits bounds one run's contribution from the award table.
const curatedMaxHits = 12

// CuratedSource serves the hand-maintained award table through an in-memory
// full-text index, so keyword and genre relevance ranking work the same way
// they would against a real search backend. It never makes a network call.
type CuratedSource struct {
	index   bleve.Index
	entries []genre.CuratedEntry
	store   *genre.Store
	logger  *slog.Logger
}

// NewCuratedSource builds the in-memory index over the active curated
// table.
func NewCuratedSource(store *genre.Store, logger *slog.Logger) (*CuratedSource, error) {
	entries := store.Current().Curated

	index, err := bleve.NewMemOnly(curatedIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create curated index: %w", err)
	}

	batch := index.NewBatch()
	for i, entry := range entries {
		doc := map[string]any{
			"title":       entry.Title,
			"author":      entry.Author,
			"genre":       entry.Genre,
			"award":       entry.Award,
			"description": entry.Description,
		}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			return nil, fmt.Errorf("index curated entry %d: %w", i, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("commit curated batch: %w", err)
	}

	return &CuratedSource{index: index, entries: entries, store: store, logger: logger}, nil
}

// Close releases the in-memory index.
func (s *CuratedSource) Close() error {
	return s.index.Close()
}

// Name implements CandidateSource.
func (s *CuratedSource) Name() string { return "curated" }

// Fetch implements CandidateSource. Genre matching includes cross-mapped
// tags so a memoir reader sees biography winners. A "general" profile gets
// the whole table, relevance-ranked by keywords if any exist.
func (s *CuratedSource) Fetch(ctx context.Context, profile domain.ReferenceProfile) ([]domain.CandidateBook, error) {
	q := s.buildQuery(profile)

	req := bleve.NewSearchRequestOptions(q, curatedMaxHits, 0, false)
	result, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("curated search: %w", err)
	}

	candidates := make([]domain.CandidateBook, 0, len(result.Hits))
	for _, hit := range result.Hits {
		i, err := strconv.Atoi(hit.ID)
		if err != nil || i < 0 || i >= len(s.entries) {
			continue
		}
		entry := s.entries[i]
		candidates = append(candidates, domain.CandidateBook{
			Title:         entry.Title,
			Author:        entry.Author,
			Description:   entry.Description,
			Categories:    []string{entry.Genre, entry.Award},
			Source:        SourceLabelCurated,
			PublishedDate: strconv.Itoa(entry.Year),
		})
	}

	s.logger.Debug("curated search", "hits", len(candidates), "genre", profile.PrimaryGenre())
	return candidates, nil
}

func (s *CuratedSource) buildQuery(profile domain.ReferenceProfile) query.Query {
	primary := profile.PrimaryGenre()
	if primary == domain.GeneralGenre {
		return bleve.NewMatchAllQuery()
	}

	genreQueries := make([]query.Query, 0, 4)
	for _, tag := range s.store.Current().Related(primary) {
		tq := bleve.NewTermQuery(tag)
		tq.SetField("genre")
		genreQueries = append(genreQueries, tq)
	}
	genreMatch := bleve.NewDisjunctionQuery(genreQueries...)

	keywords := profile.TopKeywords(5)
	if len(keywords) == 0 {
		return genreMatch
	}

	// Keywords boost ranking but never exclude genre matches.
	kq := bleve.NewMatchQuery(strings.Join(keywords, " "))
	kq.SetField("description")
	boolean := bleve.NewBooleanQuery()
	boolean.AddMust(genreMatch)
	boolean.AddShould(kq)
	return boolean
}

func curatedIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	textField := func(name string) {
		fm := bleve.NewTextFieldMapping()
		fm.Analyzer = en.AnalyzerName
		fm.Store = false
		docMapping.AddFieldMappingsAt(name, fm)
	}
	textField("title")
	textField("author")
	textField("award")
	textField("description")

	// Genre is an exact-match filter field.
	genreField := bleve.NewTextFieldMapping()
	genreField.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("genre", genreField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}
