package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextreadapp/nextread-server/internal/config"
	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/genre"
	"github.com/nextreadapp/nextread-server/internal/history/readwise"
	"github.com/nextreadapp/nextread-server/internal/logger"
	"github.com/nextreadapp/nextread-server/internal/metrics"
	"github.com/nextreadapp/nextread-server/internal/profile"
	"github.com/nextreadapp/nextread-server/internal/ratelimit"
	"github.com/nextreadapp/nextread-server/internal/recommend"
	"github.com/nextreadapp/nextread-server/internal/source"
)

// testEnvelope mirrors the envelope shape for decoding test responses.
type testEnvelope[T any] struct {
	Version int    `json:"v"`
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

type testErrorEnvelope struct {
	Version int    `json:"v"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// stubSource is a canned candidate source for handler tests.
type stubSource struct {
	name  string
	books []domain.CandidateBook
	err   error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context, _ domain.ReferenceProfile) ([]domain.CandidateBook, error) {
	return s.books, s.err
}

func businessStub() *stubSource {
	return &stubSource{name: "stub", books: []domain.CandidateBook{
		{Title: "The Culture Map", Author: "Erin Meyer", Description: "business across cultures", Source: "Business Critics Choice", AverageRating: 4.4},
		{Title: "Zero to One", Author: "Peter Thiel", Description: "startup strategy business", Source: "NYT Bestsellers", AverageRating: 4.2},
	}}
}

// setupTestServer wires a server around canned sources and an optional
// Readwise endpoint.
func setupTestServer(t *testing.T, readwiseURL, readwiseToken string, sources ...*stubSource) (*Server, humatest.TestAPI) {
	t.Helper()

	log := logger.New(logger.Config{Writer: os.Stderr, Format: "json", Level: slog.LevelError})
	store, err := genre.NewStore("", log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:        "127.0.0.1",
			Port:        8080,
			Environment: "development",
			CORSOrigins: "*",
		},
		Recommend: config.RecommendConfig{
			ScoreCutoff:  2,
			DefaultLimit: 5,
			MaxLimit:     20,
		},
	}

	srcs := make([]source.CandidateSource, 0, len(sources))
	for _, s := range sources {
		srcs = append(srcs, s)
	}

	m := metrics.New(prometheus.NewRegistry())
	engine := recommend.NewEngine(recommend.EngineConfig{
		Extractor:    profile.New(store),
		Sources:      srcs,
		Scorer:       recommend.NewScorer(recommend.DefaultWeights(), time.Now),
		Assembler:    recommend.NewAssembler(cfg.Recommend.ScoreCutoff, cfg.Recommend.DefaultLimit, time.Now),
		Store:        store,
		Logger:       log,
		Metrics:      m,
		Concurrency:  4,
		Timeout:      5 * time.Second,
		DefaultLimit: cfg.Recommend.DefaultLimit,
	})

	s := NewServer(Dependencies{
		Config:  cfg,
		Engine:  engine,
		History: readwise.New(readwiseURL, readwiseToken, log.Logger),
		Sampler: recommend.HeadSampler{},
		Store:   store,
		Metrics: m,
		Logger:  log,
	})
	// Tests fire requests from one client; the production bucket would trip.
	s.limiter = ratelimit.New(1000, 1000)

	return s, humatest.Wrap(t, s.api)
}

func TestRecommendFromBook(t *testing.T) {
	_, api := setupTestServer(t, "", "", businessStub())

	resp := api.Post("/api/v1/recommendations/book", map[string]any{
		"title": "The Lean Startup",
		"notes": "startup strategy business",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[BookRecommendationsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))

	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.True(t, envelope.Success)
	assert.Equal(t, "The Lean Startup", envelope.Data.SearchedFor)
	assert.False(t, envelope.Data.Fallback)
	require.NotEmpty(t, envelope.Data.Recommendations)
	for _, rec := range envelope.Data.Recommendations {
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.Reason)
		assert.Contains(t, rec.AmazonURL, "amazon.com")
	}
}

func TestRecommendFromBookMissingTitle(t *testing.T) {
	_, api := setupTestServer(t, "", "", businessStub())

	resp := api.Post("/api/v1/recommendations/book", map[string]any{
		"notes": "some notes",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestRecommendFromBookLimitClamped(t *testing.T) {
	_, api := setupTestServer(t, "", "", businessStub())

	resp := api.Post("/api/v1/recommendations/book", map[string]any{
		"title": "The Lean Startup",
		"limit": 500,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[BookRecommendationsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.LessOrEqual(t, len(envelope.Data.Recommendations), 20)
}

func TestRecommendFromBookFallback(t *testing.T) {
	down := &stubSource{name: "down", err: context.DeadlineExceeded}
	_, api := setupTestServer(t, "", "", down)

	resp := api.Post("/api/v1/recommendations/book", map[string]any{
		"title": "The Lean Startup",
		"notes": "startup strategy business",
	})
	require.Equal(t, http.StatusOK, resp.Code, "source failure degrades, never errors")

	var envelope testEnvelope[BookRecommendationsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Fallback)
	require.NotEmpty(t, envelope.Data.Recommendations)
}

func TestRecommendFromHistoryExplicitBooks(t *testing.T) {
	_, api := setupTestServer(t, "", "", businessStub())

	resp := api.Post("/api/v1/recommendations/history", map[string]any{
		"books": []map[string]any{
			{"title": "The Lean Startup", "notes": "startup strategy"},
			{"title": "Zero to One", "notes": "startup strategy"},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[HistoryRecommendationsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Data.ProfiledBooks)
	require.NotEmpty(t, envelope.Data.Recommendations)
}

func TestRecommendFromHistoryWithoutReadwise(t *testing.T) {
	_, api := setupTestServer(t, "", "", businessStub())

	resp := api.Post("/api/v1/recommendations/history", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var envelope testErrorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION", envelope.Code)
}
