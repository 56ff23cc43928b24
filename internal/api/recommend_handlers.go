package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/errors"
)

func (s *Server) registerRecommendRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "recommendFromBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/recommendations/book",
		Summary:     "Recommend from one book",
		Description: "Builds a taste profile from a single reference book and returns scored recommendations",
		Tags:        []string{"Recommendations"},
	}, s.handleRecommendFromBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "recommendFromHistory",
		Method:      http.MethodPost,
		Path:        "/api/v1/recommendations/history",
		Summary:     "Recommend from reading history",
		Description: "Builds a taste profile from a reading history and returns scored recommendations. When no books are supplied, the history is pulled from the configured Readwise account.",
		Tags:        []string{"Recommendations"},
	}, s.handleRecommendFromHistory)
}

// === DTOs ===

type BookRecommendationRequest struct {
	Title  string `json:"title" validate:"required,min=1" doc:"Reference book title"`
	Author string `json:"author,omitempty" doc:"Reference book author"`
	Notes  string `json:"notes,omitempty" doc:"Highlights or notes for the reference book"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1" doc:"Maximum recommendations to return"`
}

type RecommendFromBookInput struct {
	Body BookRecommendationRequest
}

type RecommendationResponse struct {
	ID              string   `json:"id" doc:"Recommendation ID"`
	Title           string   `json:"title" doc:"Book title"`
	Author          string   `json:"author" doc:"Book author"`
	Description     string   `json:"description,omitempty" doc:"Book description"`
	Source          string   `json:"source" doc:"Which source contributed the book"`
	Score           float64  `json:"score" doc:"Relevance score"`
	Rating          float64  `json:"rating,omitempty" doc:"Average reader rating"`
	RatingsCount    int      `json:"ratings_count,omitempty" doc:"Number of reader ratings"`
	Categories      []string `json:"categories,omitempty" doc:"Genre categories"`
	Reason          string   `json:"reason" doc:"One-sentence justification"`
	PublicationDate string   `json:"publication_date" doc:"Display publication date"`
	ThumbnailURL    string   `json:"thumbnail_url,omitempty" doc:"Cover thumbnail URL"`
	ThumbnailHash   string   `json:"thumbnail_hash,omitempty" doc:"BlurHash placeholder for the thumbnail"`
	AmazonURL       string   `json:"amazon_url,omitempty" doc:"Amazon search link"`
	GoodreadsURL    string   `json:"goodreads_url,omitempty" doc:"Goodreads search link"`
}

type BookRecommendationsResponse struct {
	SearchedFor     string                   `json:"searched_for" doc:"Title the recommendations are based on"`
	Fallback        bool                     `json:"fallback" doc:"True when the static fallback shelf was served"`
	Recommendations []RecommendationResponse `json:"recommendations" doc:"Scored recommendations, best first"`
}

type RecommendFromBookOutput struct {
	Body BookRecommendationsResponse
}

type HistoryRecommendationRequest struct {
	Books []BookRecommendationRequest `json:"books,omitempty" doc:"Reading history; omit to pull from Readwise"`
	// HistoryLimit caps how many history entries are pulled from Readwise.
	HistoryLimit int `json:"history_limit,omitempty" validate:"omitempty,min=1" doc:"Maximum Readwise history entries to profile"`
	Sample       int `json:"sample,omitempty" validate:"omitempty,min=1" doc:"Randomly sample this many history entries before profiling"`
	Limit        int `json:"limit,omitempty" validate:"omitempty,min=1" doc:"Maximum recommendations to return"`
}

type RecommendFromHistoryInput struct {
	Body HistoryRecommendationRequest
}

type HistoryRecommendationsResponse struct {
	ProfiledBooks   int                      `json:"profiled_books" doc:"How many history entries fed the profile"`
	Fallback        bool                     `json:"fallback" doc:"True when the static fallback shelf was served"`
	Recommendations []RecommendationResponse `json:"recommendations" doc:"Scored recommendations, best first"`
}

type RecommendFromHistoryOutput struct {
	Body HistoryRecommendationsResponse
}

// === Handlers ===

func (s *Server) handleRecommendFromBook(ctx context.Context, input *RecommendFromBookInput) (*RecommendFromBookOutput, error) {
	if err := s.validator.Struct(input.Body); err != nil {
		return nil, err
	}

	book := domain.ReferenceBook{
		Title:  input.Body.Title,
		Author: input.Body.Author,
		Notes:  input.Body.Notes,
	}

	// No notes supplied: the reader may have highlights for this title in
	// their Readwise library. Best effort, a miss changes nothing.
	if strings.TrimSpace(book.Notes) == "" && s.history.Configured() {
		if found, err := s.history.FindBook(ctx, book.Title); err != nil {
			s.logger.WithError(err).Warn("history lookup failed", "title", book.Title)
		} else if found.Title != "" {
			book.Notes = found.Notes
			if book.Author == "" {
				book.Author = found.Author
			}
		}
	}

	result, err := s.engine.RecommendFromSingle(ctx, book, s.clampLimit(input.Body.Limit))
	if err != nil {
		return nil, err
	}

	return &RecommendFromBookOutput{
		Body: BookRecommendationsResponse{
			SearchedFor:     result.SearchedFor,
			Fallback:        result.Fallback,
			Recommendations: mapRecommendations(result.Recommendations),
		},
	}, nil
}

func (s *Server) handleRecommendFromHistory(ctx context.Context, input *RecommendFromHistoryInput) (*RecommendFromHistoryOutput, error) {
	if err := s.validator.Struct(input.Body); err != nil {
		return nil, err
	}

	books := make([]domain.ReferenceBook, 0, len(input.Body.Books))
	for _, b := range input.Body.Books {
		books = append(books, domain.ReferenceBook{
			Title:  b.Title,
			Author: b.Author,
			Notes:  b.Notes,
		})
	}

	if len(books) == 0 {
		if !s.history.Configured() {
			return nil, errors.Validation("no books supplied and Readwise is not configured")
		}
		fetched, err := s.history.ListBooks(ctx, input.Body.HistoryLimit)
		if err != nil {
			return nil, err
		}
		books = fetched
	}

	if input.Body.Sample > 0 && input.Body.Sample < len(books) {
		books = s.sampler.Sample(books, input.Body.Sample)
	}

	result, err := s.engine.RecommendFromHistory(ctx, books, s.clampLimit(input.Body.Limit))
	if err != nil {
		return nil, err
	}

	return &RecommendFromHistoryOutput{
		Body: HistoryRecommendationsResponse{
			ProfiledBooks:   result.ProfiledBooks,
			Fallback:        result.Fallback,
			Recommendations: mapRecommendations(result.Recommendations),
		},
	}, nil
}

// clampLimit resolves the requested count against the configured bounds.
func (s *Server) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.Recommend.DefaultLimit
	}
	if limit > s.cfg.Recommend.MaxLimit {
		return s.cfg.Recommend.MaxLimit
	}
	return limit
}

// === Mappers ===

func mapRecommendations(recs []domain.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, len(recs))
	for i, r := range recs {
		out[i] = RecommendationResponse{
			ID:              r.ID,
			Title:           r.Title,
			Author:          r.Author,
			Description:     r.Description,
			Source:          r.Source,
			Score:           r.Score,
			Rating:          r.Rating,
			RatingsCount:    r.RatingsCount,
			Categories:      r.Categories,
			Reason:          r.Reason,
			PublicationDate: r.PublicationDate,
			ThumbnailURL:    r.ThumbnailURL,
			ThumbnailHash:   r.ThumbnailHash,
			AmazonURL:       r.AmazonURL,
			GoodreadsURL:    r.GoodreadsURL,
		}
	}
	return out
}
