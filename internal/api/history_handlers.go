package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/errors"
)

func (s *Server) registerHistoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listHistoryBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/books",
		Summary:     "List reading history",
		Description: "Lists books from the configured Readwise account",
		Tags:        []string{"History"},
	}, s.handleListHistoryBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getHistoryBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/books/{title}",
		Summary:     "Get one history entry",
		Description: "Finds a history entry by title and returns it with its highlights attached",
		Tags:        []string{"History"},
	}, s.handleGetHistoryBook)
}

// === DTOs ===

type ListHistoryBooksInput struct {
	Limit  int `query:"limit" doc:"Maximum entries to return"`
	Sample int `query:"sample" doc:"Randomly sample this many entries"`
}

type HistoryBookResponse struct {
	Title     string `json:"title" doc:"Book title"`
	Author    string `json:"author,omitempty" doc:"Book author"`
	Notes     string `json:"notes,omitempty" doc:"Joined highlight text"`
	CoverURL  string `json:"cover_url,omitempty" doc:"Cover image URL"`
	SourceURL string `json:"source_url,omitempty" doc:"Where the book was read"`
}

type HistoryBooksResponse struct {
	Books []HistoryBookResponse `json:"books" doc:"History entries, newest first"`
}

type ListHistoryBooksOutput struct {
	Body HistoryBooksResponse
}

type GetHistoryBookInput struct {
	Title string `path:"title" doc:"Book title, matched case-insensitively"`
}

type GetHistoryBookOutput struct {
	Body HistoryBookResponse
}

// === Handlers ===

func (s *Server) handleListHistoryBooks(ctx context.Context, input *ListHistoryBooksInput) (*ListHistoryBooksOutput, error) {
	books, err := s.history.ListBooks(ctx, input.Limit)
	if err != nil {
		return nil, err
	}

	if input.Sample > 0 && input.Sample < len(books) {
		books = s.sampler.Sample(books, input.Sample)
	}

	resp := make([]HistoryBookResponse, len(books))
	for i, b := range books {
		resp[i] = mapHistoryBook(b)
	}

	return &ListHistoryBooksOutput{Body: HistoryBooksResponse{Books: resp}}, nil
}

func (s *Server) handleGetHistoryBook(ctx context.Context, input *GetHistoryBookInput) (*GetHistoryBookOutput, error) {
	book, err := s.history.FindBook(ctx, input.Title)
	if err != nil {
		return nil, err
	}
	if book.Title == "" {
		return nil, errors.NotFoundf("no history entry titled %q", input.Title)
	}

	return &GetHistoryBookOutput{Body: mapHistoryBook(book)}, nil
}

// === Mappers ===

func mapHistoryBook(b domain.ReferenceBook) HistoryBookResponse {
	notes := b.Notes
	if notes == domain.NoNotes {
		notes = ""
	}
	return HistoryBookResponse{
		Title:     b.Title,
		Author:    b.Author,
		Notes:     notes,
		CoverURL:  b.CoverURL,
		SourceURL: b.SourceURL,
	}
}
