package readwise

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/nextreadapp/nextread-server/internal/domain"
)

const (
	booksPath      = "/api/v2/books/"
	highlightsPath = "/api/v2/highlights/"

	// maxPages bounds pagination so a huge library cannot stall a request.
	maxPages = 10
)

// ListBooks returns the reader's book history, newest first as Readwise
// orders it, up to limit entries. limit <= 0 means no cap (within the page
// bound).
func (c *Client) ListBooks(ctx context.Context, limit int) ([]domain.ReferenceBook, error) {
	var books []domain.ReferenceBook

	query := url.Values{}
	query.Set("page_size", strconv.Itoa(pageSize))
	query.Set("category", "books")
	query.Set("page", "1")

	for page := 1; page <= maxPages; page++ {
		query.Set("page", strconv.Itoa(page))
		body, err := c.doRequest(ctx, booksPath, query)
		if err != nil {
			return nil, err
		}

		var resp booksResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("parse books response: %w", err)
		}

		for _, raw := range resp.Results {
			if strings.TrimSpace(raw.Title) == "" {
				continue
			}
			books = append(books, domain.ReferenceBook{
				Title:     raw.Title,
				Author:    raw.Author,
				Notes:     domain.NoNotes,
				CoverURL:  raw.CoverImageURL,
				SourceURL: raw.SourceURL,
			})
			if limit > 0 && len(books) >= limit {
				return books, nil
			}
		}

		if resp.Next == "" {
			break
		}
	}

	return books, nil
}

// BookWithNotes returns one history entry with its highlights joined into
// the Notes field. The no-notes sentinel is used when the book has no
// highlights.
func (c *Client) BookWithNotes(ctx context.Context, book domain.ReferenceBook, bookID int) (domain.ReferenceBook, error) {
	notes, err := c.highlights(ctx, bookID)
	if err != nil {
		return book, err
	}
	if notes != "" {
		book.Notes = notes
	}
	return book, nil
}

// FindBook locates a history entry by title and returns it with notes
// attached. Matching is case-insensitive on the trimmed title.
func (c *Client) FindBook(ctx context.Context, title string) (domain.ReferenceBook, error) {
	want := strings.ToLower(strings.TrimSpace(title))

	query := url.Values{}
	query.Set("page_size", strconv.Itoa(pageSize))
	query.Set("category", "books")

	for page := 1; page <= maxPages; page++ {
		query.Set("page", strconv.Itoa(page))
		body, err := c.doRequest(ctx, booksPath, query)
		if err != nil {
			return domain.ReferenceBook{}, err
		}

		var resp booksResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return domain.ReferenceBook{}, fmt.Errorf("parse books response: %w", err)
		}

		for _, raw := range resp.Results {
			if strings.ToLower(strings.TrimSpace(raw.Title)) != want {
				continue
			}
			book := domain.ReferenceBook{
				Title:     raw.Title,
				Author:    raw.Author,
				Notes:     domain.NoNotes,
				CoverURL:  raw.CoverImageURL,
				SourceURL: raw.SourceURL,
			}
			if raw.NumHighlights == 0 {
				return book, nil
			}
			return c.BookWithNotes(ctx, book, raw.ID)
		}

		if resp.Next == "" {
			break
		}
	}

	return domain.ReferenceBook{}, nil
}

// highlights fetches and joins all highlight text for a book, dropping
// bare-URL noise that carries no taste signal.
func (c *Client) highlights(ctx context.Context, bookID int) (string, error) {
	query := url.Values{}
	query.Set("book_id", strconv.Itoa(bookID))
	query.Set("page_size", strconv.Itoa(pageSize))

	var parts []string
	for page := 1; page <= maxPages; page++ {
		query.Set("page", strconv.Itoa(page))
		body, err := c.doRequest(ctx, highlightsPath, query)
		if err != nil {
			return "", err
		}

		var resp highlightsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("parse highlights response: %w", err)
		}

		for _, h := range resp.Results {
			if text := cleanHighlight(h.Text); text != "" {
				parts = append(parts, text)
			}
			if note := cleanHighlight(h.Note); note != "" {
				parts = append(parts, note)
			}
		}

		if resp.Next == "" {
			break
		}
	}

	return strings.Join(parts, " "), nil
}

// cleanHighlight trims a highlight and strips URL tokens.
func cleanHighlight(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if strings.HasPrefix(f, "http://") || strings.HasPrefix(f, "https://") {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
