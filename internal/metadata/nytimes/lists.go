package nytimes

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nextreadapp/nextread-server/internal/domain"
)

// sourceLabelPrefix identifies this provider in candidate output; the list
// display name is appended so callers can tell lists apart.
const sourceLabelPrefix = "NYT Bestseller"

var titleCaser = cases.Title(language.English)

// CurrentList fetches the current edition of one bestseller list and
// returns normalized candidates. listSlug is the NYT list name in slug form,
// e.g. "hardcover-fiction".
func (c *Client) CurrentList(ctx context.Context, listSlug string) ([]domain.CandidateBook, error) {
	path := fmt.Sprintf("/svc/books/v3/lists/current/%s.json", url.PathEscape(listSlug))

	body, err := c.doRequest(ctx, path, url.Values{})
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse list response: %w", err)
	}

	label := sourceLabelPrefix
	if resp.Results.DisplayName != "" {
		label = sourceLabelPrefix + ": " + resp.Results.DisplayName
	}

	candidates := make([]domain.CandidateBook, 0, len(resp.Results.Books))
	for _, raw := range resp.Results.Books {
		if strings.TrimSpace(raw.Title) == "" || strings.TrimSpace(raw.Author) == "" {
			continue
		}
		candidates = append(candidates, domain.CandidateBook{
			// The feed upper-cases titles; restore display casing.
			Title:         titleCaser.String(strings.ToLower(raw.Title)),
			Author:        raw.Author,
			Description:   raw.Description,
			Categories:    []string{resp.Results.DisplayName},
			Source:        label,
			PublishedDate: raw.PublishedDate,
			ThumbnailURL:  raw.BookImage,
		})
	}

	c.logger.Debug("nyt list fetched", "list", listSlug, "results", len(candidates))
	return candidates, nil
}
