package googlebooks

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
	volumesPath = "/books/v1/volumes"

	defaultMaxResults = 20
	maxMaxResults     = 40

	// SourceLabel identifies this provider in candidate and
	// recommendation output.
	SourceLabel = "Google Books"
)

// Search queries the volumes API and returns normalized candidates. Rows
// missing a title or an author are dropped here, never passed downstream.
func (c *Client) Search(ctx context.Context, query string, max int) ([]domain.CandidateBook, error) {
	if max <= 0 {
		max = defaultMaxResults
	}
	if max > maxMaxResults {
		max = maxMaxResults
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(max))
	params.Set("printType", "books")

	body, err := c.doRequest(ctx, volumesPath, params)
	if err != nil {
		return nil, err
	}

	var resp volumesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse volumes response: %w", err)
	}

	candidates := make([]domain.CandidateBook, 0, len(resp.Items))
	for _, item := range resp.Items {
		info := item.VolumeInfo
		if strings.TrimSpace(info.Title) == "" || len(info.Authors) == 0 {
			continue
		}
		candidates = append(candidates, domain.CandidateBook{
			Title:         info.Title,
			Author:        info.Authors[0],
			Authors:       info.Authors[1:],
			Description:   info.Description,
			Categories:    info.Categories,
			Source:        SourceLabel,
			AverageRating: info.AverageRating,
			RatingsCount:  info.RatingsCount,
			PublishedDate: info.PublishedDate,
			ThumbnailURL:  secureThumbnail(info.ImageLinks),
		})
	}

	c.logger.Debug("google books search", "query", query, "results", len(candidates))
	return candidates, nil
}

// secureThumbnail picks the larger image link and upgrades it to https;
// Google still returns plain http URLs here.
func secureThumbnail(links rawImageLinks) string {
	u := links.Thumbnail
	if u == "" {
		u = links.SmallThumbnail
	}
	return strings.Replace(u, "http://", "https://", 1)
}
