package domain

import "strings"

// CandidateBook is the normalized representation of one book returned by any
// source adapter. Adapters guarantee Title and Author are non-empty; rows
// failing that are dropped at the adapter boundary, never passed downstream.
type CandidateBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	// Authors holds any additional authors beyond the primary one.
	Authors     []string `json:"authors,omitempty"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	// Source is the human-readable label identifying which adapter/list
	// produced the candidate. Used both for scoring and for display.
	Source        string  `json:"source"`
	AverageRating float64 `json:"average_rating,omitempty"`
	RatingsCount  int     `json:"ratings_count,omitempty"`
	// PublishedDate is the raw provider value: a parseable date or a bare
	// year string.
	PublishedDate string `json:"published_date,omitempty"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
}

// Key returns the deduplication identity key:
// lower(trim(title)) + "-" + lower(trim(author)).
// Two candidates with the same key are the same book regardless of which
// adapter produced them.
func (c CandidateBook) Key() string {
	return strings.ToLower(strings.TrimSpace(c.Title)) + "-" + normalizeAuthorKey(c.Author)
}

// SearchText returns the lower-cased text the scorer matches genre and
// keyword terms against.
func (c CandidateBook) SearchText() string {
	parts := make([]string, 0, 3+len(c.Categories))
	parts = append(parts, c.Title, c.Author, c.Description)
	parts = append(parts, c.Categories...)
	return strings.ToLower(strings.Join(parts, " "))
}

// ScoredCandidate is a candidate with its relevance score and the ordered
// justification fragments explaining the match.
type ScoredCandidate struct {
	CandidateBook
	// Score is unbounded and non-negative; higher is better. A candidate
	// below the assembler cutoff still carries its score.
	Score float64 `json:"score"`
	// Fragments are short natural-language clauses, most significant
	// first. The assembler renders at most two.
	Fragments []string `json:"fragments,omitempty"`
}

// normalizeAuthorKey lower-cases and trims an author name for identity and
// novelty checks.
func normalizeAuthorKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
