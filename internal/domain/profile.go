package domain

// GenreCount is one genre tag with its match frequency across the reference
// input. Profiles keep genres ranked descending by count, first-seen order
// breaking ties.
type GenreCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// KeywordCount is one extracted note keyword with its frequency.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ReferenceProfile is the taste summary derived from one or more reference
// books. It is immutable once built; the profiler returns a fresh value per
// extraction.
type ReferenceProfile struct {
	// Genres ranked descending by match frequency. Never empty: the
	// profiler inserts the "general" sentinel when no pattern matches.
	Genres []GenreCount `json:"genres"`
	// Themes is the set of genre tags that matched at least once, for
	// boolean presence checks. Never empty (same sentinel rule).
	Themes map[string]bool `json:"themes"`
	// Keywords ranked descending by frequency, stopword-filtered.
	Keywords []KeywordCount `json:"keywords"`
	// Authors already read, lower-cased, for the novelty penalty.
	Authors map[string]bool `json:"authors"`
}

// GeneralGenre is the sentinel tag guaranteeing downstream matching logic a
// defined path when nothing in the taxonomy matched.
const GeneralGenre = "general"

// PrimaryGenre returns the highest-ranked genre tag.
func (p ReferenceProfile) PrimaryGenre() string {
	if len(p.Genres) == 0 {
		return GeneralGenre
	}
	return p.Genres[0].Tag
}

// TopGenres returns up to n highest-ranked genre tags.
func (p ReferenceProfile) TopGenres(n int) []string {
	if n > len(p.Genres) {
		n = len(p.Genres)
	}
	tags := make([]string, 0, n)
	for _, g := range p.Genres[:n] {
		tags = append(tags, g.Tag)
	}
	return tags
}

// TopKeywords returns up to n highest-ranked keywords.
func (p ReferenceProfile) TopKeywords(n int) []string {
	if n > len(p.Keywords) {
		n = len(p.Keywords)
	}
	words := make([]string, 0, n)
	for _, k := range p.Keywords[:n] {
		words = append(words, k.Word)
	}
	return words
}

// HasAuthor reports whether the reader has already read the given author.
// The check is case-insensitive; callers pass the raw author name.
func (p ReferenceProfile) HasAuthor(name string) bool {
	if p.Authors == nil {
		return false
	}
	return p.Authors[normalizeAuthorKey(name)]
}
