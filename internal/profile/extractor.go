// Package profile derives a reader taste profile from reference books.
package profile

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/genre"
)

const (
	// minNotesLength is the floor below which notes are treated as too
	// thin to carry keyword signal.
	minNotesLength = 100
	// minTokenLength filters short function words before the stopword
	// list even runs.
	minTokenLength = 5
	// maxTokensPerBook caps one book's keyword contribution so a single
	// heavily-annotated book cannot drown out the rest of the history.
	maxTokensPerBook = 12
)

var tokenPattern = regexp.MustCompile(`[a-z][a-z']*`)

// Extractor builds reference profiles against the active taxonomy.
type Extractor struct {
	store *genre.Store
}

// New creates a profile extractor.
func New(store *genre.Store) *Extractor {
	return &Extractor{store: store}
}

// Extract derives a taste profile from the given reference books. The
// result always carries at least one genre: the "general" sentinel is
// inserted when no taxonomy pattern matches, so downstream matching always
// has a defined path.
func (e *Extractor) Extract(books []domain.ReferenceBook) domain.ReferenceProfile {
	tax := e.store.Current()

	genreCounts := make(map[string]int)
	genreOrder := make([]string, 0, 8)
	keywordCounts := make(map[string]int)
	keywordOrder := make([]string, 0, 32)
	authors := make(map[string]bool)

	for _, book := range books {
		if author := strings.ToLower(strings.TrimSpace(book.Author)); author != "" {
			authors[author] = true
		}

		text := strings.ToLower(book.Title + " " + book.Notes)
		for _, tag := range tax.Match(text) {
			if genreCounts[tag] == 0 {
				genreOrder = append(genreOrder, tag)
			}
			genreCounts[tag]++
		}

		for _, word := range extractKeywords(book.Notes, tax.Stopwords) {
			if keywordCounts[word] == 0 {
				keywordOrder = append(keywordOrder, word)
			}
			keywordCounts[word]++
		}
	}

	if len(genreOrder) == 0 {
		genreOrder = append(genreOrder, domain.GeneralGenre)
		genreCounts[domain.GeneralGenre] = 1
	}

	return domain.ReferenceProfile{
		Genres:   rankCounts(genreOrder, genreCounts, func(tag string, n int) domain.GenreCount { return domain.GenreCount{Tag: tag, Count: n} }),
		Themes:   themeSet(genreOrder),
		Keywords: rankCounts(keywordOrder, keywordCounts, func(w string, n int) domain.KeywordCount { return domain.KeywordCount{Word: w, Count: n} }),
		Authors:  authors,
	}
}

// extractKeywords returns up to maxTokensPerBook distinct qualifying tokens
// from one book's notes, in order of first appearance. Notes below the
// length floor and the no-notes sentinel contribute nothing.
func extractKeywords(notes string, stopwords map[string]bool) []string {
	if notes == domain.NoNotes || len(notes) < minNotesLength {
		return nil
	}

	seen := make(map[string]bool)
	var words []string
	for _, token := range tokenPattern.FindAllString(strings.ToLower(notes), -1) {
		token = strings.Trim(token, "'")
		if len(token) < minTokenLength || stopwords[token] || seen[token] {
			continue
		}
		seen[token] = true
		words = append(words, token)
		if len(words) >= maxTokensPerBook {
			break
		}
	}
	return words
}

// rankCounts orders keys descending by count; first-seen order breaks ties
// so results are stable across runs.
func rankCounts[T any](order []string, counts map[string]int, mk func(string, int) T) []T {
	firstSeen := make(map[string]int, len(order))
	for i, key := range order {
		firstSeen[key] = i
	}
	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		if counts[sorted[i]] != counts[sorted[j]] {
			return counts[sorted[i]] > counts[sorted[j]]
		}
		return firstSeen[sorted[i]] < firstSeen[sorted[j]]
	})

	out := make([]T, 0, len(sorted))
	for _, key := range sorted {
		out = append(out, mk(key, counts[key]))
	}
	return out
}

func themeSet(tags []string) map[string]bool {
	themes := make(map[string]bool, len(tags))
	for _, tag := range tags {
		themes[tag] = true
	}
	return themes
}
