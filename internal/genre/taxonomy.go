// Package genre holds the recommendation taxonomy: the ordered genre
// patterns the profiler matches, the stopword list, bestseller list
// mappings, genre cross-mappings, the curated award table, and the static
// fallback shelves. Keeping these tables together means tuning the taxonomy
// never touches scoring logic.
package genre

import "regexp"

// Pattern pairs a taxonomy tag with the regular expression that detects it
// in free text. Order matters: earlier patterns rank first on frequency
// ties.
type Pattern struct {
	Tag     string
	Pattern *regexp.Regexp
}

// Taxonomy bundles every tunable table the pipeline reads. A Taxonomy is
// immutable once built; the Store swaps whole values on reload.
type Taxonomy struct {
	// Patterns is the ordered genre detection set.
	Patterns []Pattern
	// Stopwords are excluded from keyword extraction.
	Stopwords map[string]bool
	// ListNames maps a genre tag to the bestseller list slugs queried for
	// it.
	ListNames map[string][]string
	// DefaultLists are queried when no profile genre maps to a list.
	DefaultLists []string
	// CrossMappings expand a genre tag to related tags for curated-table
	// filtering (memoir <-> biography, current_affairs <-> history).
	CrossMappings map[string][]string
	// Curated is the hand-maintained award table served without network
	// calls.
	Curated []CuratedEntry
	// Fallbacks are the static shelves served on candidate starvation,
	// keyed by genre tag; the "general" key is the last resort.
	Fallbacks map[string][]FallbackBook
}

// Match runs every pattern against the (already lower-cased) text and
// returns the tags that matched, in taxonomy order.
func (t *Taxonomy) Match(text string) []string {
	var tags []string
	for _, p := range t.Patterns {
		if p.Pattern.MatchString(text) {
			tags = append(tags, p.Tag)
		}
	}
	return tags
}

// Related returns the tag itself plus its cross-mapped tags.
func (t *Taxonomy) Related(tag string) []string {
	related := []string{tag}
	related = append(related, t.CrossMappings[tag]...)
	return related
}

// ListsFor returns the bestseller list slugs for the given genre tags,
// capped at max, falling back to DefaultLists when nothing maps.
func (t *Taxonomy) ListsFor(tags []string, max int) []string {
	seen := make(map[string]bool)
	var lists []string
	for _, tag := range tags {
		for _, list := range t.ListNames[tag] {
			if seen[list] {
				continue
			}
			seen[list] = true
			lists = append(lists, list)
			if len(lists) >= max {
				return lists
			}
		}
	}
	if len(lists) == 0 {
		lists = append(lists, t.DefaultLists...)
		if len(lists) > max {
			lists = lists[:max]
		}
	}
	return lists
}

// Default returns the built-in taxonomy. Deployments can override it with a
// JSON table file (see Store).
func Default() *Taxonomy {
	return &Taxonomy{
		Patterns:      defaultPatterns(),
		Stopwords:     defaultStopwords(),
		ListNames:     defaultListNames(),
		DefaultLists:  []string{"combined-print-and-e-book-fiction", "combined-print-and-e-book-nonfiction"},
		CrossMappings: defaultCrossMappings(),
		Curated:       defaultCurated(),
		Fallbacks:     defaultFallbacks(),
	}
}

// defaultPatterns is the ordered detection set. Word boundaries keep short
// tags like "food" from matching inside unrelated words.
func defaultPatterns() []Pattern {
	mk := func(tag, expr string) Pattern {
		return Pattern{Tag: tag, Pattern: regexp.MustCompile(expr)}
	}
	return []Pattern{
		mk("business", `\b(business|startup|entrepreneur|management|leadership|strategy|marketing|negotiat)`),
		mk("psychology", `\b(psycholog|behavio|cognitive|mindset|habit|motivat|emotion)`),
		mk("self_help", `\b(self.?help|self.?improvement|productivity|success|discipline|confidence)`),
		mk("science", `\b(science|scientific|physics|biology|chemistry|evolution|universe|quantum)`),
		mk("history", `\b(history|historical|war|empire|ancient|revolution|civilization)`),
		mk("philosophy", `\b(philosoph|stoic|ethics|existential|meaning of life|wisdom)`),
		mk("biography", `\b(biography|memoir|autobiography|life of|life story)`),
		mk("fiction", `\b(novel|fiction|story|stories|literary|tale)`),
		mk("health", `\b(health|fitness|nutrition|diet|exercise|sleep|wellness|longevity)`),
		mk("technology", `\b(technolog|software|computer|internet|digital|artificial intelligence|\bai\b|data)`),
		mk("culture", `\b(culture|cultural|society|social|identity|community)`),
		mk("economics", `\b(econom|finance|financial|money|invest|market|capitalism|wealth)`),
		mk("environment", `\b(environment|climate|nature|ecology|sustainab|planet)`),
		mk("current_affairs", `\b(politics|political|democracy|election|policy|geopolit|journalis)`),
		mk("travel", `\b(travel|journey|adventure|expedition|wander)`),
		mk("food", `\b(food|cooking|cookbook|cuisine|recipe|chef)`),
		mk("sports", `\b(sport|athlete|olympic|football|basketball|tennis|running|soccer)`),
	}
}

func defaultCrossMappings() map[string][]string {
	return map[string][]string{
		"biography":       {"memoir"},
		"memoir":          {"biography"},
		"current_affairs": {"history"},
		"history":         {"current_affairs"},
		"business":        {"economics"},
		"economics":       {"business"},
		"psychology":      {"self_help"},
		"self_help":       {"psychology"},
		"science":         {"technology"},
		"health":          {"science"},
	}
}

func defaultListNames() map[string][]string {
	return map[string][]string{
		"business":        {"business-books"},
		"economics":       {"business-books"},
		"self_help":       {"advice-how-to-and-miscellaneous"},
		"psychology":      {"advice-how-to-and-miscellaneous"},
		"health":          {"advice-how-to-and-miscellaneous"},
		"fiction":         {"combined-print-and-e-book-fiction", "hardcover-fiction"},
		"history":         {"combined-print-and-e-book-nonfiction", "hardcover-nonfiction"},
		"biography":       {"combined-print-and-e-book-nonfiction"},
		"science":         {"hardcover-nonfiction"},
		"technology":      {"hardcover-nonfiction"},
		"current_affairs": {"combined-print-and-e-book-nonfiction"},
		"culture":         {"hardcover-nonfiction"},
		"philosophy":      {"hardcover-nonfiction"},
		"environment":     {"hardcover-nonfiction"},
		"travel":          {"travel"},
		"food":            {"food-and-fitness"},
		"sports":          {"sports"},
	}
}
