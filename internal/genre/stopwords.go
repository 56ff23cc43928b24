package genre

// defaultStopwords is the built-in exclusion list for keyword extraction.
// Mostly function words plus a handful of book-review filler terms that
// carry no taste signal ("really", "chapter", "author").
func defaultStopwords() map[string]bool {
	words := []string{
		"about", "above", "after", "again", "against", "almost", "along",
		"also", "although", "always", "among", "around", "because", "been",
		"before", "being", "below", "between", "both", "could", "doing",
		"down", "during", "each", "every", "first", "from", "further",
		"getting", "going", "great", "have", "having", "here", "himself",
		"herself", "into", "itself", "just", "like", "little", "made",
		"make", "makes", "making", "many", "more", "most", "much", "never",
		"only", "other", "over", "people", "pretty", "quite", "rather",
		"really", "same", "should", "since", "some", "something", "still",
		"such", "than", "that", "their", "them", "then", "there", "these",
		"they", "thing", "things", "this", "those", "through", "under",
		"until", "very", "we're", "well", "were", "what", "when", "where",
		"which", "while", "will", "with", "without", "would", "your",
		"you're", "yourself",
		// review filler
		"author", "book", "books", "chapter", "chapters", "page", "pages",
		"read", "reading", "write", "writes", "writing", "written",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
