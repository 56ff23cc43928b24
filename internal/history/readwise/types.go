package readwise

// Raw API response types (internal)

type booksResponse struct {
	Count    int       `json:"count"`
	Next     string    `json:"next"`
	Previous string    `json:"previous"`
	Results  []rawBook `json:"results"`
}

type rawBook struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Category      string `json:"category"`
	NumHighlights int    `json:"num_highlights"`
	SourceURL     string `json:"source_url"`
	CoverImageURL string `json:"cover_image_url"`
}

type highlightsResponse struct {
	Count   int            `json:"count"`
	Next    string         `json:"next"`
	Results []rawHighlight `json:"results"`
}

type rawHighlight struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Note string `json:"note"`
}
