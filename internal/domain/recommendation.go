package domain

// Recommendation is the final output unit returned to the caller.
type Recommendation struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description,omitempty"`
	Source        string   `json:"source"`
	Score         float64  `json:"score"`
	Rating        float64  `json:"rating,omitempty"`
	RatingsCount  int      `json:"ratings_count,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	// Reason is a single rendered sentence built from the top one or two
	// justification fragments.
	Reason string `json:"reason"`
	// PublicationDate is normalized to "Month Year" for display.
	PublicationDate string `json:"publication_date"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	// ThumbnailHash is a BlurHash placeholder for the thumbnail, computed
	// only when cover probing is enabled.
	ThumbnailHash string `json:"thumbnail_hash,omitempty"`
	// Purchase and review links are computed, not stored.
	AmazonURL    string `json:"amazon_url,omitempty"`
	GoodreadsURL string `json:"goodreads_url,omitempty"`
}
