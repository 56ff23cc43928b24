package googlebooks

// Raw API response types (internal)

type volumesResponse struct {
	TotalItems int         `json:"totalItems"`
	Items      []rawVolume `json:"items"`
}

type rawVolume struct {
	ID         string        `json:"id"`
	VolumeInfo rawVolumeInfo `json:"volumeInfo"`
}

type rawVolumeInfo struct {
	Title         string        `json:"title"`
	Authors       []string      `json:"authors"`
	Description   string        `json:"description"`
	Categories    []string      `json:"categories"`
	AverageRating float64       `json:"averageRating"`
	RatingsCount  int           `json:"ratingsCount"`
	PublishedDate string        `json:"publishedDate"`
	Language      string        `json:"language"`
	ImageLinks    rawImageLinks `json:"imageLinks"`
}

type rawImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}
