package nytimes

// Raw API response types (internal)

type listResponse struct {
	Status     string     `json:"status"`
	NumResults int        `json:"num_results"`
	Results    rawResults `json:"results"`
}

type rawResults struct {
	ListName    string    `json:"list_name"`
	DisplayName string    `json:"display_name"`
	Updated     string    `json:"updated"`
	Books       []rawBook `json:"books"`
}

type rawBook struct {
	Rank             int    `json:"rank"`
	WeeksOnList      int    `json:"weeks_on_list"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	Description      string `json:"description"`
	Publisher        string `json:"publisher"`
	PublishedDate    string `json:"published_date"`
	BookImage        string `json:"book_image"`
	AmazonProductURL string `json:"amazon_product_url"`
}
