package recommend

import "net/url"

// AmazonSearchURL returns a purchase search link for a book. Pure string
// formatting, no network calls.
func AmazonSearchURL(title, author string) string {
	return "https://www.amazon.com/s?" + url.Values{
		"k": {title + " " + author},
		"i": {"stripbooks"},
	}.Encode()
}

// GoodreadsSearchURL returns a review search link for a book.
func GoodreadsSearchURL(title, author string) string {
	return "https://www.goodreads.com/search?" + url.Values{
		"q": {title + " " + author},
	}.Encode()
}
