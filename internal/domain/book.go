// Package domain defines the core entities of the recommendation pipeline.
// All entities are constructed fresh per request and discarded after the
// response is produced; nothing here is persisted.
package domain

// ReferenceBook is a book the reader has already read or selected as
// representative of what they want to read next. It is the unit of input to
// the profiler.
type ReferenceBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	// Notes holds the reader's highlights or a summary, joined into one
	// string. "No notes available" when the history provider had none.
	Notes string `json:"notes,omitempty"`
	// CoverURL and SourceURL are display extras carried through from the
	// history provider.
	CoverURL  string `json:"cover_url,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}

// NoNotes is the sentinel used when a history entry carries no highlights.
const NoNotes = "No notes available"
