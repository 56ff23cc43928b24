package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextreadapp/nextread-server/internal/domain"
)

func TestDedupeKeepsFirstSeen(t *testing.T) {
	list := []domain.CandidateBook{
		{Title: "Atomic Habits", Author: "James Clear", Description: "from bestsellers", Source: "NYT Bestsellers"},
		{Title: "Deep Work", Author: "Cal Newport"},
		{Title: "  atomic habits ", Author: "JAMES CLEAR", Description: "from search", Source: "Google Books"},
	}

	got := Dedupe(list)
	require.Len(t, got, 2)
	assert.Equal(t, "Atomic Habits", got[0].Title)
	assert.Equal(t, "from bestsellers", got[0].Description, "first-seen instance wins")
	assert.Equal(t, "Deep Work", got[1].Title)
}

func TestDedupeIdempotent(t *testing.T) {
	list := []domain.CandidateBook{
		{Title: "A", Author: "X"},
		{Title: "B", Author: "Y"},
		{Title: "A", Author: "X"},
		{Title: "A", Author: "Z"},
	}

	once := Dedupe(list)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
	assert.LessOrEqual(t, len(once), len(list))
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

func TestDedupeDistinguishesAuthors(t *testing.T) {
	list := []domain.CandidateBook{
		{Title: "Circe", Author: "Madeline Miller"},
		{Title: "Circe", Author: "Someone Else"},
	}
	assert.Len(t, Dedupe(list), 2, "same title, different author is a different book")
}
