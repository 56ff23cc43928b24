package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"2023-05-16", time.Date(2023, 5, 16, 0, 0, 0, 0, time.UTC), true},
		{"2023-05", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"2023", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"Published May 2021", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"unknown", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		if tt.ok {
			assert.True(t, got.Equal(tt.want), "raw %q: got %v", tt.raw, got)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2023-05-16", "May 2023"},
		{"2023-05", "May 2023"},
		{"2023", "2023"},
		{"", ""},
		{"circa 1850", "January 1850"},
		{"not a date", "not a date"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayDate(tt.raw), "raw %q", tt.raw)
	}
}

func TestYear(t *testing.T) {
	y, ok := Year("2024-11-05")
	assert.True(t, ok)
	assert.Equal(t, 2024, y)

	_, ok = Year("no year here")
	assert.False(t, ok)
}

func TestSortKeyOrdersUndatedLast(t *testing.T) {
	dated := SortKey("2020-01-01")
	undated := SortKey("")
	assert.True(t, dated.After(undated))
}
