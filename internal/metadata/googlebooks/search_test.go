package googlebooks

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextreadapp/nextread-server/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "", slog.Default())
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/books/v1/volumes", r.URL.Path)
		require.Equal(t, "thinking fast and slow", r.URL.Query().Get("q"))
		w.Write([]byte(`{"totalItems":3,"items":[
			{"id":"a","volumeInfo":{"title":"Thinking, Fast and Slow","authors":["Daniel Kahneman"],
				"description":"Two systems of thought","categories":["Psychology"],
				"averageRating":4.2,"ratingsCount":3000,"publishedDate":"2011-10-25",
				"imageLinks":{"thumbnail":"http://books.google.com/thumb.jpg"}}},
			{"id":"b","volumeInfo":{"title":"No Authors Here"}},
			{"id":"c","volumeInfo":{"title":"","authors":["Ghost"]}}]}`))
	})

	got, err := c.Search(context.Background(), "thinking fast and slow", 5)
	require.NoError(t, err)
	require.Len(t, got, 1, "rows without title or author are dropped")

	cand := got[0]
	assert.Equal(t, "Thinking, Fast and Slow", cand.Title)
	assert.Equal(t, "Daniel Kahneman", cand.Author)
	assert.Equal(t, SourceLabel, cand.Source)
	assert.Equal(t, 4.2, cand.AverageRating)
	assert.Equal(t, 3000, cand.RatingsCount)
	assert.Equal(t, "https://books.google.com/thumb.jpg", cand.ThumbnailURL, "thumbnail upgraded to https")
}

func TestSearchClampsMaxResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "40", r.URL.Query().Get("maxResults"))
		w.Write([]byte(`{"totalItems":0}`))
	})

	_, err := c.Search(context.Background(), "q", 500)
	require.NoError(t, err)
}

func TestSearchKeyRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestSearchServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUpstream))
}
