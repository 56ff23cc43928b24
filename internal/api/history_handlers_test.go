package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReadwise serves a two-book library with highlights for the first.
func fakeReadwise(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/v2/books/":
			_, _ = w.Write([]byte(`{
				"count": 2,
				"next": "",
				"results": [
					{"id": 1, "title": "The Lean Startup", "author": "Eric Ries", "category": "books", "num_highlights": 2, "cover_image_url": "https://img.example/lean.jpg"},
					{"id": 2, "title": "Deep Work", "author": "Cal Newport", "category": "books", "num_highlights": 0}
				]
			}`))
		case "/api/v2/highlights/":
			_, _ = w.Write([]byte(`{
				"count": 2,
				"next": "",
				"results": [
					{"id": 10, "text": "validated learning beats planning", "note": ""},
					{"id": 11, "text": "build measure learn", "note": "core loop"}
				]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestListHistoryBooks(t *testing.T) {
	rw := fakeReadwise(t)
	defer rw.Close()

	_, api := setupTestServer(t, rw.URL, "test-token", businessStub())

	resp := api.Get("/api/v1/history/books")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[HistoryBooksResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Books, 2)
	assert.Equal(t, "The Lean Startup", envelope.Data.Books[0].Title)
	assert.Equal(t, "https://img.example/lean.jpg", envelope.Data.Books[0].CoverURL)
	assert.Empty(t, envelope.Data.Books[0].Notes, "listing does not fetch highlights")
}

func TestListHistoryBooksSampled(t *testing.T) {
	rw := fakeReadwise(t)
	defer rw.Close()

	_, api := setupTestServer(t, rw.URL, "test-token", businessStub())

	resp := api.Get("/api/v1/history/books?sample=1")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[HistoryBooksResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Books, 1)
}

func TestGetHistoryBook(t *testing.T) {
	rw := fakeReadwise(t)
	defer rw.Close()

	_, api := setupTestServer(t, rw.URL, "test-token", businessStub())

	resp := api.Get("/api/v1/history/books/the%20lean%20startup")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[HistoryBookResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "The Lean Startup", envelope.Data.Title)
	assert.Contains(t, envelope.Data.Notes, "validated learning")
	assert.Contains(t, envelope.Data.Notes, "core loop")
}

func TestGetHistoryBookNotFound(t *testing.T) {
	rw := fakeReadwise(t)
	defer rw.Close()

	_, api := setupTestServer(t, rw.URL, "test-token", businessStub())

	resp := api.Get("/api/v1/history/books/nope")
	require.Equal(t, http.StatusNotFound, resp.Code)

	var envelope testErrorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestRecommendFromBookEnrichesNotesFromHistory(t *testing.T) {
	rw := fakeReadwise(t)
	defer rw.Close()

	_, api := setupTestServer(t, rw.URL, "test-token", businessStub())

	// No notes in the request: the handler pulls highlights from history.
	resp := api.Post("/api/v1/recommendations/book", map[string]any{
		"title": "The Lean Startup",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[BookRecommendationsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "The Lean Startup", envelope.Data.SearchedFor)
}

func TestRecommendFromHistoryPullsReadwise(t *testing.T) {
	rw := fakeReadwise(t)
	defer rw.Close()

	_, api := setupTestServer(t, rw.URL, "test-token", businessStub())

	resp := api.Post("/api/v1/recommendations/history", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[HistoryRecommendationsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Data.ProfiledBooks)
}
