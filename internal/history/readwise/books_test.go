package readwise

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-token", slog.Default())
}

func TestListBooksPaginated(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Token test-token", r.Header.Get("Authorization"))
		require.Equal(t, "/api/v2/books/", r.URL.Path)
		calls++
		switch r.URL.Query().Get("page") {
		case "1":
			w.Write([]byte(`{"count":3,"next":"page2","results":[
				{"id":1,"title":"Sapiens","author":"Yuval Noah Harari","num_highlights":2},
				{"id":2,"title":"  ","author":"Empty Title"},
				{"id":3,"title":"Deep Work","author":"Cal Newport"}]}`))
		default:
			w.Write([]byte(`{"count":3,"next":"","results":[
				{"id":4,"title":"Atomic Habits","author":"James Clear"}]}`))
		}
	})

	books, err := c.ListBooks(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, books, 3, "empty-title rows are dropped")
	assert.Equal(t, 2, calls)
	assert.Equal(t, "Sapiens", books[0].Title)
	assert.Equal(t, domain.NoNotes, books[0].Notes)
	assert.Equal(t, "Atomic Habits", books[2].Title)
}

func TestListBooksLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":2,"next":"","results":[
			{"id":1,"title":"One","author":"A"},
			{"id":2,"title":"Two","author":"B"}]}`))
	})

	books, err := c.ListBooks(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestFindBookJoinsHighlights(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/books/":
			w.Write([]byte(`{"count":1,"next":"","results":[
				{"id":7,"title":"The Wager","author":"David Grann","num_highlights":2}]}`))
		case "/api/v2/highlights/":
			require.Equal(t, "7", r.URL.Query().Get("book_id"))
			w.Write([]byte(`{"count":2,"next":"","results":[
				{"id":1,"text":"mutiny and shipwreck https://readwise.io/x","note":"gripping"},
				{"id":2,"text":"competing accounts of truth"}]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	book, err := c.FindBook(context.Background(), "  the wager ")
	require.NoError(t, err)
	assert.Equal(t, "The Wager", book.Title)
	assert.Equal(t, "mutiny and shipwreck gripping competing accounts of truth", book.Notes,
		"URL tokens stripped, highlight text and notes joined")
}

func TestFindBookNoHighlightsKeepsSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":1,"next":"","results":[
			{"id":8,"title":"Quiet","author":"Susan Cain","num_highlights":0}]}`))
	})

	book, err := c.FindBook(context.Background(), "Quiet")
	require.NoError(t, err)
	assert.Equal(t, domain.NoNotes, book.Notes)
}

func TestFindBookMiss(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0,"next":"","results":[]}`))
	})

	book, err := c.FindBook(context.Background(), "Nonexistent")
	require.NoError(t, err)
	assert.Empty(t, book.Title)
}

func TestUnauthorizedIsConfigError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ListBooks(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig), "credential rejection is a config error")
}

func TestMissingTokenIsConfigError(t *testing.T) {
	c := New("http://localhost:0", "", slog.Default())
	assert.False(t, c.Configured())

	_, err := c.ListBooks(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestServerErrorIsUpstream(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ListBooks(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUpstream))
}
