package source

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextreadapp/nextread-server/internal/errors"
	"github.com/nextreadapp/nextread-server/internal/metadata/nytimes"
)

func TestBestsellerFetch(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"status":"OK","results":{"display_name":"Business",
			"books":[{"rank":1,"title":"CHIP WAR","author":"Chris Miller",
				"description":"<p>Semiconductors and <b>power</b>.</p>","published_date":"2022-10-04"}]}}`))
	}))
	defer srv.Close()

	client := nytimes.New(srv.URL, "key", slog.Default())
	src := NewBestsellerSource(client, newStore(t), slog.Default())
	assert.Equal(t, "bestsellers", src.Name())

	got, err := src.Fetch(context.Background(), profileWith("business"))
	require.NoError(t, err)
	require.NotEmpty(t, got)

	assert.Equal(t, "/svc/books/v3/lists/current/business-books.json", paths[0])
	assert.Equal(t, "Chip War", got[0].Title)
	assert.Equal(t, "Semiconductors and **power**.", got[0].Description, "html cleaned to markdown")
}

func TestBestsellerFetchUnconfigured(t *testing.T) {
	client := nytimes.New("http://localhost:0", "", slog.Default())
	src := NewBestsellerSource(client, newStore(t), slog.Default())

	_, err := src.Fetch(context.Background(), profileWith("business"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestBestsellerFetchPartialFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"status":"OK","results":{"display_name":"Hardcover Fiction",
			"books":[{"rank":1,"title":"ORBITAL","author":"Samantha Harvey","published_date":"2024-01-01"}]}}`))
	}))
	defer srv.Close()

	client := nytimes.New(srv.URL, "key", slog.Default())
	src := NewBestsellerSource(client, newStore(t), slog.Default())

	// fiction maps to two lists; the first fails, the second succeeds
	got, err := src.Fetch(context.Background(), profileWith("fiction"))
	require.NoError(t, err, "partial failure is not an error")
	require.Len(t, got, 1)
	assert.Equal(t, "Orbital", got[0].Title)
}

func TestBestsellerFetchTotalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := nytimes.New(srv.URL, "key", slog.Default())
	src := NewBestsellerSource(client, newStore(t), slog.Default())

	_, err := src.Fetch(context.Background(), profileWith("business"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUpstream))
}
