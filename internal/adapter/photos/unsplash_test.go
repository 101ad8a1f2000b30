package photos

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/config/configs"
	"campaign-wizard/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := configs.Photos{BaseURL: srv.URL, AccessKey: "key-123", Timeout: time.Second}
	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSearchMapsResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Client-ID key-123", r.Header.Get("Authorization"))
		assert.Equal(t, "coffee latte art", r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":[
			{"id":"p1","description":"Latte","alt_description":"ignored","urls":{"regular":"r1","small":"s1"},"links":{"download":"d1"},"user":{"name":"Ana"}},
			{"id":"p2","description":null,"alt_description":"Cup on table","urls":{"regular":"r2","small":"s2"},"links":{"download":"d2"},"user":{"name":""}},
			{"id":"p3","urls":{"regular":"r3","small":"s3"},"links":{"download":"d3"},"user":{"name":"Bo"}}
		]}`)
	})

	got := client.Search(context.Background(), []string{"coffee", "latte art!"})

	require.Len(t, got, 3)
	assert.Equal(t, domain.ImageDescriptor{ID: "p1", URL: "r1", ThumbnailURL: "s1", Description: "Latte", Photographer: "Ana", DownloadURL: "d1"}, got[0])
	assert.Equal(t, "Cup on table", got[1].Description)
	assert.Equal(t, "Unknown", got[1].Photographer)
	assert.Equal(t, "Stock photo", got[2].Description)
}

func TestSearchReturnsEmptyOnFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"errors":["Rate Limit Exceeded"]}`, http.StatusForbidden)
	})

	assert.Empty(t, client.Search(context.Background(), []string{"office"}))
}

func TestSearchReturnsEmptyOnTransportError(t *testing.T) {
	cfg := configs.Photos{BaseURL: "http://127.0.0.1:1", AccessKey: "k", Timeout: 200 * time.Millisecond}
	client := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Empty(t, client.Search(context.Background(), []string{"office"}))
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, "coffee shop 2024 vibes", buildQuery([]string{"coffee shop", "#2024", "vibes!", "..."}))
	assert.Empty(t, buildQuery(nil))
}
