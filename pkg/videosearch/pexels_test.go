package videosearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchVideoReturnsFirstLink(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"videos":[{"video_files":[{"link":"https://videos.example/one.mp4"},{"link":"https://videos.example/two.mp4"}]}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL

	link, err := client.SearchVideo(context.Background(), "push ups")
	require.NoError(t, err)
	assert.Equal(t, "https://videos.example/one.mp4", link)
	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, "push ups", gotQuery)
}

func TestSearchVideoCachesResults(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"videos":[{"video_files":[{"link":"https://videos.example/cached.mp4"}]}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL

	for i := 0; i < 3; i++ {
		link, err := client.SearchVideo(context.Background(), "Squats")
		require.NoError(t, err)
		assert.Equal(t, "https://videos.example/cached.mp4", link)
	}
	// Cache key is case-insensitive.
	_, err := client.SearchVideo(context.Background(), "squats")
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
}

func TestSearchVideoNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"videos":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL

	link, err := client.SearchVideo(context.Background(), "nonexistent movement")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no results")
	assert.Empty(t, link)
}

func TestSearchVideoUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL

	_, err := client.SearchVideo(context.Background(), "push ups")
	assert.Error(t, err)
}
