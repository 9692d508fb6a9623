package videosearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Searcher resolves an exercise name to a playable video URL.
type Searcher interface {
	SearchVideo(ctx context.Context, query string) (string, error)
}

const defaultBaseURL = "https://api.pexels.com"

type Client struct {
	apiKey     string
	BaseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      gocache.New(6*time.Hour, 30*time.Minute),
	}
}

type searchResponse struct {
	Videos []struct {
		VideoFiles []struct {
			Link string `json:"link"`
		} `json:"video_files"`
	} `json:"videos"`
}

// SearchVideo returns the first video file link for the query. Results are
// cached so repeated exercises across plans do not burn API quota.
func (c *Client) SearchVideo(ctx context.Context, query string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if cached, found := c.cache.Get(key); found {
		return cached.(string), nil
	}

	endpoint := fmt.Sprintf("%s/videos/search?query=%s&per_page=1", c.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("videosearch: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("videosearch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("videosearch: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("videosearch: decode response: %w", err)
	}

	// An empty result set is an error: callers rely on every returned URL
	// being playable, so there is no useful fallback value.
	if len(body.Videos) == 0 || len(body.Videos[0].VideoFiles) == 0 {
		return "", fmt.Errorf("videosearch: no results for %q", query)
	}

	link := body.Videos[0].VideoFiles[0].Link
	c.cache.Set(key, link, gocache.DefaultExpiration)
	return link, nil
}
