package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkoval/provenly/internal/fetch"
	"github.com/pkoval/provenly/internal/store"
)

// cachingFetcher wraps a fetcher with a blob cache so repeated runs
// against the same URLs skip the network.
type cachingFetcher struct {
	inner *fetch.Fetcher
	store store.Store
	ttl   time.Duration
}

// cachedFetch is the persisted form of a fetch result.
type cachedFetch struct {
	Text     string `json:"text"`
	Subject  string `json:"subject"`
	FinalURL string `json:"finalUrl"`
}

func (c *cachingFetcher) Fetch(ctx context.Context, url string) (*fetch.Result, error) {
	key := store.BlobKey(url)
	if data, ok := c.store.GetBlob(key); ok {
		var cached cachedFetch
		if err := json.Unmarshal(data, &cached); err == nil {
			return &fetch.Result{
				Text:     cached.Text,
				Subject:  cached.Subject,
				FinalURL: cached.FinalURL,
			}, nil
		}
		// Corrupt entry: fall through and refetch.
	}

	result, err := c.inner.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(cachedFetch{
		Text:     result.Text,
		Subject:  result.Subject,
		FinalURL: result.FinalURL,
	})
	if err == nil {
		// Cache write failures are not fatal; the fetch succeeded.
		_ = c.store.SetBlob(key, data, c.ttl)
	}
	return result, nil
}
