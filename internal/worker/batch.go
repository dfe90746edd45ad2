package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pkoval/provenly/internal/fetch"
	"github.com/pkoval/provenly/internal/model"
)

// TextFetcher fetches one URL and reduces it to plain text.
type TextFetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// FetchJob downloads one source URL.
type FetchJob struct {
	Index   int // Position in the requested URL list
	URL     string
	Fetcher TextFetcher
	Limiter *Limiter
}

// Execute fetches the URL, honoring the per-host rate limit.
func (j *FetchJob) Execute(ctx context.Context) Result {
	result := &FetchResult{Index: j.Index, URL: j.URL}

	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.URL); err != nil {
			result.Err = fmt.Errorf("rate limit: %w", err)
			return result
		}
	}

	fetched, err := j.Fetcher.Fetch(ctx, j.URL)
	if err != nil {
		result.Err = err
		return result
	}
	result.Subject = fetched.Subject
	result.Text = fetched.Text
	return result
}

// FetchResult is the outcome of one FetchJob.
type FetchResult struct {
	Index   int
	URL     string
	Subject string
	Text    string
	Err     error
}

// GetError returns the fetch error, if any.
func (r *FetchResult) GetError() error {
	return r.Err
}

// SourceLoader turns lists of URLs into sources by fetching them
// concurrently.
type SourceLoader struct {
	fetcher     TextFetcher
	limiter     *Limiter
	concurrency int
}

// NewSourceLoader creates a loader with the given concurrency.
func NewSourceLoader(fetcher TextFetcher, limiter *Limiter, concurrency int) *SourceLoader {
	return &SourceLoader{
		fetcher:     fetcher,
		limiter:     limiter,
		concurrency: concurrency,
	}
}

// LoadURLs fetches every URL concurrently and returns one source per
// URL, in input order. A failed fetch still yields its source with empty
// text — the matcher treats those as contributing no evidence — and the
// error is returned alongside, keyed by URL.
func (l *SourceLoader) LoadURLs(ctx context.Context, urls []string) ([]model.Source, map[string]error) {
	if len(urls) == 0 {
		return nil, nil
	}

	pool := NewPool(l.concurrency)
	pool.Start()
	for i, url := range urls {
		pool.Submit(&FetchJob{
			Index:   i,
			URL:     url,
			Fetcher: l.fetcher,
			Limiter: l.limiter,
		})
	}
	results := pool.Wait()

	fetched := make([]*FetchResult, 0, len(results))
	for _, r := range results {
		fetched = append(fetched, r.(*FetchResult))
	}
	sort.Slice(fetched, func(i, j int) bool { return fetched[i].Index < fetched[j].Index })

	errs := make(map[string]error)
	sources := make([]model.Source, 0, len(fetched))
	for _, r := range fetched {
		label := r.Subject
		if label == "" {
			label = r.URL
		}
		sources = append(sources, model.Source{
			ID:    uuid.New().String(),
			Label: label,
			Text:  r.Text,
			URL:   r.URL,
		})
		if r.Err != nil {
			errs[r.URL] = r.Err
		}
	}
	if len(errs) == 0 {
		errs = nil
	}
	return sources, errs
}

// ReadURLsFromFile reads URLs from a file, one per line. Empty lines and
// "#" comments are skipped; duplicates are dropped.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return urls, nil
}
