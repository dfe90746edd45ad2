package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pkoval/provenly/internal/fetch"
)

// stubFetcher returns canned text per URL.
type stubFetcher struct {
	texts map[string]string
	fail  map[string]bool
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (*fetch.Result, error) {
	if s.fail[url] {
		return nil, errors.New("fetch failed")
	}
	return &fetch.Result{
		Text:     s.texts[url],
		Subject:  strings.TrimPrefix(url, "https://example.com/"),
		FinalURL: url,
	}, nil
}

func TestSourceLoader_PreservesInputOrder(t *testing.T) {
	fetcher := &stubFetcher{texts: map[string]string{
		"https://example.com/a": "text a",
		"https://example.com/b": "text b",
		"https://example.com/c": "text c",
	}}
	loader := NewSourceLoader(fetcher, nil, 3)

	urls := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
	sources, errs := loader.LoadURLs(context.Background(), urls)
	if errs != nil {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	var got []string
	for _, s := range sources {
		got = append(got, s.Text)
	}
	if !reflect.DeepEqual(got, []string{"text a", "text b", "text c"}) {
		t.Errorf("Expected sources in input order, got %v", got)
	}
	for _, s := range sources {
		if s.ID == "" {
			t.Error("Expected every source to get an id")
		}
	}
}

func TestSourceLoader_FailedFetchYieldsEmptySource(t *testing.T) {
	fetcher := &stubFetcher{
		texts: map[string]string{"https://example.com/ok": "fine"},
		fail:  map[string]bool{"https://example.com/bad": true},
	}
	loader := NewSourceLoader(fetcher, nil, 2)

	sources, errs := loader.LoadURLs(context.Background(),
		[]string{"https://example.com/bad", "https://example.com/ok"})

	if len(sources) != 2 {
		t.Fatalf("Expected a source per URL, got %d", len(sources))
	}
	if sources[0].Text != "" {
		t.Errorf("Expected empty text for failed fetch, got %q", sources[0].Text)
	}
	if sources[1].Text != "fine" {
		t.Errorf("Expected ok source text, got %q", sources[1].Text)
	}
	if errs == nil || errs["https://example.com/bad"] == nil {
		t.Errorf("Expected error recorded for failed URL, got %v", errs)
	}
}

func TestSourceLoader_Empty(t *testing.T) {
	loader := NewSourceLoader(&stubFetcher{}, nil, 2)
	sources, errs := loader.LoadURLs(context.Background(), nil)
	if sources != nil || errs != nil {
		t.Errorf("Expected nil results for no URLs, got %v %v", sources, errs)
	}
}

func TestReadURLsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "https://example.com/a\n# comment\n\nhttps://example.com/b\nhttps://example.com/a\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	urls, err := ReadURLsFromFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []string{"https://example.com/a", "https://example.com/b"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("Expected %v, got %v", want, urls)
	}
}
