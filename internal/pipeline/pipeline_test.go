package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkoval/provenly/internal/model"
	"github.com/pkoval/provenly/internal/store"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.RespectRobots = false
	cfg.LLM.Provider = ""
	return cfg
}

func TestAttributeDraft(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	sources := []model.Source{
		{ID: "s1", Label: "Press release", Text: "The rocket launched at dawn over the desert."},
	}
	draft := "The rocket launched at dawn.\n\nIt was quiet."

	report := p.AttributeDraft(context.Background(), "Acme", draft, sources)

	if report.Subject != "Acme" {
		t.Errorf("subject = %q", report.Subject)
	}
	if len(report.Provenance.Paragraphs) != 2 {
		t.Fatalf("paragraphs = %d, want 2", len(report.Provenance.Paragraphs))
	}
	if len(report.Provenance.Paragraphs[0].Sources) != 1 {
		t.Errorf("first paragraph should match the source")
	}
	if len(report.Provenance.Paragraphs[1].Sources) != 0 {
		t.Errorf("second paragraph should not match")
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestAttributeProject(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	project := &model.Project{
		ID:    "p1",
		Name:  "Acme",
		Draft: "The rocket launched at dawn.",
		Sources: []model.Source{
			{ID: "s1", Label: "Press release", Text: "The rocket launched at dawn over the desert."},
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := st.PutProject(project); err != nil {
		t.Fatalf("PutProject: %v", err)
	}

	p := NewPipeline(testConfig(), st)

	report, err := p.AttributeProject(context.Background(), "p1")
	if err != nil {
		t.Fatalf("AttributeProject: %v", err)
	}
	if report.Subject != "Acme" {
		t.Errorf("subject = %q", report.Subject)
	}
	if report.MatchedParagraphs() != 1 {
		t.Errorf("matched paragraphs = %d, want 1", report.MatchedParagraphs())
	}
}

func TestAttributeProjectMissing(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	p := NewPipeline(testConfig(), st)
	if _, err := p.AttributeProject(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for missing project")
	}
}

func TestAttributeProjectWithoutDraft(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	if err := st.PutProject(&model.Project{ID: "p1", Name: "Empty"}); err != nil {
		t.Fatalf("PutProject: %v", err)
	}

	p := NewPipeline(testConfig(), st)
	if _, err := p.AttributeProject(context.Background(), "p1"); err == nil {
		t.Fatal("expected error for draft-less project")
	}
}

func TestKeypointsHeuristicWithoutProvider(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	kps, origin := p.Keypoints(context.Background(), "Our product reached new customers this quarter. It rained.", 1)
	if origin != model.OriginHeuristic {
		t.Errorf("origin = %q, want heuristic", origin)
	}
	if len(kps) != 1 {
		t.Fatalf("keypoints = %d, want 1", len(kps))
	}
	if !strings.Contains(kps[0].Text, "product") {
		t.Errorf("topical sentence should win, got %q", kps[0].Text)
	}
	if p.GeneratorName() != "" {
		t.Errorf("GeneratorName = %q, want empty", p.GeneratorName())
	}
}

func TestLoadSourcesUsesBlobCache(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("cached body"))
	}))
	defer srv.Close()

	st := store.NewMemoryStore()
	defer st.Close()

	cfg := testConfig()
	cfg.Cache.Enabled = true
	p := NewPipeline(cfg, st)

	url := srv.URL + "/article"
	for i := 0; i < 2; i++ {
		sources, errs := p.LoadSources(context.Background(), []string{url})
		if len(errs) != 0 {
			t.Fatalf("run %d: errs = %v", i, errs)
		}
		if len(sources) != 1 || sources[0].Text != "cached body" {
			t.Fatalf("run %d: sources = %+v", i, sources)
		}
	}

	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (second load should come from cache)", hits)
	}
}

func TestLoadSourcesPreservesOrderAndErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/missing") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("body of " + r.URL.Path))
	}))
	defer srv.Close()

	p := NewPipeline(testConfig(), nil)

	urls := []string{srv.URL + "/a", srv.URL + "/missing", srv.URL + "/b"}
	sources, errs := p.LoadSources(context.Background(), urls)

	if len(sources) != 3 {
		t.Fatalf("sources = %d, want 3", len(sources))
	}
	if sources[0].Text != "body of /a" || sources[2].Text != "body of /b" {
		t.Errorf("sources out of order: %+v", sources)
	}
	if sources[1].Text != "" {
		t.Errorf("failed URL should yield empty text, got %q", sources[1].Text)
	}
	if _, ok := errs[urls[1]]; !ok {
		t.Errorf("expected error recorded for %s", urls[1])
	}
}
