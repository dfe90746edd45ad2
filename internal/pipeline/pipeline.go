package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkoval/provenly/internal/attrib"
	"github.com/pkoval/provenly/internal/export"
	"github.com/pkoval/provenly/internal/fetch"
	"github.com/pkoval/provenly/internal/llm"
	"github.com/pkoval/provenly/internal/model"
	"github.com/pkoval/provenly/internal/store"
	"github.com/pkoval/provenly/internal/worker"
)

// Pipeline orchestrates the complete attribution process.
type Pipeline struct {
	fetcher   *fetch.Fetcher
	loader    *worker.SourceLoader
	generator *llm.Generator
	store     store.Store
	renderer  *export.Renderer
	config    *model.Config
}

// NewPipeline creates a pipeline with the given configuration. The
// store is used for project persistence and for caching fetched source
// content; it may be nil when neither is needed.
func NewPipeline(cfg *model.Config, st store.Store) *Pipeline {
	generator, err := llm.NewGenerator(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		generator = llm.NewGeneratorWithProvider(nil)
	}

	fetcher := fetch.NewFetcher(cfg.HTTP)
	var textFetcher worker.TextFetcher = fetcher
	if st != nil && cfg.Cache.Enabled {
		textFetcher = &cachingFetcher{
			inner: fetcher,
			store: st,
			ttl:   cfg.Cache.TTL,
		}
	}

	limiter := worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst)
	loader := worker.NewSourceLoader(textFetcher, limiter, cfg.Concurrency.FetchWorkers)

	return &Pipeline{
		fetcher:   fetcher,
		loader:    loader,
		generator: generator,
		store:     st,
		renderer:  export.NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}
}

// AttributeDraft runs paragraph and quote attribution of a draft
// against the given sources and builds a report.
func (p *Pipeline) AttributeDraft(ctx context.Context, subject, draft string, sources []model.Source) *model.Report {
	return &model.Report{
		Subject:     subject,
		GeneratedAt: time.Now().UTC(),
		Draft:       draft,
		Sources:     sources,
		Provenance:  *attrib.Assemble(draft, sources),
	}
}

// AttributeProject loads a stored project and attributes its draft
// against its sources.
func (p *Pipeline) AttributeProject(ctx context.Context, id string) (*model.Report, error) {
	if p.store == nil {
		return nil, fmt.Errorf("no project store configured")
	}
	project, err := p.store.GetProject(id)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", id, err)
	}
	if project.Draft == "" {
		return nil, fmt.Errorf("project %s has no draft", id)
	}
	return p.AttributeDraft(ctx, project.Name, project.Draft, project.Sources), nil
}

// LoadSources fetches the given URLs concurrently and returns them as
// sources in input order. Per-URL fetch failures are reported in the
// returned map; failed URLs still yield a source with empty text.
func (p *Pipeline) LoadSources(ctx context.Context, urls []string) ([]model.Source, map[string]error) {
	return p.loader.LoadURLs(ctx, urls)
}

// Keypoints extracts up to n keypoints from a transcript, using the
// generative backend when one is configured and falling back to the
// heuristic scorer.
func (p *Pipeline) Keypoints(ctx context.Context, transcript string, n int) ([]model.Keypoint, model.KeypointOrigin) {
	return p.generator.Keypoints(ctx, transcript, n)
}

// GeneratorName returns the active LLM provider name, or "" when
// keypoint extraction is heuristic-only.
func (p *Pipeline) GeneratorName() string {
	if !p.generator.IsGenerative() {
		return ""
	}
	return p.generator.ProviderName()
}

// RenderReport renders the report to the requested outputs and prints
// a one-line summary to stdout.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath, htmlPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if htmlPath != "" {
		if err := p.renderer.RenderHTML(report, htmlPath); err != nil {
			return fmt.Errorf("render HTML: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote HTML: %s\n", htmlPath)
		}
	}

	p.renderer.WriteSummary(os.Stdout, report)
	return nil
}
