package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pkoval/provenly/internal/model"
	"github.com/pkoval/provenly/internal/pipeline"
	"github.com/pkoval/provenly/internal/worker"
)

// configureLLM wires provider selection and API keys from the
// environment into the configuration.
func configureLLM(cfg *model.Config, provider, modelName string) error {
	cfg.LLM.Provider = provider
	cfg.LLM.Model = modelName

	switch provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// isURL reports whether a source argument refers to a remote resource.
func isURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

// sourceFromFile reads a local file into a source. The argument may be
// "label=path" to set an explicit label; otherwise the file name
// without extension is used.
func sourceFromFile(arg string) (model.Source, error) {
	label := ""
	path := arg
	if idx := strings.Index(arg, "="); idx > 0 && !isURL(arg) {
		label = arg[:idx]
		path = arg[idx+1:]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Source{}, fmt.Errorf("read source %s: %w", path, err)
	}
	if label == "" {
		base := filepath.Base(path)
		label = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return model.Source{
		ID:    uuid.New().String(),
		Label: label,
		Text:  string(data),
	}, nil
}

// collectSources resolves a mix of file paths and URLs into sources.
// Files are read locally; URLs are fetched concurrently through the
// pipeline, preserving argument order within each group.
func collectSources(ctx context.Context, p *pipeline.Pipeline, args []string, sourcesFile string) ([]model.Source, error) {
	if sourcesFile != "" {
		listed, err := worker.ReadURLsFromFile(sourcesFile)
		if err != nil {
			return nil, fmt.Errorf("read sources file: %w", err)
		}
		args = append(args, listed...)
	}

	var sources []model.Source
	var urls []string
	for _, arg := range args {
		if isURL(arg) {
			urls = append(urls, arg)
			continue
		}
		src, err := sourceFromFile(arg)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	if len(urls) > 0 {
		fetched, errs := p.LoadSources(ctx, urls)
		for url, fetchErr := range errs {
			fmt.Fprintf(os.Stderr, "Warning: fetch %s: %v\n", url, fetchErr)
		}
		sources = append(sources, fetched...)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources given: pass files, URLs, or --sources-file")
	}
	return sources, nil
}
