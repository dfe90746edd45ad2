package llm

import (
	"context"
	"fmt"

	"github.com/pkoval/provenly/internal/attrib"
	"github.com/pkoval/provenly/internal/model"
)

// Generator wraps an optional generative backend with the heuristic
// keypoint scorer as its designated fallback. Callers always get a
// result; the origin field says which path produced it.
type Generator struct {
	provider  Provider
	extractor *attrib.KeypointExtractor
}

// NewGenerator creates a Generator. An error from the factory (bad
// provider name, missing key) is returned so the CLI can report it; a
// nil provider simply means the heuristic path is always taken.
func NewGenerator(config Config) (*Generator, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Generator{
		provider:  provider,
		extractor: attrib.NewKeypointExtractor(),
	}, nil
}

// NewGeneratorWithProvider builds a Generator around an existing
// provider. Used by tests and embedding callers.
func NewGeneratorWithProvider(provider Provider) *Generator {
	return &Generator{
		provider:  provider,
		extractor: attrib.NewKeypointExtractor(),
	}
}

// IsGenerative reports whether a backend is configured.
func (g *Generator) IsGenerative() bool {
	return g.provider != nil
}

// ProviderName returns the backend name, or "" when disabled.
func (g *Generator) ProviderName() string {
	if g.provider == nil {
		return ""
	}
	return g.provider.Name()
}

// Keypoints extracts up to n discussion points from a transcript. The
// generative backend is tried first when configured; on unavailability,
// error, or empty output the heuristic scorer answers instead. The
// returned origin tells the two apart — heuristic results must never be
// presented as generative-quality.
func (g *Generator) Keypoints(ctx context.Context, transcript string, n int) ([]model.Keypoint, model.KeypointOrigin) {
	if g.provider != nil && g.provider.IsAvailable(ctx) {
		if points, err := g.generativeKeypoints(ctx, transcript, n); err == nil && len(points) > 0 {
			return points, model.OriginGenerative
		}
	}
	return g.extractor.Extract(transcript, n), model.OriginHeuristic
}

// generativeKeypoints runs the backend and parses its line-per-point
// response.
func (g *Generator) generativeKeypoints(ctx context.Context, transcript string, n int) ([]model.Keypoint, error) {
	resp, err := g.provider.Complete(ctx, CompletionRequest{
		System: keypointsSystem,
		Prompt: BuildKeypointsPrompt(transcript, n),
	})
	if err != nil {
		return nil, err
	}

	lines := ParseKeypointLines(resp.Text)
	if len(lines) > n {
		lines = lines[:n]
	}
	keypoints := make([]model.Keypoint, 0, len(lines))
	for i, line := range lines {
		keypoints = append(keypoints, model.Keypoint{
			ID:   fmt.Sprintf("kp-%d", i+1),
			Text: line,
		})
	}
	return keypoints, nil
}
