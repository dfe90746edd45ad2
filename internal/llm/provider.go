package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Provider defines the interface for generative backends. Backends are
// external, fallible collaborators: callers must treat every error as a
// signal to take the heuristic fallback, never as fatal.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends one prompt and returns the raw completion text.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one completion call.
type CompletionRequest struct {
	// System is the system instruction (optional).
	System string

	// Prompt is the user prompt.
	Prompt string

	// Model overrides the configured model (provider-specific).
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// CompletionResponse contains a provider's output.
type CompletionResponse struct {
	// Text is the raw completion.
	Text string

	// Model is the model that generated the response.
	Model string

	// TokensUsed tracks token consumption where the provider reports it.
	TokensUsed int
}

// Config holds generative backend configuration.
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled).
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey for OpenAI/Anthropic.
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama).
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// DefaultConfig returns sensible defaults. The backend is disabled until
// a provider is named explicitly.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// keypointsSystem instructs the backend to stay inside the transcript.
const keypointsSystem = "You extract discussion points from interview transcripts. " +
	"Use only what the transcript says; never invent facts or numbers."

// BuildKeypointsPrompt constructs the prompt for generative keypoint
// extraction. The response format is one point per line so the output
// parses without JSON mode support on any backend.
func BuildKeypointsPrompt(transcript string, n int) string {
	return fmt.Sprintf(`Extract the %d most substantive discussion points from this transcript.

Rules:
1. Each point must be grounded in the transcript text - no outside knowledge.
2. One point per line, numbered "1." through "%d.".
3. Keep each point under 300 characters.
4. Prefer points about the product, company, founders, market, and funding.

Transcript:
%s`, n, n, transcript)
}

// keypointLineRe strips list markers ("1.", "-", "*") from a response line.
var keypointLineRe = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*])\s*`)

// ParseKeypointLines turns a line-per-point completion into plain point
// texts, dropping markers and empty lines.
func ParseKeypointLines(text string) []string {
	var points []string
	for _, line := range strings.Split(text, "\n") {
		line = keypointLineRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			points = append(points, line)
		}
	}
	return points
}
