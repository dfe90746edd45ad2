package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkoval/provenly/internal/model"
)

// Renderer writes reports as markdown, JSON, and HTML artifacts.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// WriteMarkdown writes the plain-text/markdown artifact: the draft
// followed by a per-paragraph provenance appendix and a quote
// verification section.
func (r *Renderer) WriteMarkdown(w io.Writer, report *model.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Subject)
	if report.Draft != "" {
		b.WriteString(report.Draft)
		b.WriteString("\n\n")
	}

	if len(report.Provenance.Paragraphs) > 0 {
		b.WriteString("## Paragraph provenance\n\n")
		for _, p := range report.Provenance.Paragraphs {
			fmt.Fprintf(&b, "### Paragraph %d\n\n", p.Index)
			if len(p.Sources) == 0 {
				b.WriteString("No supporting source found.\n\n")
				continue
			}
			for _, m := range p.Sources {
				fmt.Fprintf(&b, "- **%s**: %s\n", r.sourceLabel(report, m.SourceID), m.Snippet)
			}
			b.WriteString("\n")
		}
	}

	if len(report.Provenance.Quotes) > 0 {
		b.WriteString("## Quote verification\n\n")
		for _, q := range report.Provenance.Quotes {
			fmt.Fprintf(&b, "> %s\n\n", q.Quote)
			if len(q.Matches) == 0 {
				b.WriteString("Unverified: no source contains this quotation.\n\n")
				continue
			}
			for _, m := range q.Matches {
				fmt.Fprintf(&b, "- **%s**: %s\n", r.sourceLabel(report, m.SourceID), m.Snippet)
			}
			b.WriteString("\n")
		}
	}

	if len(report.Keypoints) > 0 {
		fmt.Fprintf(&b, "## Keypoints (%s)\n\n", report.KeypointOrigin)
		for _, kp := range report.Keypoints {
			fmt.Fprintf(&b, "%s. %s\n", strings.TrimPrefix(kp.ID, "kp-"), kp.Text)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by provenly on %s. Evidence matching is heuristic: a snippet shows where a source overlaps the draft, not that the draft is correct.\n",
			report.GeneratedAt.Format("2006-01-02 15:04 UTC"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderMarkdown writes the markdown artifact to a file.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return r.renderToFile(path, func(w io.Writer) error {
		return r.WriteMarkdown(w, report)
	})
}

// WriteSummary prints a short run summary for terminal output.
func (r *Renderer) WriteSummary(w io.Writer, report *model.Report) {
	paragraphs := len(report.Provenance.Paragraphs)
	quotes := len(report.Provenance.Quotes)
	fmt.Fprintf(w, "%s: %d/%d paragraphs supported, %d/%d quotes verified\n",
		report.Subject,
		report.MatchedParagraphs(), paragraphs,
		report.MatchedQuotes(), quotes)
}

// sourceLabel resolves a source id to its label, falling back to the id.
func (r *Renderer) sourceLabel(report *model.Report, sourceID string) string {
	for _, s := range report.Sources {
		if s.ID == sourceID {
			if s.Label != "" {
				return s.Label
			}
			break
		}
	}
	return sourceID
}

func (r *Renderer) renderToFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	return write(f)
}
