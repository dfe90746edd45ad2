package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/pkoval/provenly/internal/model"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// WriteHTML converts the markdown artifact into a standalone HTML page.
func (r *Renderer) WriteHTML(w io.Writer, report *model.Report) error {
	var md bytes.Buffer
	if err := r.WriteMarkdown(&md, report); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := markdownEngine.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", report.Subject); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// RenderHTML writes the HTML artifact to a file.
func (r *Renderer) RenderHTML(report *model.Report, path string) error {
	return r.renderToFile(path, func(w io.Writer) error {
		return r.WriteHTML(w, report)
	})
}
