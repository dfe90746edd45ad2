package export

import (
	"encoding/json"
	"io"

	"github.com/pkoval/provenly/internal/model"
)

// WriteJSON writes the structured provenance document.
func (r *Renderer) WriteJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// RenderJSON writes the structured provenance document to a file.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	return r.renderToFile(path, func(w io.Writer) error {
		return r.WriteJSON(w, report)
	})
}
