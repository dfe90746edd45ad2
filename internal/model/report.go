package model

import "time"

// KeypointOrigin records which path produced a report's keypoints.
type KeypointOrigin string

const (
	OriginGenerative KeypointOrigin = "generative" // External generative backend
	OriginHeuristic  KeypointOrigin = "heuristic"  // Length-and-keyword fallback scorer
)

// Report is the complete output of one attribution run. It carries the
// raw draft alongside the assembled provenance so exporters can render
// both artifacts without re-reading inputs.
type Report struct {
	Subject        string         `json:"subject"`                   // Short label for the draft (file name or project name)
	GeneratedAt    time.Time      `json:"generated_at"`              // When the run completed
	Draft          string         `json:"draft,omitempty"`           // Raw draft text
	Sources        []Source       `json:"sources,omitempty"`         // Sources consulted, input order
	Provenance     Provenance     `json:"provenance"`                // Paragraph and quote evidence
	Keypoints      []Keypoint     `json:"keypoints,omitempty"`       // Present only on the keypoints path
	KeypointOrigin KeypointOrigin `json:"keypoint_origin,omitempty"` // Which path produced the keypoints
}

// SourceIDs returns the ids of all sources consulted, in input order.
func (r *Report) SourceIDs() []string {
	ids := make([]string, 0, len(r.Sources))
	for _, s := range r.Sources {
		ids = append(ids, s.ID)
	}
	return ids
}

// MatchedParagraphs counts paragraphs with at least one evidence match.
func (r *Report) MatchedParagraphs() int {
	n := 0
	for _, p := range r.Provenance.Paragraphs {
		if len(p.Sources) > 0 {
			n++
		}
	}
	return n
}

// MatchedQuotes counts detected quotes with at least one evidence match.
func (r *Report) MatchedQuotes() int {
	n := 0
	for _, q := range r.Provenance.Quotes {
		if len(q.Matches) > 0 {
			n++
		}
	}
	return n
}
