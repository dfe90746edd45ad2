package model

// Source is a reference document used as evidence for draft claims.
// The engine only reads sources; the owning project context creates them.
type Source struct {
	ID    string `json:"id"`              // Opaque identifier
	Label string `json:"label"`           // Title or URL
	Text  string `json:"text,omitempty"`  // Plain text content (may be empty on failed fetch)
	URL   string `json:"url,omitempty"`   // Origin URL when fetched remotely
}

// Match is an evidence pointer from a fragment of draft text to a
// verbatim snippet within one source. A Match never owns its Source.
type Match struct {
	SourceID string `json:"sourceId"`
	Snippet  string `json:"snippet"`
}

// Paragraph is one contiguous block of draft text together with the
// evidence found for it. Indices are contiguous, zero-based, and follow
// original draft order.
type Paragraph struct {
	Index   int     `json:"index"`
	Text    string  `json:"text"`
	Sources []Match `json:"sources"`
}

// QuoteRecord is a detected quotation from the draft together with its
// evidence matches. Quote texts are unique within one engine run.
type QuoteRecord struct {
	Quote   string  `json:"quoteText"`
	Matches []Match `json:"matches"`
}

// Keypoint is a heuristically-selected candidate discussion point
// extracted from a transcript. Produced only by the fallback path.
type Keypoint struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Provenance maps draft content to supporting source evidence.
// Paragraphs and quotes are independent views over the same draft and
// are deliberately not cross-linked.
type Provenance struct {
	Paragraphs []Paragraph   `json:"paragraphs"`
	Quotes     []QuoteRecord `json:"quotes"`
}
