package attrib

import (
	"strings"
	"unicode/utf8"

	"github.com/pkoval/provenly/internal/model"
)

const (
	// snippetWindow is the amount of surrounding context, in bytes,
	// included on each side of a matched span.
	snippetWindow = 60

	// minSentenceLen is the shortest fragment sentence worth searching
	// on its own. Shorter sentences produce false-positive matches too
	// easily.
	minSentenceLen = 30
)

// FindMatches searches every source for evidence supporting the given
// fragment. Per source it first tries the whole fragment as a
// case-insensitive substring, then falls back to the fragment's longer
// sentences one by one. Each source contributes at most one Match; the
// result preserves source order. A source with empty text simply
// contributes nothing.
func FindMatches(fragment string, sources []model.Source) []model.Match {
	matches := make([]model.Match, 0, len(sources))
	if strings.TrimSpace(fragment) == "" {
		return matches
	}

	needle := strings.ToLower(fragment)
	var sentences []string // Lazily built; most fragments match directly or not at all.
	sentencesBuilt := false

	for _, src := range sources {
		if src.Text == "" {
			continue
		}
		haystack := strings.ToLower(src.Text)

		if i := strings.Index(haystack, needle); i >= 0 {
			matches = append(matches, model.Match{
				SourceID: src.ID,
				Snippet:  windowSnippet(src.Text, i, i+len(needle)),
			})
			continue
		}

		if !sentencesBuilt {
			sentences = searchableSentences(fragment)
			sentencesBuilt = true
		}
		for _, sentence := range sentences {
			if i := strings.Index(haystack, strings.ToLower(sentence)); i >= 0 {
				matches = append(matches, model.Match{
					SourceID: src.ID,
					Snippet:  windowSnippet(src.Text, i, i+len(sentence)),
				})
				break
			}
		}
	}

	return matches
}

// searchableSentences splits a fragment into sentences and keeps those
// long enough to search for individually.
func searchableSentences(fragment string) []string {
	var keep []string
	for _, s := range splitSentences(fragment) {
		if len(s) >= minSentenceLen {
			keep = append(keep, s)
		}
	}
	return keep
}

// windowSnippet slices a source text around the matched span [start,end),
// widened by snippetWindow on each side, and collapses whitespace for
// display. Ellipsis markers are added only when the slice stops short of
// the text boundary.
func windowSnippet(text string, start, end int) string {
	from := start - snippetWindow
	if from < 0 {
		from = 0
	}
	to := end + snippetWindow
	if to > len(text) {
		to = len(text)
	}

	// Widen to rune boundaries so the window never splits a multibyte
	// character.
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}

	snippet := collapseWhitespace(text[from:to])
	if from > 0 {
		snippet = "..." + snippet
	}
	if to < len(text) {
		snippet += "..."
	}
	return snippet
}
