package attrib

import (
	"regexp"
	"strings"
)

const (
	// minQuoteLen filters out short quoted spans ("yes", single words)
	// that are too small to verify meaningfully.
	minQuoteLen = 8

	// maxQuoteLen stops a stray quotation mark from swallowing the rest
	// of the draft.
	maxQuoteLen = 500
)

// inlineQuoteRe matches a double-quoted span. The character class cannot
// cross a closing mark, so each span ends at the first candidate quote.
var inlineQuoteRe = regexp.MustCompile(`"([^"]{8,500})"`)

// DetectQuotes extracts the distinct quoted spans from a draft: inline
// double-quoted text and block-quote runs (lines starting with ">").
// Results are deduplicated by exact trimmed equality, keeping first
// occurrence order, inline spans before block quotes.
func DetectQuotes(draft string) []string {
	var quotes []string
	for _, m := range inlineQuoteRe.FindAllStringSubmatch(draft, -1) {
		quotes = append(quotes, strings.TrimSpace(m[1]))
	}
	quotes = append(quotes, blockQuotes(draft)...)
	return dedupeQuotes(quotes)
}

// blockQuotes joins consecutive ">"-prefixed lines into single quote
// strings. A block ends at the first unmarked line or at end of input.
func blockQuotes(draft string) []string {
	var (
		quotes  []string
		current []string
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		joined := strings.TrimSpace(strings.Join(current, " "))
		if len(joined) >= minQuoteLen {
			quotes = append(quotes, joined)
		}
		current = nil
	}

	for _, line := range strings.Split(draft, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, ">") {
			flush()
			continue
		}
		content := strings.TrimPrefix(trimmed, ">")
		content = strings.TrimPrefix(content, " ")
		if content = strings.TrimSpace(content); content != "" {
			current = append(current, content)
		}
	}
	flush()

	return quotes
}

// dedupeQuotes removes duplicate quote strings, preserving first
// occurrence order. Comparison is exact; near-duplicates stay separate.
func dedupeQuotes(quotes []string) []string {
	seen := make(map[string]bool)
	var unique []string
	for _, q := range quotes {
		if !seen[q] {
			seen[q] = true
			unique = append(unique, q)
		}
	}
	return unique
}
