package attrib

import (
	"regexp"
	"strings"
)

// sentenceEndRe matches sentence-terminal punctuation followed by
// whitespace. Splitting here rather than on bare punctuation keeps
// abbreviations and decimals inside one sentence most of the time.
var sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)

// splitSentences splits text into trimmed, non-empty sentences. The
// terminal punctuation of each sentence is retained.
func splitSentences(text string) []string {
	var sentences []string
	rest := text
	for {
		loc := sentenceEndRe.FindStringIndex(rest)
		if loc == nil {
			break
		}
		// Keep the punctuation character, drop the whitespace.
		sentence := strings.TrimSpace(rest[:loc[0]+1])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		rest = rest[loc[1]:]
	}
	if tail := strings.TrimSpace(rest); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// whitespaceRe matches internal whitespace runs for collapsing.
var whitespaceRe = regexp.MustCompile(`\s+`)

// collapseWhitespace trims text and folds internal whitespace runs into
// single spaces.
func collapseWhitespace(text string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}
