package attrib

import (
	"regexp"
	"strings"
)

// paragraphSepRe matches a blank-line separator: a whitespace run that
// contains at least two consecutive newline characters.
var paragraphSepRe = regexp.MustCompile(`\n[ \t\r]*\n\s*`)

// SplitParagraphs splits a draft body into its paragraph units. Paragraphs
// are separated by blank lines, trimmed, and empty ones are dropped. The
// position of a paragraph in the returned slice is its stable index.
func SplitParagraphs(draft string) []string {
	var paragraphs []string
	for _, part := range paragraphSepRe.Split(draft, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}
