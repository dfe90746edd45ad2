package attrib

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/pkoval/provenly/internal/model"
)

// maxKeypointLen caps the text carried by one keypoint.
const maxKeypointLen = 300

// KeypointExtractor ranks transcript sentences as candidate discussion
// points. It is a coarse salience proxy (longer + keyword-bearing ≈ more
// informative), used only when no generative backend is available — a
// degraded substitute, not an equivalent.
type KeypointExtractor struct {
	topical *regexp.Regexp
}

// NewKeypointExtractor creates an extractor with the built-in topical
// keyword pattern.
func NewKeypointExtractor() *KeypointExtractor {
	return &KeypointExtractor{
		topical: regexp.MustCompile(`(?i)\b(product|company|founder|launch\w*|market\w*|customer|revenue|funding|invest\w*|growth|team|partner\w*|acquisition|strategy|mission)\b`),
	}
}

// Extract returns up to n keypoints from a transcript, ordered by
// descending heuristic score. Each sentence scores its own length,
// doubled when it mentions a topical keyword. Ties keep original
// transcript order.
func (e *KeypointExtractor) Extract(transcript string, n int) []model.Keypoint {
	if n <= 0 {
		return nil
	}

	sentences := splitSentences(transcript)
	type scored struct {
		text  string
		score int
	}
	candidates := make([]scored, 0, len(sentences))
	for _, s := range sentences {
		multiplier := 1
		if e.topical.MatchString(s) {
			multiplier = 2
		}
		candidates = append(candidates, scored{text: s, score: len(s) * multiplier})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	keypoints := make([]model.Keypoint, 0, len(candidates))
	for i, c := range candidates {
		keypoints = append(keypoints, model.Keypoint{
			ID:   fmt.Sprintf("kp-%d", i+1),
			Text: truncate(c.text, maxKeypointLen),
		})
	}
	return keypoints
}

// truncate shortens text to at most max characters without splitting a
// multibyte character.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
