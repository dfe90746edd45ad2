package attrib

import (
	"strings"
	"testing"
)

func TestKeypointExtractor_KeywordOutranksSimilarLength(t *testing.T) {
	extractor := NewKeypointExtractor()

	keypoints := extractor.Extract("Our product launched. It rained yesterday.", 1)
	if len(keypoints) != 1 {
		t.Fatalf("Expected 1 keypoint, got %d", len(keypoints))
	}
	if keypoints[0].Text != "Our product launched." {
		t.Errorf("Expected keyword sentence to win, got %q", keypoints[0].Text)
	}
}

func TestKeypointExtractor_BoundAndOrdering(t *testing.T) {
	extractor := NewKeypointExtractor()

	transcript := "The company raised a large funding round from three investors last spring. " +
		"Short filler. " +
		"Another long sentence about the weather that says nothing topical whatsoever here. " +
		"We grew the team from five to forty people. " +
		"More filler text. " +
		"Our market expanded into two new regions this year. " +
		"Final filler."

	keypoints := extractor.Extract(transcript, 5)
	if len(keypoints) > 5 {
		t.Fatalf("Expected at most 5 keypoints, got %d", len(keypoints))
	}
	if len(keypoints) == 0 {
		t.Fatal("Expected some keypoints")
	}

	// Scores must be non-increasing.
	scores := make([]int, len(keypoints))
	for i, kp := range keypoints {
		scores[i] = extractor.scoreOf(kp.Text)
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[i-1] {
			t.Errorf("Expected non-increasing scores, got %v", scores)
		}
	}

	// Sequential ids.
	for i, kp := range keypoints {
		want := "kp-" + string(rune('1'+i))
		if kp.ID != want {
			t.Errorf("Expected id %s, got %s", want, kp.ID)
		}
	}
}

func TestKeypointExtractor_StableOnTies(t *testing.T) {
	extractor := NewKeypointExtractor()

	// Two equal-length, equally non-topical sentences must keep their
	// original order.
	transcript := "Aaaa bbbb cccc dddd eeee. Zzzz yyyy xxxx wwww vvvv."
	keypoints := extractor.Extract(transcript, 2)
	if len(keypoints) != 2 {
		t.Fatalf("Expected 2 keypoints, got %d", len(keypoints))
	}
	if keypoints[0].Text != "Aaaa bbbb cccc dddd eeee." {
		t.Errorf("Expected original order on ties, got %q first", keypoints[0].Text)
	}
}

func TestKeypointExtractor_TruncatesLongSentences(t *testing.T) {
	extractor := NewKeypointExtractor()

	long := strings.Repeat("word ", 100) + "end."
	keypoints := extractor.Extract(long, 1)
	if len(keypoints) != 1 {
		t.Fatalf("Expected 1 keypoint, got %d", len(keypoints))
	}
	if n := len([]rune(keypoints[0].Text)); n > 300 {
		t.Errorf("Expected keypoint text capped at 300 chars, got %d", n)
	}
}

func TestKeypointExtractor_ZeroAndNegativeN(t *testing.T) {
	extractor := NewKeypointExtractor()

	if got := extractor.Extract("Some sentence here.", 0); len(got) != 0 {
		t.Errorf("Expected no keypoints for n=0, got %v", got)
	}
	if got := extractor.Extract("Some sentence here.", -3); len(got) != 0 {
		t.Errorf("Expected no keypoints for negative n, got %v", got)
	}
}

func TestKeypointExtractor_EmptyTranscript(t *testing.T) {
	extractor := NewKeypointExtractor()
	if got := extractor.Extract("", 5); len(got) != 0 {
		t.Errorf("Expected no keypoints for empty transcript, got %v", got)
	}
}

// scoreOf recomputes the heuristic score for a sentence, for assertions.
func (e *KeypointExtractor) scoreOf(sentence string) int {
	multiplier := 1
	if e.topical.MatchString(sentence) {
		multiplier = 2
	}
	return len(sentence) * multiplier
}
