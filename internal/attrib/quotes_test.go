package attrib

import (
	"reflect"
	"testing"
)

func TestDetectQuotes_InlineBasic(t *testing.T) {
	draft := `The CEO said "we will double headcount next year" during the call.`
	got := DetectQuotes(draft)

	want := []string{"we will double headcount next year"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDetectQuotes_MinimumLength(t *testing.T) {
	// 7 characters never appears; exactly 8 does.
	draft := `She said "short.." then "12345678" ok.`
	got := DetectQuotes(draft)

	if len(got) != 1 || got[0] != "12345678" {
		t.Fatalf("Expected only the 8-char quote, got %v", got)
	}
}

func TestDetectQuotes_NonGreedySpans(t *testing.T) {
	// Two quotes in one line must not merge into one span.
	draft := `"first quoted span" and later "second quoted span"`
	got := DetectQuotes(draft)

	want := []string{"first quoted span", "second quoted span"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDetectQuotes_DeduplicatesExactText(t *testing.T) {
	draft := `He repeated "the numbers are real" twice: "the numbers are real".`
	got := DetectQuotes(draft)

	if len(got) != 1 {
		t.Fatalf("Expected duplicate quote to appear once, got %v", got)
	}
}

func TestDetectQuotes_BlockQuote(t *testing.T) {
	draft := "Intro paragraph.\n\n" +
		"> We believe the market is ready\n" +
		"> for a product like this.\n\n" +
		"Closing paragraph."
	got := DetectQuotes(draft)

	want := []string{"We believe the market is ready for a product like this."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDetectQuotes_BlockQuoteEndsAtUnmarkedLine(t *testing.T) {
	draft := "> first block of quoted text\nplain line\n> second block of quoted text"
	got := DetectQuotes(draft)

	want := []string{"first block of quoted text", "second block of quoted text"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected two separate blocks %v, got %v", want, got)
	}
}

func TestDetectQuotes_ShortBlockQuoteDropped(t *testing.T) {
	got := DetectQuotes("> short")
	if len(got) != 0 {
		t.Errorf("Expected short block quote to be dropped, got %v", got)
	}
}

func TestDetectQuotes_IndentedBlockMarker(t *testing.T) {
	got := DetectQuotes("   > quoted after leading whitespace")
	if len(got) != 1 || got[0] != "quoted after leading whitespace" {
		t.Errorf("Expected indented marker to count, got %v", got)
	}
}

func TestDetectQuotes_UnterminatedQuote(t *testing.T) {
	// A stray opening mark must degrade to no quotes, not a crash or a
	// runaway span.
	draft := `He opened with "and never closed the quotation mark at all`
	got := DetectQuotes(draft)
	if len(got) != 0 {
		t.Errorf("Expected no quotes for unterminated mark, got %v", got)
	}
}

func TestDetectQuotes_None(t *testing.T) {
	if got := DetectQuotes("Nothing quoted here."); len(got) != 0 {
		t.Errorf("Expected no quotes, got %v", got)
	}
}
