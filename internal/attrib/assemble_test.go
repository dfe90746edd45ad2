package attrib

import (
	"reflect"
	"testing"

	"github.com/pkoval/provenly/internal/model"
)

func TestAssemble_ParagraphsAndQuotes(t *testing.T) {
	draft := "The rocket launched at dawn over the desert.\n\n" +
		"Mission control called it \"a flawless ascent into orbit\" afterwards.\n\n" +
		"Nothing in this closing paragraph matches anything."

	sources := []model.Source{
		{ID: "s1", Label: "launch report", Text: "Observers confirmed the rocket launched at dawn over the desert. The range had been cleared the night before."},
		{ID: "s2", Label: "press call", Text: "A spokesperson described a flawless ascent into orbit during the press call."},
	}

	prov := Assemble(draft, sources)

	if len(prov.Paragraphs) != 3 {
		t.Fatalf("Expected 3 paragraphs, got %d", len(prov.Paragraphs))
	}
	for i, p := range prov.Paragraphs {
		if p.Index != i {
			t.Errorf("Expected contiguous zero-based indices, got %d at position %d", p.Index, i)
		}
	}

	// Paragraph 0 matches s1 only.
	if ids := matchIDs(prov.Paragraphs[0].Sources); !reflect.DeepEqual(ids, []string{"s1"}) {
		t.Errorf("Expected paragraph 0 evidence [s1], got %v", ids)
	}
	// Paragraph 2 matches nothing, but is still a valid empty result.
	if len(prov.Paragraphs[2].Sources) != 0 {
		t.Errorf("Expected paragraph 2 to have no evidence, got %v", prov.Paragraphs[2].Sources)
	}

	// The inline quote gets its own record with evidence from s2.
	if len(prov.Quotes) != 1 {
		t.Fatalf("Expected 1 quote record, got %d", len(prov.Quotes))
	}
	if prov.Quotes[0].Quote != "a flawless ascent into orbit" {
		t.Errorf("Unexpected quote text %q", prov.Quotes[0].Quote)
	}
	if ids := matchIDs(prov.Quotes[0].Matches); !reflect.DeepEqual(ids, []string{"s2"}) {
		t.Errorf("Expected quote evidence [s2], got %v", ids)
	}
}

func TestAssemble_EmptyDraft(t *testing.T) {
	prov := Assemble("", []model.Source{{ID: "s1", Text: "whatever"}})
	if len(prov.Paragraphs) != 0 {
		t.Errorf("Expected no paragraphs, got %d", len(prov.Paragraphs))
	}
	if len(prov.Quotes) != 0 {
		t.Errorf("Expected no quotes, got %d", len(prov.Quotes))
	}
}

func TestAssemble_NoSources(t *testing.T) {
	prov := Assemble("One paragraph with \"a quote long enough to count\".", nil)
	if len(prov.Paragraphs) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(prov.Paragraphs))
	}
	if len(prov.Paragraphs[0].Sources) != 0 {
		t.Errorf("Expected no evidence without sources, got %v", prov.Paragraphs[0].Sources)
	}
	if len(prov.Quotes) != 1 || len(prov.Quotes[0].Matches) != 0 {
		t.Errorf("Expected quote record with no matches, got %v", prov.Quotes)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	draft := "First paragraph about the rocket launch.\n\n> a block quote of decent length here"
	sources := []model.Source{
		{ID: "s1", Text: "Everything about the rocket launch is documented, including a block quote of decent length here."},
	}

	first := Assemble(draft, sources)
	second := Assemble(draft, sources)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected byte-identical assembly on repeat invocation")
	}
}

func matchIDs(matches []model.Match) []string {
	var ids []string
	for _, m := range matches {
		ids = append(ids, m.SourceID)
	}
	return ids
}
