package attrib

import "github.com/pkoval/provenly/internal/model"

// Assemble attaches source evidence to every paragraph and every
// detected quote of a draft. Paragraphs and quotes are independent views
// over the same text: a quotation inside paragraph 2 shows up both in
// that paragraph's evidence (when the paragraph as a whole matches) and
// as its own QuoteRecord. Callers consume the two views separately, so
// they are not cross-linked.
func Assemble(draft string, sources []model.Source) *model.Provenance {
	paragraphs := SplitParagraphs(draft)
	prov := &model.Provenance{
		Paragraphs: make([]model.Paragraph, 0, len(paragraphs)),
		Quotes:     []model.QuoteRecord{},
	}

	for i, text := range paragraphs {
		prov.Paragraphs = append(prov.Paragraphs, model.Paragraph{
			Index:   i,
			Text:    text,
			Sources: FindMatches(text, sources),
		})
	}

	for _, quote := range DetectQuotes(draft) {
		prov.Quotes = append(prov.Quotes, model.QuoteRecord{
			Quote:   quote,
			Matches: FindMatches(quote, sources),
		})
	}

	return prov
}
