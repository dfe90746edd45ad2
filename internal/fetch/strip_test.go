package fetch

import (
	"strings"
	"testing"
)

func TestStripHTML_VisibleTextOnly(t *testing.T) {
	html := `
	<html>
	<head><title>Title</title><style>.a{color:red}</style></head>
	<body>
		<p>The company launched its product in March.</p>
		<script>var tracking = true;</script>
		<p>Revenue doubled the following quarter.</p>
	</body>
	</html>
	`

	text := StripHTML(html)
	if !strings.Contains(text, "The company launched its product in March.") {
		t.Errorf("Expected paragraph text, got %q", text)
	}
	if strings.Contains(text, "tracking") || strings.Contains(text, "color:red") || strings.Contains(text, "Title") {
		t.Errorf("Expected script/style/head content stripped, got %q", text)
	}
}

func TestStripHTML_BlockBoundariesBecomeParagraphBreaks(t *testing.T) {
	text := StripHTML("<p>First block.</p><p>Second block.</p>")
	if !strings.Contains(text, "\n\n") {
		t.Errorf("Expected blank-line boundary between blocks, got %q", text)
	}
}

func TestStripHTML_MalformedInput(t *testing.T) {
	// html.Parse is forgiving; malformed markup must still come back as
	// some text, never a panic.
	text := StripHTML("<p>unclosed <b>tags <div>everywhere")
	if !strings.Contains(text, "unclosed") || !strings.Contains(text, "everywhere") {
		t.Errorf("Expected text recovered from malformed markup, got %q", text)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if !looksLikeHTML("<!DOCTYPE html><html><body>x</body></html>") {
		t.Error("Expected doctype prefix to be detected")
	}
	if looksLikeHTML("just ordinary transcript text") {
		t.Error("Expected plain text not to be detected as HTML")
	}
}
