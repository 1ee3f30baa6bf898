package plan

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown converts section bodies and note text. Tables and fenced code
// blocks match what the generation prompts ask the model to emit; hard
// wraps turn single newlines into <br> so the model's line-by-line lists
// survive rendering.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// placeholderHTML is returned for an empty section list. It is a fixed
// fragment, deliberately distinct from the error fragment the web layer
// shows for a failed generation call.
const placeholderHTML = "<p>No plan generated.</p>"

// RenderPlan converts parsed sections into display HTML. Each section
// becomes a titled container; the first carries a lead marker class.
// Pure function of its input: rendering the same sections twice yields
// byte-identical output.
func RenderPlan(sections []Section) string {
	if len(sections) == 0 {
		return placeholderHTML
	}

	var b strings.Builder
	b.WriteString("<div class=\"plan\">\n")
	for i, sec := range sections {
		class := "plan-section"
		if i == 0 {
			class = "plan-section lead"
		}
		fmt.Fprintf(&b, "<div class=%q>\n<h2 class=\"section-title\">%s</h2>\n<div class=\"section-content\">%s</div>\n</div>\n",
			class, stdhtml.EscapeString(sec.Title), toHTML(sec.Body))
	}
	b.WriteString("</div>")
	return b.String()
}

// RenderNote converts a generated progress note into HTML. Notes are a
// single body with no section markers, so there is no container wrapping
// beyond what the markdown conversion itself produces.
func RenderNote(body string) string {
	return toHTML(body)
}

// toHTML runs the markdown conversion, degrading to escaped literal
// text if the converter rejects the input. Malformed markup renders
// literally; it never fails the whole page.
func toHTML(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + stdhtml.EscapeString(src) + "</p>"
	}
	return strings.TrimSpace(buf.String())
}
