package plan

import (
	"strings"
	"testing"
)

func TestRenderPlan_Empty(t *testing.T) {
	got := RenderPlan(nil)
	if got != placeholderHTML {
		t.Errorf("RenderPlan(nil) = %q, want placeholder", got)
	}
	if got2 := RenderPlan([]Section{}); got2 != got {
		t.Errorf("empty slice and nil should render identically")
	}
}

func TestRenderPlan_Containers(t *testing.T) {
	sections := []Section{
		{Title: "Therapeutic Goal", Body: "Reduce avoidance behavior."},
		{Title: "Homework", Body: "Track three situations."},
	}
	got := RenderPlan(sections)

	if !strings.Contains(got, `<h2 class="section-title">Therapeutic Goal</h2>`) {
		t.Error("missing first section title")
	}
	if !strings.Contains(got, `<h2 class="section-title">Homework</h2>`) {
		t.Error("missing second section title")
	}
	if strings.Count(got, `class="plan-section lead"`) != 1 {
		t.Error("exactly one section should carry the lead class")
	}
	if !strings.Contains(got, "Reduce avoidance behavior.") {
		t.Error("missing first body content")
	}

	// The lead class must be on the first container.
	leadIdx := strings.Index(got, "plan-section lead")
	plainIdx := strings.Index(got, `class="plan-section"`)
	if plainIdx >= 0 && leadIdx > plainIdx {
		t.Error("lead class is not on the first section")
	}
}

func TestRenderPlan_OrderPreserved(t *testing.T) {
	sections := []Section{
		{Title: "Zed", Body: "z"},
		{Title: "Alpha", Body: "a"},
		{Title: "Zed", Body: "again"}, // duplicate title kept
	}
	got := RenderPlan(sections)

	first := strings.Index(got, "Zed")
	second := strings.Index(got, "Alpha")
	if first < 0 || second < 0 || first > second {
		t.Errorf("sections out of order: %q", got)
	}
	if strings.Count(got, ">Zed</h2>") != 2 {
		t.Error("duplicate section lost")
	}
}

func TestRenderPlan_Idempotent(t *testing.T) {
	sections := []Section{
		{Title: "Goal", Body: "- item one\n- item two\n\n| a | b |\n|---|---|\n| 1 | 2 |"},
	}
	a := RenderPlan(sections)
	b := RenderPlan(sections)
	if a != b {
		t.Error("RenderPlan is not a pure function of its input")
	}
}

func TestRenderPlan_MarkdownFeatures(t *testing.T) {
	sections := []Section{{
		Title: "Session Structure",
		Body: "1. Check-in (5 min)\n2. Review homework (10 min)\n\n" +
			"```\nthought record\n```\n\n" +
			"| Step | Time |\n|------|------|\n| Intro | 5m |",
	}}
	got := RenderPlan(sections)

	if !strings.Contains(got, "<ol>") {
		t.Error("ordered list not rendered")
	}
	if !strings.Contains(got, "<code>") {
		t.Error("fenced code block not rendered")
	}
	if !strings.Contains(got, "<table>") {
		t.Error("table not rendered")
	}
}

func TestRenderPlan_LineBreaks(t *testing.T) {
	// Single newlines become hard breaks, matching the original nl2br
	// behavior; blank lines still split paragraphs.
	got := RenderPlan([]Section{{Title: "T", Body: "line one\nline two\n\nnew paragraph"}})
	if !strings.Contains(got, "<br") {
		t.Error("single newline not converted to <br>")
	}
	if strings.Count(got, "<p>") < 2 {
		t.Error("blank line did not split paragraphs")
	}
}

func TestRenderPlan_TitleEscaped(t *testing.T) {
	got := RenderPlan([]Section{{Title: `<script>alert("x")</script>`, Body: "b"}})
	if strings.Contains(got, "<script>") {
		t.Error("section title not escaped")
	}
}

func TestRenderNote(t *testing.T) {
	got := RenderNote("**DATA**\n- presenting concern\n\n| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(got, "<strong>DATA</strong>") {
		t.Error("bold heading not rendered")
	}
	if !strings.Contains(got, "<table>") {
		t.Error("table not rendered")
	}
	if strings.Contains(got, "plan-section") {
		t.Error("note should not get plan container wrapping")
	}
}

func TestRenderNote_MalformedMarkupDegrades(t *testing.T) {
	// Broken table syntax and unclosed emphasis must render literally,
	// never error.
	inputs := []string{
		"| broken | table\n|---",
		"*unclosed emphasis",
		"``` unclosed fence",
	}
	for _, in := range inputs {
		got := RenderNote(in)
		if got == "" {
			t.Errorf("RenderNote(%q) returned empty output", in)
		}
	}
}
