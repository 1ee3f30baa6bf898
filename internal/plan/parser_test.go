package plan

import (
	"strings"
	"testing"
)

func TestParseSections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Section
	}{
		{
			name: "two sections in order",
			raw:  "[SECTION:Title A]Body A[/SECTION][SECTION:Title B]Body B[/SECTION]",
			want: []Section{{"Title A", "Body A"}, {"Title B", "Body B"}},
		},
		{
			name: "no markers",
			raw:  "no markers here",
			want: []Section{},
		},
		{
			name: "empty input",
			raw:  "",
			want: []Section{},
		},
		{
			name: "multiline body preserved",
			raw:  "[SECTION:Goal]Line one\nLine two\n\nLine four[/SECTION]",
			want: []Section{{"Goal", "Line one\nLine two\n\nLine four"}},
		},
		{
			name: "title and body trimmed",
			raw:  "[SECTION:  Session Title  ]\n\n  body text  \n[/SECTION]",
			want: []Section{{"Session Title", "body text"}},
		},
		{
			name: "marker keyword case-insensitive, title casing preserved",
			raw:  "[section:MiXeD Case]body[/section]",
			want: []Section{{"MiXeD Case", "body"}},
		},
		{
			name: "preamble and trailing chatter excluded",
			raw:  "Sure! Here is your plan:\n[SECTION:A]one[/SECTION]\nHope this helps!",
			want: []Section{{"A", "one"}},
		},
		{
			name: "duplicate titles preserved positionally",
			raw:  "[SECTION:Goal]first[/SECTION][SECTION:Goal]second[/SECTION]",
			want: []Section{{"Goal", "first"}, {"Goal", "second"}},
		},
		{
			name: "dangling opening marker yields nothing",
			raw:  "[SECTION:Truncated]the model ran out of tokens here",
			want: []Section{},
		},
		{
			name: "dangling marker after a complete section",
			raw:  "[SECTION:A]done[/SECTION][SECTION:B]cut off",
			want: []Section{{"A", "done"}},
		},
		{
			name: "opening marker with no title bracket",
			raw:  "[SECTION:never closes",
			want: []Section{},
		},
		{
			name: "lone closing marker",
			raw:  "text [/SECTION] more text",
			want: []Section{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSections(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sections, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("section %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSections_FullPlanShape(t *testing.T) {
	// A realistic nine-section response in the shape the master prompt
	// requests.
	titles := []string{
		"Session Title", "Therapeutic Goal", "Clinical Conceptualization",
		"Modalities & Techniques", "Session Structure (Step-by-Step)",
		"Clinician Prompts & Activities", "Homework or Between-Session Tasks",
		"Protective Factors & Strengths", "Clinical Rationale",
	}
	var b strings.Builder
	for _, title := range titles {
		b.WriteString("[SECTION:" + title + "]\ncontent for " + title + "\n[/SECTION]\n\n")
	}

	got := ParseSections(b.String())
	if len(got) != len(titles) {
		t.Fatalf("got %d sections, want %d", len(got), len(titles))
	}
	for i, title := range titles {
		if got[i].Title != title {
			t.Errorf("section %d title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestParseSections_AdversarialInputTerminates(t *testing.T) {
	// Pathological inputs that could make a backtracking regex crawl.
	// The linear scanner must return promptly on all of them.
	inputs := []string{
		strings.Repeat("[SECTION:", 10000),
		strings.Repeat("[SECTION:x]", 5000),
		"[SECTION:" + strings.Repeat("a", 100000),
		strings.Repeat("]", 100000),
	}
	for _, in := range inputs {
		ParseSections(in) // must not hang or panic
	}
}
