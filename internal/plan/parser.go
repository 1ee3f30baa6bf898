package plan

import "strings"

// Section is one titled part of a generated plan. Body holds the raw
// text between the markers, trimmed but not yet rendered.
type Section struct {
	Title string
	Body  string
}

// Section marker grammar. Other tooling relies on these exact literals;
// matching on the keyword is case-insensitive, the title payload is
// everything between the colon and the closing bracket.
const (
	openMarker  = "[SECTION:"
	closeMarker = "[/SECTION]"
)

// ParseSections extracts the bracket-delimited sections from raw
// generated text in a single left-to-right scan.
//
// The scanner alternates between two states: outside a section (looking
// for an opening marker) and inside one (looking for the title's closing
// bracket, then the closing marker). Text outside matched marker pairs —
// preamble chatter, trailing remarks — is excluded from the result. A
// dangling opening marker with no close yields nothing for that marker
// and terminates the scan; truncated model output can never hang or
// fail here. Zero matches return an empty slice, a valid outcome
// distinct from a generation failure.
//
// Order of the result is the order markers appear in raw. Duplicate
// titles are preserved positionally; nothing is deduplicated.
func ParseSections(raw string) []Section {
	sections := []Section{}
	pos := 0

	for pos < len(raw) {
		open := indexFold(raw[pos:], openMarker)
		if open < 0 {
			break
		}
		titleStart := pos + open + len(openMarker)

		bracket := strings.Index(raw[titleStart:], "]")
		if bracket < 0 {
			break
		}
		title := raw[titleStart : titleStart+bracket]
		bodyStart := titleStart + bracket + 1

		closing := indexFold(raw[bodyStart:], closeMarker)
		if closing < 0 {
			break
		}

		sections = append(sections, Section{
			Title: strings.TrimSpace(title),
			Body:  strings.TrimSpace(raw[bodyStart : bodyStart+closing]),
		})
		pos = bodyStart + closing + len(closeMarker)
	}

	return sections
}

// indexFold returns the index of the first ASCII case-insensitive match
// of sub in s, or -1. The markers are pure ASCII, so byte-wise folding
// is exact and offsets stay valid for slicing.
func indexFold(s, sub string) int {
	if len(sub) == 0 {
		return 0
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if foldEqualASCII(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

// foldEqualASCII reports whether a and b are equal ignoring ASCII case.
// Both strings must be the same length.
func foldEqualASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
