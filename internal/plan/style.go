package plan

import "strings"

// Style is the tone register applied to generated content. The set is
// closed; [StyleBalanced] is the fallback for unrecognized keys.
type Style int

const (
	StyleBalanced Style = iota
	StyleProfessional
	StyleCreative
)

var styleNames = map[Style]string{
	StyleBalanced:     "balanced",
	StyleProfessional: "professional",
	StyleCreative:     "creative",
}

// styleInstructions hold the tone requirement appended to the user prompt.
var styleInstructions = map[Style]string{
	StyleProfessional: `Adopt a formal, clinical tone suitable for professional documentation and
peer consultation. Use precise clinical terminology, maintain objectivity, and structure content
for maximum clarity. This style is ideal for case presentations and supervision.`,

	StyleBalanced: `Adopt a warm yet professional tone suitable for a clinician's personal session
preparation notes. Balance clinical precision with accessible language. Include practical tips
and conversational flow while maintaining therapeutic integrity.`,

	StyleCreative: `Adopt an engaging, psychoeducational tone suitable for teaching or explaining
concepts to clients. Use metaphors, analogies, and vivid descriptions while remaining clinically
accurate. This style helps clinicians think creatively about presenting interventions.`,
}

// String returns the lowercase style key.
func (s Style) String() string {
	return styleNames[s]
}

// Instruction returns the tone requirement text for the user prompt.
func (s Style) Instruction() string {
	return styleInstructions[s]
}

// Styles returns all styles in display order.
func Styles() []Style {
	return []Style{StyleProfessional, StyleBalanced, StyleCreative}
}

// ParseStyle maps a tone name to its Style, case-insensitively.
// Unrecognized names fall back to the balanced tone.
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "professional":
		return StyleProfessional
	case "creative":
		return StyleCreative
	default:
		return StyleBalanced
	}
}
