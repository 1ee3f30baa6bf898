// Package plan implements the session plan generation pipeline: prompt
// composition, section parsing of generated text, and HTML rendering.
package plan

import "strings"

// Lens is the clinical-profession viewpoint applied to shape generated
// content. The set is closed; lookups are total with [LensCounselor] as
// the fallback for unrecognized keys.
type Lens int

const (
	LensCounselor Lens = iota
	LensPsychiatrist
	LensPsychologist
	LensSocialWorker
	LensLMFT
)

// lensNames are the display names, also used as lookup keys.
var lensNames = map[Lens]string{
	LensCounselor:    "Counselor",
	LensPsychiatrist: "Psychiatrist",
	LensPsychologist: "Psychologist",
	LensSocialWorker: "Social Worker",
	LensLMFT:         "LMFT",
}

// lensInstructions hold the profession-specific framing injected into
// the master system prompt.
var lensInstructions = map[Lens]string{
	LensPsychiatrist: `Adopt the perspective of a board-certified Psychiatrist (MD/DO).
Emphasize: DSM-5-TR diagnostic criteria, neurobiological mechanisms, psychopharmacological considerations,
differential diagnosis, and risk assessment. Maintain medical precision and objectivity suitable for
clinical documentation.`,

	LensPsychologist: `Adopt the perspective of a Licensed Clinical Psychologist (PhD/PsyD).
Emphasize: Evidence-based psychological theories, empirically supported treatments, measurable therapeutic
outcomes, comprehensive assessment, and research-backed interventions. Link all recommendations to
underlying psychological principles.`,

	LensSocialWorker: `Adopt the perspective of a Licensed Clinical Social Worker (LCSW/LICSW).
Emphasize: Biopsychosocial assessment, person-in-environment perspective, strengths-based approach,
cultural humility, social determinants of health, community resources, and systemic factors.
Highlight client resilience and support networks.`,

	LensLMFT: `Adopt the perspective of a Licensed Marriage and Family Therapist (LMFT).
Emphasize: Systemic and relational frameworks, interactional patterns, family dynamics, attachment styles,
communication processes, and relational context. Even for individual work, consider the client's
relational ecosystem.`,

	LensCounselor: `Adopt the perspective of a Licensed Professional Counselor (LPC/LCPC).
Emphasize: Wellness model, developmental perspective, multicultural competence, client empowerment,
holistic growth, preventive approaches, and skill development. Maintain a collaborative,
client-centered stance.`,
}

// String returns the display name.
func (l Lens) String() string {
	return lensNames[l]
}

// Instruction returns the profession-lens text for the system prompt.
func (l Lens) Instruction() string {
	return lensInstructions[l]
}

// Lenses returns all lenses in display order.
func Lenses() []Lens {
	return []Lens{LensPsychiatrist, LensPsychologist, LensSocialWorker, LensLMFT, LensCounselor}
}

// ParseLens maps a profession name to its Lens. Unrecognized names fall
// back to the Counselor lens, the least specialized viewpoint, so the
// function is total. Matching ignores surrounding whitespace and case.
func ParseLens(s string) Lens {
	s = strings.TrimSpace(s)
	for lens, name := range lensNames {
		if strings.EqualFold(s, name) {
			return lens
		}
	}
	return LensCounselor
}
