// Package slapstick maps creative design intent onto a bounded six-parameter
// vector and deterministically renders that vector into enhanced and negative
// image prompts. All mappings are pure functions over static lookup tables;
// there is no randomness, no I/O and no mutable state.
package slapstick

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Taxonomy — closed enumerations
// ──────────────────────────────────────────────

// SubjectType categorizes the subject matter of the base prompt.
type SubjectType string

const (
	SubjectArchitecture SubjectType = "architecture"
	SubjectPortrait     SubjectType = "portrait"
	SubjectStillLife    SubjectType = "still_life"
	SubjectLandscape    SubjectType = "landscape"
	SubjectAbstract     SubjectType = "abstract"
	SubjectProduct      SubjectType = "product"
	SubjectScene        SubjectType = "scene"
)

// EmotionalTone is the emotional quality the enhancement should convey.
type EmotionalTone string

const (
	TonePlayful   EmotionalTone = "playful"
	ToneTense     EmotionalTone = "tense"
	ToneAbsurd    EmotionalTone = "absurd"
	ToneWhimsical EmotionalTone = "whimsical"
	ToneSurreal   EmotionalTone = "surreal"
	ToneDramatic  EmotionalTone = "dramatic"
	ToneChaotic   EmotionalTone = "chaotic"
	ToneElegant   EmotionalTone = "elegant"
	ToneOminous   EmotionalTone = "ominous"
)

// VisualPriority names a slapstick quality to emphasize. Each priority
// boosts exactly one parameter (see priorityBoosts).
type VisualPriority string

const (
	PriorityScale      VisualPriority = "scale"
	PriorityPhysics    VisualPriority = "physics"
	PriorityRepetition VisualPriority = "repetition"
	PriorityClarity    VisualPriority = "clarity"
	PrioritySuspense   VisualPriority = "suspense"
	PriorityRhythm     VisualPriority = "rhythm"
	PriorityDistortion VisualPriority = "distortion"
	PriorityBalance    VisualPriority = "balance"
	PriorityFlow       VisualPriority = "flow"
	PriorityImpact     VisualPriority = "impact"
)

// IntensityLevel is the overall strength of the slapstick effect.
type IntensityLevel string

const (
	IntensitySubtle   IntensityLevel = "subtle"
	IntensityModerate IntensityLevel = "moderate"
	IntensityStrong   IntensityLevel = "strong"
	IntensityExtreme  IntensityLevel = "extreme"
)

// Parameter names one of the six slapstick dimensions.
type Parameter string

const (
	ParamExaggeration Parameter = "exaggeration" // scale distortions, color intensity, impossible proportions
	ParamTiming       Parameter = "timing"       // repetition patterns, compositional cadence, motion blur
	ParamPhysical     Parameter = "physical"     // squash/stretch, gravity defiance, collision moments
	ParamRuleOfThree  Parameter = "ruleOfThree"  // triplet groupings, establish-repeat-subvert patterns
	ParamReadability  Parameter = "readability"  // silhouette clarity, graphic simplification
	ParamTension      Parameter = "tension"      // precarious balance, suspense, about-to-happen moments
)

// Declaration-order member lists. The order is part of the external contract:
// option listings and prompt assembly both follow it.
var (
	subjectTypes = []SubjectType{
		SubjectArchitecture, SubjectPortrait, SubjectStillLife, SubjectLandscape,
		SubjectAbstract, SubjectProduct, SubjectScene,
	}
	emotionalTones = []EmotionalTone{
		TonePlayful, ToneTense, ToneAbsurd, ToneWhimsical, ToneSurreal,
		ToneDramatic, ToneChaotic, ToneElegant, ToneOminous,
	}
	visualPriorities = []VisualPriority{
		PriorityScale, PriorityPhysics, PriorityRepetition, PriorityClarity,
		PrioritySuspense, PriorityRhythm, PriorityDistortion, PriorityBalance,
		PriorityFlow, PriorityImpact,
	}
	intensityLevels = []IntensityLevel{
		IntensitySubtle, IntensityModerate, IntensityStrong, IntensityExtreme,
	}
	parameterOrder = []Parameter{
		ParamExaggeration, ParamTiming, ParamPhysical, ParamRuleOfThree,
		ParamReadability, ParamTension,
	}
)

// InvalidOptionError reports a string that matches no member of a closed enum.
type InvalidOptionError struct {
	Field string // the enum-valued field, e.g. "subject_type"
	Value string // the offending input
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// InvalidParameterError reports a parameter value that cannot be used:
// either the input is not an integer, or a constructed vector failed the
// [0,10] bound check.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// parseEnum resolves s case-insensitively against the member list.
// No partial or fuzzy matching.
func parseEnum[T ~string](field, s string, members []T) (T, error) {
	for _, m := range members {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	var zero T
	return zero, &InvalidOptionError{Field: field, Value: s}
}

// ParseSubjectType resolves a subject type name, case-insensitively.
func ParseSubjectType(s string) (SubjectType, error) {
	return parseEnum("subject_type", s, subjectTypes)
}

// ParseEmotionalTone resolves an emotional tone name, case-insensitively.
func ParseEmotionalTone(s string) (EmotionalTone, error) {
	return parseEnum("emotional_tone", s, emotionalTones)
}

// ParseVisualPriority resolves a visual priority name, case-insensitively.
func ParseVisualPriority(s string) (VisualPriority, error) {
	return parseEnum("visual_priority", s, visualPriorities)
}

// ParseIntensityLevel resolves an intensity level name, case-insensitively.
func ParseIntensityLevel(s string) (IntensityLevel, error) {
	return parseEnum("intensity", s, intensityLevels)
}

// SubjectTypeValues returns the canonical display strings in declaration order.
func SubjectTypeValues() []string { return enumValues(subjectTypes) }

// EmotionalToneValues returns the canonical display strings in declaration order.
func EmotionalToneValues() []string { return enumValues(emotionalTones) }

// VisualPriorityValues returns the canonical display strings in declaration order.
func VisualPriorityValues() []string { return enumValues(visualPriorities) }

// IntensityLevelValues returns the canonical display strings in declaration order.
func IntensityLevelValues() []string { return enumValues(intensityLevels) }

// ParameterNames returns the six parameter names in canonical order.
func ParameterNames() []string { return enumValues(parameterOrder) }

func enumValues[T ~string](members []T) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = string(m)
	}
	return out
}
