package slapstick

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Enhancer — top-level operations
// ──────────────────────────────────────────────

// Enhancement is the result of enhancing a prompt from explicit parameters.
type Enhancement struct {
	ParametersUsed ParameterVector `json:"parameters_used"`
	EnhancedPrompt string          `json:"enhanced_prompt"`
	NegativePrompt string          `json:"negative_prompt"`
}

// IntentEnhancement extends Enhancement with the human-readable summary
// produced on the intent path.
type IntentEnhancement struct {
	Enhancement
	DesignIntentSummary string `json:"design_intent_summary"`
}

// Options lists the canonical display strings for every enum member.
type Options struct {
	SubjectTypes     []string `json:"subject_types"`
	EmotionalTones   []string `json:"emotional_tones"`
	VisualPriorities []string `json:"visual_priorities"`
	IntensityLevels  []string `json:"intensity_levels"`
}

// Enhancer exposes the four slapstick enhancement operations. All methods
// are pure functions over the static tables; an Enhancer is safe for
// concurrent use from any number of goroutines.
type Enhancer struct{}

// NewEnhancer returns an Enhancer.
func NewEnhancer() *Enhancer { return &Enhancer{} }

// EnhanceWithIntent validates the string-typed intent fields, resolves them
// to a parameter vector and renders both prompts plus a one-line summary of
// the applied treatment.
func (e *Enhancer) EnhanceWithIntent(basePrompt, subjectType, emotionalTone string, priorities []string, intensity string) (*IntentEnhancement, error) {
	subject, err := ParseSubjectType(subjectType)
	if err != nil {
		return nil, err
	}
	tone, err := ParseEmotionalTone(emotionalTone)
	if err != nil {
		return nil, err
	}
	level, err := ParseIntensityLevel(intensity)
	if err != nil {
		return nil, err
	}
	parsed := make([]VisualPriority, 0, len(priorities))
	for _, p := range priorities {
		vp, err := ParseVisualPriority(p)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, vp)
	}

	intent := DesignIntent{
		SubjectType:      subject,
		EmotionalTone:    tone,
		VisualPriorities: parsed,
		Intensity:        level,
	}
	params := ResolveIntent(intent)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &IntentEnhancement{
		Enhancement: Enhancement{
			ParametersUsed: params,
			EnhancedPrompt: BuildEnhancedPrompt(basePrompt, params),
			NegativePrompt: BuildNegativePrompt(params),
		},
		DesignIntentSummary: summarizeIntent(intent),
	}, nil
}

// EnhanceWithParameters renders both prompts from caller-supplied parameter
// values. Each value is clamped to [0,10] before use.
func (e *Enhancer) EnhanceWithParameters(basePrompt string, params ParameterVector) (*Enhancement, error) {
	clamped := params.Clamp()
	if err := clamped.Validate(); err != nil {
		return nil, err
	}
	return &Enhancement{
		ParametersUsed: clamped,
		EnhancedPrompt: BuildEnhancedPrompt(basePrompt, clamped),
		NegativePrompt: BuildNegativePrompt(clamped),
	}, nil
}

// Describe maps a parameter vector to human-readable phrases.
func (e *Enhancer) Describe(params ParameterVector) (*ParameterDescription, error) {
	clamped := params.Clamp()
	if err := clamped.Validate(); err != nil {
		return nil, err
	}
	desc := DescribeParameters(clamped)
	return &desc, nil
}

// AvailableOptions returns every valid value for the design-intent fields.
func (e *Enhancer) AvailableOptions() Options {
	return Options{
		SubjectTypes:     SubjectTypeValues(),
		EmotionalTones:   EmotionalToneValues(),
		VisualPriorities: VisualPriorityValues(),
		IntensityLevels:  IntensityLevelValues(),
	}
}

func summarizeIntent(intent DesignIntent) string {
	emphasis := "none specified"
	if len(intent.VisualPriorities) > 0 {
		names := make([]string, len(intent.VisualPriorities))
		for i, p := range intent.VisualPriorities {
			names[i] = string(p)
		}
		emphasis = strings.Join(names, ", ")
	}
	return fmt.Sprintf("Applied %s %s treatment to %s, emphasizing %s",
		intent.Intensity, intent.EmotionalTone, intent.SubjectType, emphasis)
}
