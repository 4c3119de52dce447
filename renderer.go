package slapstick

import "strings"

// ──────────────────────────────────────────────
// Prompt Renderer — enhanced and negative directions
// ──────────────────────────────────────────────

// BuildEnhancedPrompt appends one phrase fragment per parameter to the base
// prompt, comma-joined, in canonical parameter order. The base prompt is
// passed through verbatim. Parameters whose bucket lookup returns no text are
// skipped; with the shipped tables every parameter contributes a fragment.
func BuildEnhancedPrompt(basePrompt string, params ParameterVector) string {
	additions := make([]string, 0, len(parameterOrder))
	for _, p := range parameterOrder {
		if text := phraseFor(enhancementPhrases[p], params.Get(p)); text != "" {
			additions = append(additions, text)
		}
	}
	if len(additions) == 0 {
		return basePrompt
	}
	joined := strings.Join(additions, ", ")
	if basePrompt == "" {
		return joined
	}
	return basePrompt + ", " + joined
}

// BuildNegativePrompt assembles the negative prompt: four fixed baseline
// terms followed by the conditional components whose thresholds are met,
// in fixed rule order.
func BuildNegativePrompt(params ParameterVector) string {
	terms := make([]string, 0, len(baselineNegatives)+len(negativeRules))
	terms = append(terms, baselineNegatives...)
	for _, r := range negativeRules {
		if params.Get(r.param) >= r.threshold {
			terms = append(terms, r.text)
		}
	}
	return strings.Join(terms, ", ")
}
