package slapstick

import "math"

// ──────────────────────────────────────────────
// Intent Resolver — DesignIntent → ParameterVector
// ──────────────────────────────────────────────

// DesignIntent is the structured creative-intent input. It is created per
// request, resolved once and discarded. Duplicate priorities are permitted
// and each is applied independently.
type DesignIntent struct {
	SubjectType      SubjectType
	EmotionalTone    EmotionalTone
	VisualPriorities []VisualPriority
	Intensity        IntensityLevel
}

// ResolveIntent maps a design intent to a clamped parameter vector.
//
// The pipeline is fixed and order-sensitive:
//
//	preset → intensity scaling → tone deltas (clamped) → priority boosts (clamped) → final clamp
//
// Identical intents always yield identical vectors. Scaling rounds half away
// from zero (math.Round).
func ResolveIntent(intent DesignIntent) ParameterVector {
	preset, ok := subjectTypePresets[intent.SubjectType]
	if !ok {
		// Unreachable for validated intents; kept so table edits cannot
		// produce a zero vector.
		preset = subjectTypePresets[SubjectScene]
	}

	mult, ok := intensityMultipliers[intent.Intensity]
	if !ok {
		mult = intensityMultipliers[IntensityModerate]
	}

	v := scaleVector(preset, mult)

	for _, p := range parameterOrder {
		if delta, ok := toneModifiers[intent.EmotionalTone][p]; ok {
			v = v.With(p, clampValue(v.Get(p)+delta))
		}
	}

	for _, priority := range intent.VisualPriorities {
		if target, ok := priorityBoosts[priority]; ok {
			v = v.With(target, clampValue(v.Get(target)+priorityBoostAmount))
		}
	}

	return v.Clamp()
}

func scaleVector(v ParameterVector, mult float64) ParameterVector {
	for _, p := range parameterOrder {
		scaled := int(math.Round(float64(v.Get(p)) * mult))
		v = v.With(p, scaled)
	}
	return v
}
