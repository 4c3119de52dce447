package slapstick

import "encoding/json"

// ──────────────────────────────────────────────
// Description Renderer — parameters → human-readable phrases
// ──────────────────────────────────────────────

// ParameterDescription pairs one descriptive phrase per parameter with the
// clamped vector the phrases were chosen from.
type ParameterDescription struct {
	Descriptions map[string]string
	Parameters   ParameterVector
}

// MarshalJSON flattens the descriptions to top-level keys alongside a
// "parameters" field, matching the wire shape of describe_parameters.
func (d ParameterDescription) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Descriptions)+1)
	for k, v := range d.Descriptions {
		out[k] = v
	}
	out["parameters"] = d.Parameters
	return json.Marshal(out)
}

// DescribeParameters returns one descriptive phrase per parameter, selected
// with the same four-bucket policy as the prompt renderer but worded for
// third-person description. The input vector is clamped first and returned
// alongside the descriptions for traceability.
func DescribeParameters(params ParameterVector) ParameterDescription {
	clamped := params.Clamp()
	descriptions := make(map[string]string, len(parameterOrder))
	for _, p := range parameterOrder {
		descriptions[string(p)] = phraseFor(descriptionPhrases[p], clamped.Get(p))
	}
	return ParameterDescription{Descriptions: descriptions, Parameters: clamped}
}
