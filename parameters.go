package slapstick

// ──────────────────────────────────────────────
// ParameterVector — bounded six-dimensional value type
// ──────────────────────────────────────────────

// ParamMin and ParamMax bound every parameter value, inclusive.
const (
	ParamMin = 0
	ParamMax = 10
)

// ParameterVector holds the six slapstick parameter values. Every field must
// stay within [ParamMin, ParamMax]; construction paths clamp rather than
// letting out-of-range values propagate. It is a plain value type: copy it
// freely, compare it with ==.
type ParameterVector struct {
	Exaggeration int `json:"exaggeration"`
	Timing       int `json:"timing"`
	Physical     int `json:"physical"`
	RuleOfThree  int `json:"ruleOfThree"`
	Readability  int `json:"readability"`
	Tension      int `json:"tension"`
}

// Get returns the value of the named parameter. Unknown names return 0.
func (v ParameterVector) Get(p Parameter) int {
	switch p {
	case ParamExaggeration:
		return v.Exaggeration
	case ParamTiming:
		return v.Timing
	case ParamPhysical:
		return v.Physical
	case ParamRuleOfThree:
		return v.RuleOfThree
	case ParamReadability:
		return v.Readability
	case ParamTension:
		return v.Tension
	}
	return 0
}

// With returns a copy with the named parameter set to value.
func (v ParameterVector) With(p Parameter, value int) ParameterVector {
	switch p {
	case ParamExaggeration:
		v.Exaggeration = value
	case ParamTiming:
		v.Timing = value
	case ParamPhysical:
		v.Physical = value
	case ParamRuleOfThree:
		v.RuleOfThree = value
	case ParamReadability:
		v.Readability = value
	case ParamTension:
		v.Tension = value
	}
	return v
}

// Clamp returns a copy with every field forced into [ParamMin, ParamMax].
// Clamping an in-range vector is a no-op.
func (v ParameterVector) Clamp() ParameterVector {
	for _, p := range parameterOrder {
		v = v.With(p, clampValue(v.Get(p)))
	}
	return v
}

// Validate checks the bound invariant. Given that every construction path
// clamps, a failure here should be unreachable; it is kept as a backstop.
func (v ParameterVector) Validate() error {
	for _, p := range parameterOrder {
		if n := v.Get(p); n < ParamMin || n > ParamMax {
			return &InvalidParameterError{
				Param:  string(p),
				Reason: "must be between 0 and 10",
			}
		}
	}
	return nil
}

// Map returns the vector as a name → value map for serialization.
func (v ParameterVector) Map() map[string]int {
	out := make(map[string]int, len(parameterOrder))
	for _, p := range parameterOrder {
		out[string(p)] = v.Get(p)
	}
	return out
}

func clampValue(n int) int {
	if n < ParamMin {
		return ParamMin
	}
	if n > ParamMax {
		return ParamMax
	}
	return n
}
