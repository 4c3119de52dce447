package slapstick

// ──────────────────────────────────────────────
// Static intent-mapping tables
//
// Process-wide constants: defined once, never mutated.
// ──────────────────────────────────────────────

// subjectTypePresets maps each subject type to its base parameter vector,
// before intensity scaling.
var subjectTypePresets = map[SubjectType]ParameterVector{
	SubjectArchitecture: {Exaggeration: 7, Timing: 4, Physical: 6, RuleOfThree: 7, Readability: 6, Tension: 8},
	SubjectPortrait:     {Exaggeration: 6, Timing: 5, Physical: 4, RuleOfThree: 5, Readability: 8, Tension: 4},
	SubjectStillLife:    {Exaggeration: 8, Timing: 6, Physical: 7, RuleOfThree: 8, Readability: 7, Tension: 6},
	SubjectLandscape:    {Exaggeration: 7, Timing: 7, Physical: 8, RuleOfThree: 6, Readability: 5, Tension: 7},
	SubjectAbstract:     {Exaggeration: 9, Timing: 8, Physical: 9, RuleOfThree: 7, Readability: 4, Tension: 8},
	SubjectProduct:      {Exaggeration: 8, Timing: 5, Physical: 6, RuleOfThree: 7, Readability: 9, Tension: 5},
	SubjectScene:        {Exaggeration: 6, Timing: 7, Physical: 7, RuleOfThree: 6, Readability: 6, Tension: 7},
}

// intensityMultipliers scale the whole preset vector. All values in (0,1].
var intensityMultipliers = map[IntensityLevel]float64{
	IntensitySubtle:   0.3,
	IntensityModerate: 0.6,
	IntensityStrong:   0.85,
	IntensityExtreme:  1.0,
}

// toneModifiers holds the sparse per-parameter deltas applied for each
// emotional tone. Parameters not listed are left unmodified.
var toneModifiers = map[EmotionalTone]map[Parameter]int{
	TonePlayful:   {ParamTiming: +2, ParamPhysical: +2, ParamRuleOfThree: +1},
	ToneTense:     {ParamTension: +3, ParamPhysical: -1, ParamReadability: +1},
	ToneAbsurd:    {ParamExaggeration: +3, ParamPhysical: +2, ParamReadability: -2},
	ToneWhimsical: {ParamTiming: +2, ParamRuleOfThree: +2, ParamExaggeration: +1},
	ToneSurreal:   {ParamExaggeration: +3, ParamPhysical: +3, ParamReadability: -1},
	ToneDramatic:  {ParamTension: +3, ParamReadability: +2, ParamTiming: +1},
	ToneChaotic:   {ParamExaggeration: +2, ParamPhysical: +3, ParamTiming: +2, ParamReadability: -2},
	ToneElegant:   {ParamReadability: +3, ParamRuleOfThree: +2, ParamTiming: +1, ParamPhysical: -1},
	ToneOminous:   {ParamTension: +4, ParamTiming: -1, ParamReadability: +1},
}

// priorityBoosts maps each visual priority to the one parameter it raises.
var priorityBoosts = map[VisualPriority]Parameter{
	PriorityScale:      ParamExaggeration,
	PriorityPhysics:    ParamPhysical,
	PriorityRepetition: ParamRuleOfThree,
	PriorityClarity:    ParamReadability,
	PrioritySuspense:   ParamTension,
	PriorityRhythm:     ParamTiming,
	PriorityDistortion: ParamExaggeration,
	PriorityBalance:    ParamTension,
	PriorityFlow:       ParamTiming,
	PriorityImpact:     ParamPhysical,
}

// priorityBoostAmount is added to the target parameter once per requested
// priority. Boosts stack; each addition is clamped independently.
const priorityBoostAmount = 2
