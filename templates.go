package slapstick

// ──────────────────────────────────────────────
// Template Library — per-parameter, per-range phrase fragments
// ──────────────────────────────────────────────

// rangedPhrase binds an inclusive [min,max] value bucket to a phrase.
type rangedPhrase struct {
	min, max int
	text     string
}

// phraseFor selects the phrase whose bucket contains value. Tables are
// ordered highest range first so the most extreme match wins if ranges ever
// overlapped (they do not, by construction).
func phraseFor(table []rangedPhrase, value int) string {
	for _, p := range table {
		if value >= p.min && value <= p.max {
			return p.text
		}
	}
	return ""
}

// enhancementPhrases hold the prompt-fragment wording appended to the base
// prompt. Four buckets per parameter cover the full [0,10] domain.
var enhancementPhrases = map[Parameter][]rangedPhrase{
	ParamExaggeration: {
		{9, 10, "extreme distortions with impossible scales showing 3-5x size variations, surreal color intensity, warped perspective that shouldn't work but does"},
		{6, 8, "obvious proportion exaggerations, oversaturated colors and heightened contrast, forced perspective"},
		{3, 5, "subtle scale variations and slightly heightened color saturation"},
		{0, 2, "realistic proportions and natural color"},
	},
	ParamTiming: {
		{9, 10, "staccato visual interruptions, dramatic motion blur on static objects, speed lines suggesting imminent action"},
		{6, 8, "strong rhythmic composition with repeating elements, anticipation spaces and visual pauses between key elements"},
		{3, 5, "gentle repetition of visual elements creating compositional rhythm"},
		{0, 2, "static composition without temporal elements"},
	},
	ParamPhysical: {
		{9, 10, "extreme elasticity and squash-stretch distortion, mid-collision freeze-frame moment, materials stretched or compressed cartoonishly, complete defiance of physics"},
		{6, 8, "squash and stretch principles applied to forms, gravity-defying elements, objects mid-fall or impossibly suspended"},
		{3, 5, "subtle material flexibility, slight impossibilities in physics"},
		{0, 2, "realistic physics and rigid materials"},
	},
	ParamRuleOfThree: {
		{9, 10, "complex establish-repeat-subvert patterns, three-part visual jokes in composition, triple visual callbacks, all using rule of thirds positioning"},
		{6, 8, "clear triplet groupings, establish one element then systematically repeat-with-variation twice more, visual pattern of three"},
		{3, 5, "subtle hints of grouping in threes, occasional triplet arrangement"},
		{0, 2, "no emphasis on triplet groupings"},
	},
	ParamReadability: {
		{9, 10, "crystal clear graphic simplification and silhouette clarity, high contrast separating subject from background, visual clarity even from distance"},
		{6, 8, "strong silhouette clarity and graphic simplification, clear contrast between subject and environment"},
		{3, 5, "subtle graphic emphasis with readable forms"},
		{0, 2, "complex visual details without simplification"},
	},
	ParamTension: {
		{9, 10, "extreme precarious balance suggesting imminent collapse, maximum suspense and about-to-happen energy, frozen moment of chaos"},
		{6, 8, "strong suspenseful moment with clear tension, objects at unstable angles, sense of impending action"},
		{3, 5, "subtle underlying tension and unease"},
		{0, 2, "peaceful balanced composition"},
	},
}

// baselineNegatives always open the negative prompt.
var baselineNegatives = []string{"blurry", "low quality", "distorted", "ugly"}

// negativeRule appends text when the parameter reaches its threshold.
type negativeRule struct {
	param     Parameter
	threshold int
	text      string
}

// negativeRules are evaluated in this fixed order. The readability rule
// fires on HIGH readability: very high requested clarity risks
// over-simplification, so the caution is intentionally inverted.
var negativeRules = []negativeRule{
	{ParamExaggeration, 6, "realistic proportions, natural colors, subtle"},
	{ParamTiming, 6, "static composition, no motion, no rhythm"},
	{ParamPhysical, 6, "realistic physics, rigid materials, no distortion"},
	{ParamRuleOfThree, 6, "no pattern, no rhythm, random composition"},
	{ParamReadability, 8, "cluttered, confusing, unclear silhouette"},
	{ParamTension, 6, "peaceful, calm, balanced, serene"},
}

// descriptionPhrases hold third-person wording for the description renderer.
// Same bucket shape as enhancementPhrases, independently worded.
var descriptionPhrases = map[Parameter][]rangedPhrase{
	ParamExaggeration: {
		{9, 10, "extreme distortions with impossible scales"},
		{6, 8, "obvious proportion exaggerations"},
		{3, 5, "subtle scale variations"},
		{0, 2, "minimal exaggeration"},
	},
	ParamTiming: {
		{9, 10, "staccato visual interruptions"},
		{6, 8, "strong rhythmic composition"},
		{3, 5, "gentle repetition"},
		{0, 2, "static composition"},
	},
	ParamPhysical: {
		{9, 10, "extreme elasticity and squash-stretch"},
		{6, 8, "squash and stretch principles"},
		{3, 5, "subtle material flexibility"},
		{0, 2, "realistic physics"},
	},
	ParamRuleOfThree: {
		{9, 10, "complex triplet patterns"},
		{6, 8, "clear triplet groupings"},
		{3, 5, "subtle triplet hints"},
		{0, 2, "no triplet emphasis"},
	},
	ParamReadability: {
		{9, 10, "crystal clear graphic simplification"},
		{6, 8, "strong silhouette clarity"},
		{3, 5, "subtle graphic emphasis"},
		{0, 2, "complex visual details"},
	},
	ParamTension: {
		{9, 10, "extreme precarious balance"},
		{6, 8, "strong suspenseful moment"},
		{3, 5, "subtle tension"},
		{0, 2, "peaceful balance"},
	},
}
