package scoring

// Base match points.
const (
	phraseInName        = 50
	phraseInDescription = 20
	tokenInName         = 10
	tokenInDescription  = 5
	tokenInTestTypes    = 8
)

// target selects what a keyword boost inspects on the assessment.
type target int

const (
	// keywordInText requires the keyword itself in the name or description.
	keywordInText target = iota
	// labelInTestTypes requires one of the rule needles in the joined test types.
	labelInTestTypes
)

// boostRule awards points once per keyword that occurs in the query and whose
// condition holds for the assessment. Rules are independent and additive: the
// same keyword may earn points from several rules.
type boostRule struct {
	name     string
	keywords []string
	target   target
	needles  []string
	points   int
}

var (
	techKeywords      = []string{"java", "python", "sql", "javascript", "coding", "programming"}
	behaviorKeywords  = []string{"collaborate", "personality", "behavior", "teamwork", "communication"}
	cognitiveKeywords = []string{"cognitive", "aptitude", "reasoning", "analytical"}
)

var boostRules = []boostRule{
	{name: "tech_text", keywords: techKeywords, target: keywordInText, points: 15},
	{name: "tech_knowledge", keywords: techKeywords, target: labelInTestTypes, needles: []string{"knowledge"}, points: 10},
	{
		name: "behavior", keywords: behaviorKeywords, target: labelInTestTypes,
		needles: []string{"personality", "behavior"}, points: 15,
	},
	{
		name: "cognitive", keywords: cognitiveKeywords, target: labelInTestTypes,
		needles: []string{"ability", "aptitude"}, points: 15,
	},
}
