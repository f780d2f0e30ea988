package scoring

import (
	"testing"

	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
	"github.com/kailas-cloud/assessrec/internal/domain/query"
)

func mustQuery(t *testing.T, raw string) query.Query {
	t.Helper()
	q, err := query.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return q
}

func TestScore(t *testing.T) {
	pythonTest := assessment.Assessment{
		Name: "Python Coding Test", Description: "assess python skills", TestTypes: []string{"Knowledge"},
	}
	teamTest := assessment.Assessment{
		Name: "Team Collaboration Test", TestTypes: []string{"Personality"},
	}
	jsTest := assessment.Assessment{
		Name: "JavaScript", TestTypes: []string{"Knowledge & Skills"},
	}
	verifyG := assessment.Assessment{
		Name:        "Verify G+",
		Description: "General cognitive ability test measuring reasoning and problem-solving skills.",
		TestTypes:   []string{"Ability & Aptitude"},
	}

	tests := []struct {
		name  string
		a     assessment.Assessment
		query string
		want  int
	}{
		// tokens: python name+desc (15), test name (10); boosts: python text 15, knowledge 10
		{"tech match", pythonTest, "python collaborate test", 50},
		// tokens: test name (10); boosts: collaborate with personality 15
		{"behavior match", teamTest, "python collaborate test", 25},
		// phrase in name 50, token 10, java+javascript text 30, java+javascript knowledge 20
		{"overlapping tech keywords", jsTest, "javascript", 110},
		// tokens: desc 5+5; boosts: cognitive 15, reasoning 15
		{"cognitive match", verifyG, "cognitive reasoning", 40},
		// phrase name 50 and desc 20, tokens 15, boosts 25
		{"phrase everywhere", pythonTest, "python", 50 + 20 + 10 + 5 + 15 + 10},
		{"no match", pythonTest, "xyz nonmatching query", 0},
		{"empty fields", assessment.Assessment{}, "python", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(&tc.a, mustQuery(t, tc.query))
			if got != tc.want {
				t.Errorf("Score() = %d, want %d (breakdown %+v)", got, tc.want, Explain(&tc.a, mustQuery(t, tc.query)))
			}
		})
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	a := assessment.Assessment{
		Name: "Python (New)", Description: "Measures knowledge of Python programming.",
		TestTypes: []string{"Knowledge & Skills"},
	}

	upper := Score(&a, mustQuery(t, "PYTHON"))
	lower := Score(&a, mustQuery(t, "python"))
	if upper != lower {
		t.Errorf("PYTHON scored %d, python scored %d", upper, lower)
	}
	if lower == 0 {
		t.Error("expected positive score")
	}
}

func TestScore_SubstringInsideWord(t *testing.T) {
	a := assessment.Assessment{Name: "Teamwork Styles"}
	if got := Score(&a, mustQuery(t, "team")); got == 0 {
		t.Error("token inside a longer word must count")
	}
}

func TestScore_ShortTokensIgnored(t *testing.T) {
	a := assessment.Assessment{Name: "IT Help Desk"}
	// "it" is too short to be a token and the whole phrase does not match.
	if got := Score(&a, mustQuery(t, "it support")); got != 0 {
		t.Errorf("Score() = %d, want 0", got)
	}
}

func TestExplain_Breakdown(t *testing.T) {
	a := assessment.Assessment{
		Name: "Python Coding Test", Description: "assess python skills", TestTypes: []string{"Knowledge"},
	}
	b := Explain(&a, mustQuery(t, "python collaborate test"))

	if b.Phrase != 0 {
		t.Errorf("Phrase = %d, want 0", b.Phrase)
	}
	if b.Tokens != 25 {
		t.Errorf("Tokens = %d, want 25", b.Tokens)
	}
	if b.Boosts["tech_text"] != 15 || b.Boosts["tech_knowledge"] != 10 {
		t.Errorf("Boosts = %v", b.Boosts)
	}
	if _, ok := b.Boosts["behavior"]; ok {
		t.Error("behavior boost requires a personality or behavior test type")
	}
	if b.Total() != 50 {
		t.Errorf("Total() = %d, want 50", b.Total())
	}
}

func TestScore_NeverNegative(t *testing.T) {
	queries := []string{"x y z", "python", "communication teamwork", "aptitude"}
	records := []assessment.Assessment{
		{},
		{Name: "OPQ32", TestTypes: []string{"Personality & Behavior"}},
		{Description: "aptitude", TestTypes: []string{"Ability & Aptitude"}},
	}
	for _, raw := range queries {
		for i := range records {
			if s := Score(&records[i], mustQuery(t, raw)); s < 0 {
				t.Errorf("Score(%d, %q) = %d", i, raw, s)
			}
		}
	}
}
