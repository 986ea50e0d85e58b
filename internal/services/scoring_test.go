package services

import "testing"

func TestCompatibilityScoreCommutative(t *testing.T) {
	cases := []struct {
		name string
		a, b ScoreInput
	}{
		{
			name: "complementary pair",
			a:    ScoreInput{Skills: []string{"Design"}, SkillsNeeded: []string{"Backend"}, Industry: "SaaS", Stage: "MVP"},
			b:    ScoreInput{Skills: []string{"Backend"}, SkillsNeeded: []string{"Design"}, Industry: "SaaS", Stage: "MVP"},
		},
		{
			name: "one-sided fit",
			a:    ScoreInput{Skills: []string{"Sales"}, SkillsNeeded: []string{"DevOps"}, Industry: "FinTech", Stage: "Idea"},
			b:    ScoreInput{Skills: []string{"Marketing"}, SkillsNeeded: []string{"Sales"}, Industry: "Gaming", Stage: "Launched"},
		},
		{
			name: "empty skill sets",
			a:    ScoreInput{Industry: "SaaS", Stage: "MVP"},
			b:    ScoreInput{Industry: "SaaS", Stage: "MVP"},
		},
		{
			name: "unknown stage and industry",
			a:    ScoreInput{Skills: []string{"Legal"}, SkillsNeeded: []string{"HR"}, Industry: "Quantum", Stage: "Dreaming"},
			b:    ScoreInput{Skills: []string{"HR"}, SkillsNeeded: []string{"Legal"}, Industry: "quantum", Stage: "Dreaming"},
		},
	}

	for _, tc := range cases {
		ab := CompatibilityScore(tc.a, tc.b)
		ba := CompatibilityScore(tc.b, tc.a)
		if ab != ba {
			t.Fatalf("%s: score not commutative: score(a,b)=%d score(b,a)=%d", tc.name, ab, ba)
		}
		if ab < 0 || ab > 100 {
			t.Fatalf("%s: score %d out of [0,100]", tc.name, ab)
		}
	}
}

func TestCompatibilityScorePerfectPair(t *testing.T) {
	alice := ScoreInput{Skills: []string{"Design"}, SkillsNeeded: []string{"Backend"}, Industry: "SaaS", Stage: "MVP"}
	bob := ScoreInput{Skills: []string{"Backend"}, SkillsNeeded: []string{"Design"}, Industry: "SaaS", Stage: "MVP"}

	if got := CompatibilityScore(alice, bob); got != 100 {
		t.Fatalf("perfectly complementary pair should score 100, got %d", got)
	}
}

func TestCompatibilityScoreComplementaryBeatsDisjoint(t *testing.T) {
	alice := ScoreInput{Skills: []string{"Design"}, SkillsNeeded: []string{"Backend"}, Industry: "SaaS", Stage: "MVP"}
	bob := ScoreInput{Skills: []string{"Backend"}, SkillsNeeded: []string{"Design"}, Industry: "SaaS", Stage: "MVP"}
	carol := ScoreInput{Skills: []string{"Design"}, SkillsNeeded: []string{"Design"}, Industry: "Gaming", Stage: "Launched"}

	aliceBob := CompatibilityScore(alice, bob)
	aliceCarol := CompatibilityScore(alice, carol)
	if aliceBob <= aliceCarol {
		t.Fatalf("complementary pair (%d) must outscore disjoint pair (%d)", aliceBob, aliceCarol)
	}
}

func TestCompatibilityScoreEmptySkillSets(t *testing.T) {
	a := ScoreInput{Industry: "EdTech", Stage: "Idea"}
	b := ScoreInput{Industry: "EdTech", Stage: "Idea"}

	// No skill component; industry (20) and stage (10) bonuses remain.
	if got := CompatibilityScore(a, b); got != 30 {
		t.Fatalf("empty skill sets should score 30, got %d", got)
	}
}

func TestCompatibilityScoreAdjacentStage(t *testing.T) {
	a := ScoreInput{Industry: "FinTech", Stage: "MVP"}
	b := ScoreInput{Industry: "FinTech", Stage: "Prototype"}
	c := ScoreInput{Industry: "FinTech", Stage: "Launched"}

	adjacent := CompatibilityScore(a, b)
	distant := CompatibilityScore(a, c)
	if adjacent != 25 {
		t.Fatalf("adjacent stages should score 25, got %d", adjacent)
	}
	if distant != 20 {
		t.Fatalf("two-step stage gap should get no stage bonus, got %d", distant)
	}
}

func TestCompatibilityScoreCaseAndDuplicates(t *testing.T) {
	a := ScoreInput{Skills: []string{"backend", "Backend", " BACKEND "}, SkillsNeeded: []string{"design"}, Industry: "saas", Stage: "mvp"}
	b := ScoreInput{Skills: []string{"DESIGN"}, SkillsNeeded: []string{"Backend"}, Industry: "SaaS", Stage: "MVP"}

	if got := CompatibilityScore(a, b); got != 100 {
		t.Fatalf("tag comparison should ignore case and duplicates, got %d", got)
	}
}

func TestCompatibilityScorePartialCoverage(t *testing.T) {
	a := ScoreInput{Skills: []string{"Backend"}, SkillsNeeded: []string{}}
	b := ScoreInput{Skills: []string{}, SkillsNeeded: []string{"Backend", "Design"}}

	// One of b's two needed skills covered: 35 * 1/2, everything else zero.
	if got := CompatibilityScore(a, b); got != 18 {
		t.Fatalf("half coverage should round to 18, got %d", got)
	}
}

func TestMatchReason(t *testing.T) {
	alice := ScoreInput{Skills: []string{"Design"}, SkillsNeeded: []string{"Backend"}, Industry: "SaaS", Stage: "MVP"}
	bob := ScoreInput{Skills: []string{"Backend"}, SkillsNeeded: []string{"Design"}, Industry: "SaaS", Stage: "MVP"}

	got := MatchReason(alice, bob)
	want := "complementary skills, same industry (SaaS), same stage (MVP)"
	if got != want {
		t.Fatalf("reason = %q, want %q", got, want)
	}

	carol := ScoreInput{Skills: []string{"HR"}, SkillsNeeded: []string{"Legal"}, Industry: "Gaming", Stage: "Launched"}
	if got := MatchReason(alice, carol); got != "low overlap" {
		t.Fatalf("disjoint pair reason = %q, want %q", got, "low overlap")
	}
}
