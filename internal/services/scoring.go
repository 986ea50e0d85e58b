package services

import (
	"fmt"
	"math"
	"strings"
)

// ScoreInput is one founder's side of a compatibility calculation.
type ScoreInput struct {
	Skills       []string
	SkillsNeeded []string
	Industry     string
	Stage        string
}

// Score weights. Skill fit dominates: up to 35 points per direction, scaled by
// how much of the needed set the other side covers. Industry and stage
// alignment top it up to 100.
const (
	skillFitWeight     = 35
	industryBonus      = 20
	sameStageBonus     = 10
	adjacentStageBonus = 5
)

// stageRank orders stages by maturity, for the adjacency bonus. Unknown
// stages get no rank and never match.
var stageRank = map[string]int{
	"idea":          0,
	"prototype":     1,
	"mvp":           2,
	"revenue stage": 3,
	"launched":      4,
}

// CompatibilityScore returns an integer in [0,100] measuring how well two
// founders complement each other. Pure and commutative: swapping a and b
// yields the same score. Empty skill sets contribute zero, they are not an
// error; unknown industry or stage strings simply never match.
func CompatibilityScore(a, b ScoreInput) int {
	score := float64(skillFitWeight)*coverage(a.Skills, b.SkillsNeeded) +
		float64(skillFitWeight)*coverage(b.Skills, a.SkillsNeeded)

	if industryEqual(a.Industry, b.Industry) {
		score += industryBonus
	}

	switch stageDistance(a.Stage, b.Stage) {
	case 0:
		score += sameStageBonus
	case 1:
		score += adjacentStageBonus
	}

	n := int(math.Round(score))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// MatchReason renders the persisted human-readable explanation for a match.
// Symmetric in its arguments, since one reason is stored per undirected pair.
func MatchReason(a, b ScoreInput) string {
	var parts []string

	aCovers := coverage(a.Skills, b.SkillsNeeded) > 0
	bCovers := coverage(b.Skills, a.SkillsNeeded) > 0
	switch {
	case aCovers && bCovers:
		parts = append(parts, "complementary skills")
	case aCovers || bCovers:
		parts = append(parts, "partial skill fit")
	}

	if industryEqual(a.Industry, b.Industry) {
		parts = append(parts, fmt.Sprintf("same industry (%s)", a.Industry))
	}

	switch stageDistance(a.Stage, b.Stage) {
	case 0:
		parts = append(parts, fmt.Sprintf("same stage (%s)", a.Stage))
	case 1:
		parts = append(parts, "adjacent stages")
	}

	if len(parts) == 0 {
		return "low overlap"
	}
	return strings.Join(parts, ", ")
}

// coverage returns |offered ∩ needed| / |needed| in [0,1]. An empty needed
// set scores zero. Tags compare case-insensitively and duplicates collapse.
func coverage(offered, needed []string) float64 {
	neededSet := tagSet(needed)
	if len(neededSet) == 0 {
		return 0
	}
	hits := 0
	for tag := range tagSet(offered) {
		if neededSet[tag] {
			hits++
		}
	}
	return float64(hits) / float64(len(neededSet))
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = true
		}
	}
	return set
}

func industryEqual(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}

// stageDistance returns the maturity-ladder distance between two stages, or
// -1 when either stage is unknown.
func stageDistance(a, b string) int {
	ra, ok := stageRank[strings.ToLower(strings.TrimSpace(a))]
	if !ok {
		return -1
	}
	rb, ok := stageRank[strings.ToLower(strings.TrimSpace(b))]
	if !ok {
		return -1
	}
	d := ra - rb
	if d < 0 {
		d = -d
	}
	return d
}
