package dto

import (
	"time"

	"github.com/foundercollab/backend/internal/models"
	"github.com/google/uuid"
)

type MatchResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Founder1ID         uuid.UUID          `json:"founder1_id"`
	Founder2ID         uuid.UUID          `json:"founder2_id"`
	CompatibilityScore int                `json:"compatibility_score"`
	MatchReason        *string            `json:"match_reason"`
	IsMutual           bool               `json:"is_mutual"`
	CreatedAt          time.Time          `json:"created_at"`
	MatchedProfile     models.Profile     `json:"matched_profile"`
	MatchedIdea        models.StartupIdea `json:"matched_idea"`
}

// ScoreRequest mirrors the pure scorer's signature so compatibility can be
// previewed without running the batch generator.
type ScoreRequest struct {
	Skills1       []string `json:"skills1"`
	SkillsNeeded1 []string `json:"skills_needed1"`
	Skills2       []string `json:"skills2"`
	SkillsNeeded2 []string `json:"skills_needed2"`
	Industry1     string   `json:"industry1"`
	Industry2     string   `json:"industry2"`
	Stage1        string   `json:"stage1"`
	Stage2        string   `json:"stage2"`
}

type ScoreResponse struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}
