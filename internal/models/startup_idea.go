package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StartupIdea is a founder's current venture. At most one active idea per
// user; superseded ideas are deactivated, never deleted.
type StartupIdea struct {
	ID           uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID                  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string                     `gorm:"size:255;not null" json:"title"`
	Description  string                     `gorm:"type:text;not null" json:"description"`
	Industry     string                     `gorm:"size:50;not null" json:"industry"`
	Stage        string                     `gorm:"size:50;not null" json:"stage"`
	SkillsNeeded datatypes.JSONSlice[string] `json:"skills_needed"`
	IsActive     bool                       `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// Industries is the closed set accepted for StartupIdea.Industry.
var Industries = []string{
	"HealthTech", "EdTech", "FinTech", "E-commerce", "SaaS", "AI/ML",
	"CleanTech", "FoodTech", "PropTech", "Gaming", "Other",
}

// Stages is the closed set accepted for StartupIdea.Stage.
var Stages = []string{"Idea", "Prototype", "MVP", "Revenue Stage", "Launched"}

// ValidIndustry reports whether s is one of Industries (case-insensitive).
func ValidIndustry(s string) bool { return containsFold(Industries, s) }

// ValidStage reports whether s is one of Stages (case-insensitive).
func ValidStage(s string) bool { return containsFold(Stages, s) }

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
