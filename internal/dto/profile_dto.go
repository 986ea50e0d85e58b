package dto

import "github.com/foundercollab/backend/internal/models"

type ProfileRequest struct {
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	PhoneNumber *string  `json:"phone_number"`
	Bio         *string  `json:"bio"`
	LinkedinURL *string  `json:"linkedin_url"`
	GithubURL   *string  `json:"github_url"`
	Skills      []string `json:"skills"`
}

type IdeaRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Industry     string   `json:"industry"`
	Stage        string   `json:"stage"`
	SkillsNeeded []string `json:"skills_needed"`
}

type FounderResponse struct {
	Profile     models.Profile     `json:"profile"`
	StartupIdea models.StartupIdea `json:"startup_idea"`
}
