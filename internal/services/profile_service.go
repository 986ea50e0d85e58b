package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/foundercollab/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrIdeaNotFound    = errors.New("no active startup idea")
	ErrMissingField    = errors.New("required field is empty")
	ErrInvalidIndustry = errors.New("unknown industry")
	ErrInvalidStage    = errors.New("unknown stage")
)

// Founder is a profile paired with its active startup idea - the unit the
// match generator operates on.
type Founder struct {
	Profile models.Profile
	Idea    models.StartupIdea
}

// ProfileInput carries the mutable profile fields.
type ProfileInput struct {
	FullName    string
	Email       string
	PhoneNumber *string
	Bio         *string
	LinkedinURL *string
	GithubURL   *string
	Skills      []string
}

// IdeaInput carries the mutable startup-idea fields.
type IdeaInput struct {
	Title        string
	Description  string
	Industry     string
	Stage        string
	SkillsNeeded []string
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the profile owned by userID. A missing profile is a
// normal "not set up yet" state and surfaces as ErrProfileNotFound.
func (s *ProfileService) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

func (s *ProfileService) CreateProfile(userID uuid.UUID, in ProfileInput) (*models.Profile, error) {
	if err := validateProfileInput(in); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Profile{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if count > 0 {
		return nil, ErrProfileExists
	}

	profile := models.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		FullName:    strings.TrimSpace(in.FullName),
		Email:       strings.TrimSpace(in.Email),
		PhoneNumber: in.PhoneNumber,
		Bio:         in.Bio,
		LinkedinURL: in.LinkedinURL,
		GithubURL:   in.GithubURL,
		Skills:      datatypes.NewJSONSlice(in.Skills),
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile overwrites the mutable fields of the caller's own profile.
func (s *ProfileService) UpdateProfile(userID uuid.UUID, in ProfileInput) (*models.Profile, error) {
	if err := validateProfileInput(in); err != nil {
		return nil, err
	}

	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(in.FullName)
	profile.Email = strings.TrimSpace(in.Email)
	profile.PhoneNumber = in.PhoneNumber
	profile.Bio = in.Bio
	profile.LinkedinURL = in.LinkedinURL
	profile.GithubURL = in.GithubURL
	profile.Skills = datatypes.NewJSONSlice(in.Skills)

	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// GetActiveIdea returns userID's active startup idea.
func (s *ProfileService) GetActiveIdea(userID uuid.UUID) (*models.StartupIdea, error) {
	var idea models.StartupIdea
	err := s.db.Where("user_id = ? AND is_active = ?", userID, true).First(&idea).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIdeaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load startup idea: %w", err)
	}
	return &idea, nil
}

// CreateIdea inserts a new active idea, deactivating any previous active one
// in the same transaction so at most one idea per user is ever active.
func (s *ProfileService) CreateIdea(userID uuid.UUID, in IdeaInput) (*models.StartupIdea, error) {
	if err := validateIdeaInput(in); err != nil {
		return nil, err
	}

	idea := models.StartupIdea{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Industry:     in.Industry,
		Stage:        in.Stage,
		SkillsNeeded: datatypes.NewJSONSlice(in.SkillsNeeded),
		IsActive:     true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.StartupIdea{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&idea).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create startup idea: %w", err)
	}
	return &idea, nil
}

// UpdateIdea overwrites the mutable fields of the caller's active idea.
func (s *ProfileService) UpdateIdea(userID uuid.UUID, in IdeaInput) (*models.StartupIdea, error) {
	if err := validateIdeaInput(in); err != nil {
		return nil, err
	}

	idea, err := s.GetActiveIdea(userID)
	if err != nil {
		return nil, err
	}

	idea.Title = strings.TrimSpace(in.Title)
	idea.Description = strings.TrimSpace(in.Description)
	idea.Industry = in.Industry
	idea.Stage = in.Stage
	idea.SkillsNeeded = datatypes.NewJSONSlice(in.SkillsNeeded)

	if err := s.db.Save(idea).Error; err != nil {
		return nil, fmt.Errorf("failed to update startup idea: %w", err)
	}
	return idea, nil
}

// ListFounders returns every profile that has an active idea, excluding
// excludeUserID (pass uuid.Nil to keep everyone). Used for the browse tab and
// as the match generator's candidate pool.
func (s *ProfileService) ListFounders(excludeUserID uuid.UUID) ([]Founder, error) {
	var profiles []models.Profile
	query := s.db.Order("created_at ASC")
	if excludeUserID != uuid.Nil {
		query = query.Where("user_id <> ?", excludeUserID)
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	var ideas []models.StartupIdea
	if err := s.db.Where("is_active = ?", true).Find(&ideas).Error; err != nil {
		return nil, fmt.Errorf("failed to list startup ideas: %w", err)
	}
	ideaByUser := make(map[uuid.UUID]models.StartupIdea, len(ideas))
	for _, idea := range ideas {
		ideaByUser[idea.UserID] = idea
	}

	founders := make([]Founder, 0, len(profiles))
	for _, p := range profiles {
		idea, ok := ideaByUser[p.UserID]
		if !ok {
			continue
		}
		founders = append(founders, Founder{Profile: p, Idea: idea})
	}
	return founders, nil
}

func validateProfileInput(in ProfileInput) error {
	if strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Email) == "" {
		return ErrMissingField
	}
	return nil
}

func validateIdeaInput(in IdeaInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return ErrMissingField
	}
	if !models.ValidIndustry(in.Industry) {
		return ErrInvalidIndustry
	}
	if !models.ValidStage(in.Stage) {
		return ErrInvalidStage
	}
	return nil
}
