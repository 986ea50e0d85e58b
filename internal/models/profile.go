package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is a founder's public profile. Exactly one per user, created right
// after signup; the identity provider owns the account itself.
type Profile struct {
	ID          uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName    string                     `gorm:"size:255;not null" json:"full_name"`
	Email       string                     `gorm:"size:255;not null" json:"email"`
	PhoneNumber *string                    `gorm:"size:50" json:"phone_number"`
	Bio         *string                    `gorm:"type:text" json:"bio"`
	LinkedinURL *string                    `gorm:"size:500" json:"linkedin_url"`
	GithubURL   *string                    `gorm:"size:500" json:"github_url"`
	Skills      datatypes.JSONSlice[string] `json:"skills"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}
