package models

import (
	"time"

	"github.com/google/uuid"
)

// Match is an undirected compatibility edge between two founders. The pair is
// stored with the smaller UUID in Founder1ID so a single unique index covers
// both reference orders. Rows are never deleted; IsMutual is the only field
// that changes after insert.
type Match struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Founder1ID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair;index" json:"founder1_id"`
	Founder2ID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair;index" json:"founder2_id"`
	CompatibilityScore int       `gorm:"not null" json:"compatibility_score"`
	MatchReason        *string   `gorm:"type:text" json:"match_reason"`
	IsMutual           bool      `gorm:"default:false" json:"is_mutual"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CounterpartOf returns the other side of the pair relative to userID.
func (m Match) CounterpartOf(userID uuid.UUID) uuid.UUID {
	if m.Founder1ID == userID {
		return m.Founder2ID
	}
	return m.Founder1ID
}

// OrderPair returns the two user IDs in storage order (smaller UUID first).
func OrderPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() > b.String() {
		return b, a
	}
	return a, b
}
