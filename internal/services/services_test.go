package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/foundercollab/backend/internal/database"
	"github.com/foundercollab/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// testDB opens a fresh in-memory sqlite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// spyMailer records sent mail instead of delivering it.
type spyMailer struct {
	mu   sync.Mutex
	sent []string // recipient addresses in send order
}

func (m *spyMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func (m *spyMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type founderSpec struct {
	name     string
	skills   []string
	needed   []string
	industry string
	stage    string
}

// seedFounder inserts a profile plus active idea and returns the user ID.
func seedFounder(t *testing.T, db *gorm.DB, spec founderSpec) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	profile := models.Profile{
		ID:       uuid.New(),
		UserID:   userID,
		FullName: spec.name,
		Email:    spec.name + "@example.com",
		Skills:   datatypes.NewJSONSlice(spec.skills),
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile %s: %v", spec.name, err)
	}
	idea := models.StartupIdea{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        spec.name + "'s startup",
		Description:  "test venture",
		Industry:     spec.industry,
		Stage:        spec.stage,
		SkillsNeeded: datatypes.NewJSONSlice(spec.needed),
		IsActive:     true,
	}
	if err := db.Create(&idea).Error; err != nil {
		t.Fatalf("seed idea %s: %v", spec.name, err)
	}
	return userID
}

func newTestMatchService(db *gorm.DB, mailer Mailer, notifyMin int) *MatchService {
	profiles := NewProfileService(db)
	notifications := NewNotificationService(db)
	return NewMatchService(db, profiles, notifications, mailer, notifyMin)
}
