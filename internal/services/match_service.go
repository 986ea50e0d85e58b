package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/foundercollab/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrNotParticipant  = errors.New("user is not part of this match")
	ErrCounterpartGone = errors.New("matched founder's profile no longer exists")
)

// MatchView is one match resolved from the caller's perspective: the matched
// side always refers to the counterpart regardless of storage order.
type MatchView struct {
	Match          models.Match
	MatchedProfile models.Profile
	MatchedIdea    models.StartupIdea
}

type MatchService struct {
	db            *gorm.DB
	profiles      *ProfileService
	notifications *NotificationService
	mailer        Mailer
	notifyMin     int
}

func NewMatchService(db *gorm.DB, profiles *ProfileService, notifications *NotificationService, mailer Mailer, notifyMinScore int) *MatchService {
	return &MatchService{
		db:            db,
		profiles:      profiles,
		notifications: notifications,
		mailer:        mailer,
		notifyMin:     notifyMinScore,
	}
}

func scoreInput(f Founder) ScoreInput {
	return ScoreInput{
		Skills:       []string(f.Profile.Skills),
		SkillsNeeded: []string(f.Idea.SkillsNeeded),
		Industry:     f.Idea.Industry,
		Stage:        f.Idea.Stage,
	}
}

// GenerateMatches scores every unordered pair of founders (users with a
// profile and an active idea) and inserts the match rows that do not exist
// yet. The pair is normalized before insert and the unique pair index plus ON
// CONFLICT DO NOTHING make the whole thing idempotent and safe against
// concurrent runs. Newly created matches at or above the notify threshold
// trigger an in-app notification and the email hook for both parties; those
// side effects are logged on failure, never propagated.
func (s *MatchService) GenerateMatches() error {
	founders, err := s.profiles.ListFounders(uuid.Nil)
	if err != nil {
		return fmt.Errorf("failed to load founder pool: %w", err)
	}

	created := 0
	for i := 0; i < len(founders); i++ {
		for j := i + 1; j < len(founders); j++ {
			a, b := founders[i], founders[j]
			f1, f2 := models.OrderPair(a.Profile.UserID, b.Profile.UserID)

			score := CompatibilityScore(scoreInput(a), scoreInput(b))
			reason := MatchReason(scoreInput(a), scoreInput(b))

			match := models.Match{
				ID:                 uuid.New(),
				Founder1ID:         f1,
				Founder2ID:         f2,
				CompatibilityScore: score,
				MatchReason:        &reason,
			}
			result := s.db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "founder1_id"}, {Name: "founder2_id"}},
				DoNothing: true,
			}).Create(&match)
			if result.Error != nil {
				return fmt.Errorf("failed to insert match: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				continue // pair already matched
			}

			created++
			if score >= s.notifyMin {
				s.notifyNewMatch(a, b, match)
			}
		}
	}

	slog.Info("match generation completed", "founders", len(founders), "created", created)
	return nil
}

// notifyNewMatch records an in-app notification and fires the email hook for
// both sides of a fresh match.
func (s *MatchService) notifyNewMatch(a, b Founder, match models.Match) {
	pairs := []struct {
		to    models.Profile
		other models.Profile
	}{
		{to: a.Profile, other: b.Profile},
		{to: b.Profile, other: a.Profile},
	}

	for _, p := range pairs {
		title := "New Co-Founder Match Found!"
		body := fmt.Sprintf("You matched with %s (compatibility %d%%). Open your matches to connect.",
			p.other.FullName, match.CompatibilityScore)

		if _, err := s.notifications.Create(p.to.UserID, title, body, models.NotificationTypeNewMatch, &match.ID); err != nil {
			slog.Error("failed to create match notification", "user_id", p.to.UserID.String(), "error", err)
		}
		if err := s.mailer.Send(p.to.Email, title, matchEmailBody(p.to, p.other, match.CompatibilityScore)); err != nil {
			slog.Error("failed to send match email", "to", p.to.Email, "error", err)
		}
	}
}

func matchEmailBody(to, other models.Profile, score int) string {
	return fmt.Sprintf(`Hi %s,

We found a potential co-founder match for you!

- Potential co-founder: %s
- Compatibility score: %d%%

Log into your FounderCollab dashboard and open the Matches tab to connect.

The FounderCollab Team
`, to.FullName, other.FullName, score)
}

// MatchesForUser returns every match involving userID, highest score first,
// with the counterpart's profile and active idea resolved. A counterpart
// whose profile row is gone is an integrity violation and fails the call; a
// counterpart whose active idea was deactivated is a normal state and that
// match is excluded with a warning.
func (s *MatchService) MatchesForUser(userID uuid.UUID) ([]MatchView, error) {
	var matches []models.Match
	err := s.db.Where("founder1_id = ? OR founder2_id = ?", userID, userID).
		Order("compatibility_score DESC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	counterparts := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		counterparts = append(counterparts, m.CounterpartOf(userID))
	}

	profileByUser, err := s.profilesByUser(counterparts)
	if err != nil {
		return nil, err
	}
	ideaByUser, err := s.activeIdeasByUser(counterparts)
	if err != nil {
		return nil, err
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		otherID := m.CounterpartOf(userID)

		profile, ok := profileByUser[otherID]
		if !ok {
			return nil, fmt.Errorf("match %s: %w", m.ID, ErrCounterpartGone)
		}
		idea, ok := ideaByUser[otherID]
		if !ok {
			slog.Warn("match excluded: counterpart has no active idea",
				"match_id", m.ID.String(), "counterpart_id", otherID.String())
			continue
		}

		views = append(views, MatchView{Match: m, MatchedProfile: profile, MatchedIdea: idea})
	}
	return views, nil
}

// MarkMutual sets the mutual-interest flag on a match. Only a participant may
// flip it, and it is the single permitted Match mutation.
func (s *MatchService) MarkMutual(userID, matchID uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := s.db.Where("id = ?", matchID).First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}

	if match.Founder1ID != userID && match.Founder2ID != userID {
		return nil, ErrNotParticipant
	}

	if !match.IsMutual {
		if err := s.db.Model(&match).Update("is_mutual", true).Error; err != nil {
			return nil, fmt.Errorf("failed to update match: %w", err)
		}
	}
	return &match, nil
}

func (s *MatchService) profilesByUser(userIDs []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
	result := make(map[uuid.UUID]models.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var profiles []models.Profile
	if err := s.db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to load counterpart profiles: %w", err)
	}
	for _, p := range profiles {
		result[p.UserID] = p
	}
	return result, nil
}

func (s *MatchService) activeIdeasByUser(userIDs []uuid.UUID) (map[uuid.UUID]models.StartupIdea, error) {
	result := make(map[uuid.UUID]models.StartupIdea, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var ideas []models.StartupIdea
	if err := s.db.Where("user_id IN ? AND is_active = ?", userIDs, true).Find(&ideas).Error; err != nil {
		return nil, fmt.Errorf("failed to load counterpart ideas: %w", err)
	}
	for _, idea := range ideas {
		result[idea.UserID] = idea
	}
	return result, nil
}
