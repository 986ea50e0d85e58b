package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/foundercollab/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyMessage = errors.New("message content is empty")
	ErrSelfMessage  = errors.New("cannot message yourself")
)

// Conversation is the ordered thread between the caller and one counterpart.
type Conversation struct {
	OtherProfile models.Profile
	Messages     []models.Message
	UnreadCount  int
}

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// SendMessage inserts one unread message. Content must be non-empty after
// trimming; validation failures never reach the store.
func (s *MessageService) SendMessage(senderID, receiverID uuid.UUID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}

	msg := models.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &msg, nil
}

// ConversationsForUser groups every message involving userID into one
// conversation per counterpart. Conversations appear in the order their
// counterpart first shows up in the timestamp-ordered stream; messages inside
// each keep that order; unread counts only consider messages addressed to
// userID.
func (s *MessageService) ConversationsForUser(userID uuid.UUID) ([]Conversation, error) {
	var messages []models.Message
	err := s.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	var order []uuid.UUID
	grouped := make(map[uuid.UUID]*Conversation)
	for _, msg := range messages {
		otherID := msg.SenderID
		if msg.SenderID == userID {
			otherID = msg.ReceiverID
		}

		conv, ok := grouped[otherID]
		if !ok {
			conv = &Conversation{}
			grouped[otherID] = conv
			order = append(order, otherID)
		}
		conv.Messages = append(conv.Messages, msg)
		if msg.ReceiverID == userID && !msg.IsRead {
			conv.UnreadCount++
		}
	}

	profileByUser, err := s.counterpartProfiles(order)
	if err != nil {
		return nil, err
	}

	conversations := make([]Conversation, 0, len(order))
	for _, otherID := range order {
		profile, ok := profileByUser[otherID]
		if !ok {
			slog.Warn("conversation skipped: counterpart profile missing", "counterpart_id", otherID.String())
			continue
		}
		conv := grouped[otherID]
		conv.OtherProfile = profile
		conversations = append(conversations, *conv)
	}
	return conversations, nil
}

// MessagesWith returns the flat thread between userID and otherID, oldest
// first.
func (s *MessageService) MessagesWith(userID, otherID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID,
	).Order("created_at ASC").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}
	return messages, nil
}

// MarkMessagesAsRead flips the read flag on every unread message from otherID
// to userID. Idempotent: a repeat call affects zero rows.
func (s *MessageService) MarkMessagesAsRead(userID, otherID uuid.UUID) error {
	err := s.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherID, userID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

// UnreadCount returns the total number of unread messages addressed to userID.
func (s *MessageService) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func (s *MessageService) counterpartProfiles(userIDs []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
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
