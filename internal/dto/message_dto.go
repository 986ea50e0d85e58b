package dto

import (
	"github.com/foundercollab/backend/internal/models"
	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id"`
	Content    string    `json:"content"`
}

type ConversationResponse struct {
	OtherProfile models.Profile   `json:"other_profile"`
	Messages     []models.Message `json:"messages"`
	UnreadCount  int              `json:"unread_count"`
}
