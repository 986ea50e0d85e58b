package handlers

import (
	"errors"

	"github.com/foundercollab/backend/internal/auth"
	"github.com/foundercollab/backend/internal/dto"
	"github.com/foundercollab/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Conversations handles GET /conversations - one thread per counterpart.
func (h *MessageHandler) Conversations(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	conversations, err := h.messages.ConversationsForUser(userID)
	if err != nil {
		return storeError(c, err, "Failed to fetch conversations")
	}

	resp := make([]dto.ConversationResponse, len(conversations))
	for i, conv := range conversations {
		resp[i] = dto.ConversationResponse{
			OtherProfile: conv.OtherProfile,
			Messages:     conv.Messages,
			UnreadCount:  conv.UnreadCount,
		}
	}
	return c.JSON(resp)
}

// Thread handles GET /messages/:userId - the flat thread with one counterpart.
func (h *MessageHandler) Thread(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	messages, err := h.messages.MessagesWith(userID, otherID)
	if err != nil {
		return storeError(c, err, "Failed to fetch messages")
	}
	return c.JSON(messages)
}

// Send handles POST /messages.
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ReceiverID == uuid.Nil {
		return badRequest(c, "Receiver is required")
	}

	msg, err := h.messages.SendMessage(userID, req.ReceiverID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			return badRequest(c, "Message content is empty")
		case errors.Is(err, services.ErrSelfMessage):
			return badRequest(c, "Cannot message yourself")
		}
		return storeError(c, err, "Failed to send message")
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// MarkRead handles PUT /messages/:userId/read - marks everything from that
// counterpart as read. Repeat calls are no-ops.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.messages.MarkMessagesAsRead(userID, otherID); err != nil {
		return storeError(c, err, "Failed to mark messages read")
	}
	return c.JSON(fiber.Map{"message": "Messages marked as read"})
}

// UnreadCount handles GET /messages/unread-count.
func (h *MessageHandler) UnreadCount(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	count, err := h.messages.UnreadCount(userID)
	if err != nil {
		return storeError(c, err, "Failed to count unread messages")
	}
	return c.JSON(dto.UnreadCountResponse{UnreadCount: count})
}
