package handlers

import (
	"errors"

	"github.com/foundercollab/backend/internal/auth"
	"github.com/foundercollab/backend/internal/dto"
	"github.com/foundercollab/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /notifications, newest first.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	notifications, err := h.notifications.List(userID)
	if err != nil {
		return storeError(c, err, "Failed to fetch notifications")
	}
	return c.JSON(notifications)
}

// MarkRead handles PUT /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	if err := h.notifications.MarkRead(userID, notificationID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Notification not found",
			})
		}
		return storeError(c, err, "Failed to mark notification read")
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// MarkAllRead handles PUT /notifications/read-all. Idempotent.
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.notifications.MarkAllRead(userID); err != nil {
		return storeError(c, err, "Failed to mark notifications read")
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	count, err := h.notifications.UnreadCount(userID)
	if err != nil {
		return storeError(c, err, "Failed to count unread notifications")
	}
	return c.JSON(dto.UnreadCountResponse{UnreadCount: count})
}
