package routes

import (
	"time"

	"github.com/foundercollab/backend/internal/config"
	"github.com/foundercollab/backend/internal/handlers"
	"github.com/foundercollab/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	profileHandler *handlers.ProfileHandler,
	matchHandler *handlers.MatchHandler,
	messageHandler *handlers.MessageHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	jwt := middleware.JWTProtected(cfg)

	// Profile + startup idea
	api.Get("/profile", jwt, profileHandler.GetProfile)
	api.Post("/profile", jwt, profileHandler.CreateProfile)
	api.Put("/profile", jwt, profileHandler.UpdateProfile)
	api.Get("/idea", jwt, profileHandler.GetIdea)
	api.Post("/idea", jwt, profileHandler.CreateIdea)
	api.Put("/idea", jwt, profileHandler.UpdateIdea)
	api.Get("/founders", jwt, profileHandler.ListFounders)

	// Matching. Generation walks the full pool, so it gets a stricter limit.
	matches := api.Group("/matches", jwt)
	matches.Post("/generate", limiter.New(limiter.Config{
		Max:               5,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), matchHandler.Generate)
	matches.Get("/", matchHandler.List)
	matches.Post("/score", matchHandler.Score)
	matches.Put("/:id/mutual", matchHandler.MarkMutual)

	// Messaging
	api.Get("/conversations", jwt, messageHandler.Conversations)
	api.Post("/messages", jwt, messageHandler.Send)
	api.Get("/messages/unread-count", jwt, messageHandler.UnreadCount)
	api.Get("/messages/:userId", jwt, messageHandler.Thread)
	api.Put("/messages/:userId/read", jwt, messageHandler.MarkRead)

	// Notifications
	api.Get("/notifications", jwt, notificationHandler.List)
	api.Get("/notifications/unread-count", jwt, notificationHandler.UnreadCount)
	api.Put("/notifications/read-all", jwt, notificationHandler.MarkAllRead)
	api.Put("/notifications/:id/read", jwt, notificationHandler.MarkRead)
}
