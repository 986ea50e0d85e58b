package handlers

import (
	"errors"

	"github.com/foundercollab/backend/internal/auth"
	"github.com/foundercollab/backend/internal/dto"
	"github.com/foundercollab/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matches *services.MatchService
}

func NewMatchHandler(matches *services.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// Generate handles POST /matches/generate - runs the batch generator over the
// whole founder pool. Idempotent; safe to trigger repeatedly.
func (h *MatchHandler) Generate(c *fiber.Ctx) error {
	if _, err := auth.UserID(c); err != nil {
		return unauthorized(c)
	}

	if err := h.matches.GenerateMatches(); err != nil {
		return storeError(c, err, "Failed to generate matches")
	}
	return c.JSON(fiber.Map{"message": "Match generation completed"})
}

// List handles GET /matches - the caller's matches with the counterpart's
// profile and idea resolved.
func (h *MatchHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	views, err := h.matches.MatchesForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrCounterpartGone) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "A matched founder's profile no longer exists",
			})
		}
		return storeError(c, err, "Failed to fetch matches")
	}

	resp := make([]dto.MatchResponse, len(views))
	for i, v := range views {
		resp[i] = dto.MatchResponse{
			ID:                 v.Match.ID,
			Founder1ID:         v.Match.Founder1ID,
			Founder2ID:         v.Match.Founder2ID,
			CompatibilityScore: v.Match.CompatibilityScore,
			MatchReason:        v.Match.MatchReason,
			IsMutual:           v.Match.IsMutual,
			CreatedAt:          v.Match.CreatedAt,
			MatchedProfile:     v.MatchedProfile,
			MatchedIdea:        v.MatchedIdea,
		}
	}
	return c.JSON(resp)
}

// MarkMutual handles PUT /matches/:id/mutual.
func (h *MatchHandler) MarkMutual(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid match id")
	}

	match, err := h.matches.MarkMutual(userID, matchID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Match not found",
			})
		case errors.Is(err, services.ErrNotParticipant):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Not your match",
			})
		}
		return storeError(c, err, "Failed to update match")
	}
	return c.JSON(match)
}

// Score handles POST /matches/score - previews the pure compatibility scorer
// without touching any match rows.
func (h *MatchHandler) Score(c *fiber.Ctx) error {
	if _, err := auth.UserID(c); err != nil {
		return unauthorized(c)
	}

	var req dto.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	a := services.ScoreInput{
		Skills:       req.Skills1,
		SkillsNeeded: req.SkillsNeeded1,
		Industry:     req.Industry1,
		Stage:        req.Stage1,
	}
	b := services.ScoreInput{
		Skills:       req.Skills2,
		SkillsNeeded: req.SkillsNeeded2,
		Industry:     req.Industry2,
		Stage:        req.Stage2,
	}

	return c.JSON(dto.ScoreResponse{
		Score:  services.CompatibilityScore(a, b),
		Reason: services.MatchReason(a, b),
	})
}
