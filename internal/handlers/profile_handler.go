package handlers

import (
	"errors"

	"github.com/foundercollab/backend/internal/auth"
	"github.com/foundercollab/backend/internal/dto"
	"github.com/foundercollab/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile handles GET /profile - the caller's own profile. 404 means "not
// set up yet", which the client treats as a cue to show profile setup.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	profile, err := h.profiles.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return storeError(c, err, "Failed to fetch profile")
	}
	return c.JSON(profile)
}

// CreateProfile handles POST /profile.
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.profiles.CreateProfile(userID, profileInput(req))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			return badRequest(c, "Full name and email are required")
		case errors.Is(err, services.ErrProfileExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile already exists",
			})
		}
		return storeError(c, err, "Failed to create profile")
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateProfile handles PUT /profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.profiles.UpdateProfile(userID, profileInput(req))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			return badRequest(c, "Full name and email are required")
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return storeError(c, err, "Failed to update profile")
	}
	return c.JSON(profile)
}

// GetIdea handles GET /idea - the caller's active startup idea.
func (h *ProfileHandler) GetIdea(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	idea, err := h.profiles.GetActiveIdea(userID)
	if err != nil {
		if errors.Is(err, services.ErrIdeaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "No active startup idea",
			})
		}
		return storeError(c, err, "Failed to fetch startup idea")
	}
	return c.JSON(idea)
}

// CreateIdea handles POST /idea - supersedes any previous active idea.
func (h *ProfileHandler) CreateIdea(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.IdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	idea, err := h.profiles.CreateIdea(userID, ideaInput(req))
	if err != nil {
		if msg, ok := ideaValidationMessage(err); ok {
			return badRequest(c, msg)
		}
		return storeError(c, err, "Failed to create startup idea")
	}
	return c.Status(fiber.StatusCreated).JSON(idea)
}

// UpdateIdea handles PUT /idea.
func (h *ProfileHandler) UpdateIdea(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.IdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	idea, err := h.profiles.UpdateIdea(userID, ideaInput(req))
	if err != nil {
		if msg, ok := ideaValidationMessage(err); ok {
			return badRequest(c, msg)
		}
		if errors.Is(err, services.ErrIdeaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "No active startup idea",
			})
		}
		return storeError(c, err, "Failed to update startup idea")
	}
	return c.JSON(idea)
}

// ListFounders handles GET /founders - every other founder with an active
// idea, for the browse tab.
func (h *ProfileHandler) ListFounders(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	founders, err := h.profiles.ListFounders(userID)
	if err != nil {
		return storeError(c, err, "Failed to fetch founders")
	}

	resp := make([]dto.FounderResponse, len(founders))
	for i, f := range founders {
		resp[i] = dto.FounderResponse{Profile: f.Profile, StartupIdea: f.Idea}
	}
	return c.JSON(resp)
}

func profileInput(req dto.ProfileRequest) services.ProfileInput {
	return services.ProfileInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		LinkedinURL: req.LinkedinURL,
		GithubURL:   req.GithubURL,
		Skills:      req.Skills,
	}
}

func ideaInput(req dto.IdeaRequest) services.IdeaInput {
	return services.IdeaInput{
		Title:        req.Title,
		Description:  req.Description,
		Industry:     req.Industry,
		Stage:        req.Stage,
		SkillsNeeded: req.SkillsNeeded,
	}
}

func ideaValidationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrMissingField):
		return "Title and description are required", true
	case errors.Is(err, services.ErrInvalidIndustry):
		return "Unknown industry", true
	case errors.Is(err, services.ErrInvalidStage):
		return "Unknown stage", true
	}
	return "", false
}
