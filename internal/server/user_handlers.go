package server

import (
	"github.com/gofiber/fiber/v2"

	"staffhub/internal/models"
	"staffhub/internal/service"
)

// GetColleagues handles GET /api/users. Returns every active user.
func (s *Server) GetColleagues(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	users, err := s.userService.ListColleagues(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(models.PublicUsers(users))
}

// GetMyProfile handles GET /api/users/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	return c.JSON(actor.Public())
}

// UpdateMyProfile handles PUT /api/users/me.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}

	var in service.UpdateProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	updated, err := s.userService.UpdateProfile(c.Context(), actor, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(updated.Public())
}

// GetUserProfile handles GET /api/users/:id.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	user, err := s.userService.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user.Public())
}
