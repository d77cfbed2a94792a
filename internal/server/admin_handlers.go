package server

import (
	"github.com/gofiber/fiber/v2"

	"staffhub/internal/models"
)

type setActiveRequest struct {
	Active bool `json:"active"`
}

// GetAdminStats handles GET /api/admin/stats. Admin only.
func (s *Server) GetAdminStats(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	stats, err := s.statsService.AdminStats(c.Context(), actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}

// GetManagedUsers handles GET /api/admin/users. Returns every non-admin
// user, deactivated ones included. Admin only.
func (s *Server) GetManagedUsers(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	users, err := s.userService.ListUsers(c.Context(), actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(models.PublicUsers(users))
}

// SetUserActive handles PATCH /api/admin/users/:id/active. Admin only.
func (s *Server) SetUserActive(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}

	var req setActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	user, err := s.userService.SetActive(c.Context(), actor, c.Params("id"), req.Active)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user.Public())
}

// DeleteUser handles DELETE /api/admin/users/:id. Admin only; cascades to
// the user's posts, comments, likes, and registrations.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	if err := s.userService.DeleteUser(c.Context(), actor, c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}

// GetPendingPosts handles GET /api/admin/posts/pending. Admin only.
func (s *Server) GetPendingPosts(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	posts, err := s.postService.PendingPosts(c.Context(), actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// ApprovePost handles POST /api/admin/posts/:id/approve. Admin only.
func (s *Server) ApprovePost(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	post, err := s.postService.ApprovePost(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// RejectPost handles DELETE /api/admin/posts/:id. Rejection deletes the
// record outright. Admin only.
func (s *Server) RejectPost(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	if err := s.postService.RejectPost(c.Context(), actor, c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "post rejected"})
}

// GetTrainingRegistrations handles GET /api/admin/trainings/:id/registrations.
// Admin only.
func (s *Server) GetTrainingRegistrations(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	regs, err := s.regService.ListByTraining(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(regs)
}

// ApproveRegistration handles POST /api/admin/registrations/:id/approve.
func (s *Server) ApproveRegistration(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	reg, err := s.regService.Approve(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reg)
}

// RejectRegistration handles POST /api/admin/registrations/:id/reject.
func (s *Server) RejectRegistration(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	reg, err := s.regService.Reject(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reg)
}

// CompleteRegistration handles POST /api/admin/registrations/:id/complete.
func (s *Server) CompleteRegistration(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	reg, err := s.regService.Complete(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reg)
}
