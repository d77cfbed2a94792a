package server

import (
	"github.com/gofiber/fiber/v2"

	"staffhub/internal/models"
	"staffhub/internal/service"
)

type registerTrainingRequest struct {
	Notes string `json:"notes"`
}

// GetTrainings handles GET /api/trainings. Users see released trainings;
// admins also see drafts.
func (s *Server) GetTrainings(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	trainings, err := s.trainingService.ListTrainings(c.Context(), actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(trainings)
}

// CreateTraining handles POST /api/trainings. Admin only.
func (s *Server) CreateTraining(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}

	var in service.TrainingInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	training, err := s.trainingService.CreateTraining(c.Context(), actor, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(training)
}

// GetTraining handles GET /api/trainings/:id.
func (s *Server) GetTraining(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	training, err := s.trainingService.GetTraining(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(training)
}

// UpdateTraining handles PUT /api/trainings/:id. Admin only.
func (s *Server) UpdateTraining(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}

	var in service.TrainingInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	training, err := s.trainingService.UpdateTraining(c.Context(), actor, c.Params("id"), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(training)
}

// ReleaseTraining handles POST /api/trainings/:id/release. Admin only.
func (s *Server) ReleaseTraining(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	training, err := s.trainingService.ReleaseTraining(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(training)
}

// RegisterForTraining handles POST /api/trainings/:id/register.
func (s *Server) RegisterForTraining(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}

	var req registerTrainingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("invalid request body"))
		}
	}

	reg, err := s.regService.Register(c.Context(), actor, c.Params("id"), req.Notes)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reg)
}

// GetMyRegistrations handles GET /api/registrations/me.
func (s *Server) GetMyRegistrations(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	regs, err := s.regService.MyRegistrations(c.Context(), actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(regs)
}
