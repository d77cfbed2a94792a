package server

import (
	"github.com/gofiber/fiber/v2"

	"staffhub/internal/models"
)

// currentActor resolves the authenticated user from the JWT claims stored by
// the auth middleware. A nil user with a nil error means the response has
// already been written and the handler should return immediately.
//
// The actor's active flag is not checked here: deactivation takes effect
// at the next login, not mid-session.
func (s *Server) currentActor(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return nil, models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("authentication required"))
	}
	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		// The token outlived the account.
		return nil, models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("account no longer exists"))
	}
	return user, nil
}

// respondServiceError maps a service error onto the wire using the error's
// own HTTP status.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.HTTPStatus(err), err)
}
