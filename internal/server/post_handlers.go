package server

import (
	"github.com/gofiber/fiber/v2"

	"staffhub/internal/models"
	"staffhub/internal/service"
)

type commentRequest struct {
	Content string `json:"content"`
}

// GetPosts handles GET /api/posts. Visibility filtering happens in the
// service: regular users see approved posts plus their own.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	posts, err := s.postService.ListPosts(c.Context(), actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}

	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), actor, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	post, err := s.postService.GetPost(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// ToggleLike handles POST /api/posts/:id/like.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}
	post, err := s.postService.ToggleLike(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// AddComment handles POST /api/posts/:id/comments.
func (s *Server) AddComment(c *fiber.Ctx) error {
	actor, err := s.currentActor(c)
	if err != nil || actor == nil {
		return err
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	post, err := s.postService.AddComment(c.Context(), actor, c.Params("id"), req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}
