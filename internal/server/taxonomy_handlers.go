package server

import (
	"strings"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTopics handles GET /api/topics
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.taxonomyService.ListTopics(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(topics)
}

// GetTags handles GET /api/tags with optional ?search=
func (s *Server) GetTags(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	search := strings.TrimSpace(c.Query("search"))

	tags, err := s.taxonomyService.ListTags(c.Context(), search, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(tags)
}

// CreateTag handles POST /api/tags
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.taxonomyService.CreateTag(c.Context(), strings.TrimSpace(req.Title))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// GetContentsByTag handles GET /api/tags/:title/contents
func (s *Server) GetContentsByTag(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.Params("title"))
	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)

	contents, err := s.contentService.ListContentsByTag(c.Context(), title, viewerID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(summarizeContents(contents))
}

// GetContentsByTopic handles GET /api/topics/:title/contents
func (s *Server) GetContentsByTopic(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.Params("title"))
	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)

	contents, err := s.contentService.ListContentsByTopic(c.Context(), title, viewerID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(summarizeContents(contents))
}
