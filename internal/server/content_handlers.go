package server

import (
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetContents handles GET /api/contents with optional ?search=
func (s *Server) GetContents(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)
	query := strings.TrimSpace(c.Query("search"))

	contents, err := s.contentService.SearchContents(c.Context(), query, viewerID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(summarizeContents(contents))
}

// GetContent handles GET /api/contents/:id
func (s *Server) GetContent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	content, err := s.contentService.GetContent(c.Context(), id, viewerID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(content)
}

// CreateContent handles POST /api/contents
func (s *Server) CreateContent(c *fiber.Ctx) error {
	var req struct {
		Title   string   `json:"title"`
		Body    string   `json:"body"`
		Publish bool     `json:"publish"`
		TopicID uint     `json:"topic_id"`
		Tags    []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	content, err := s.contentService.CreateContent(c.Context(), service.CreateContentInput{
		AuthorID: currentUserID(c),
		Title:    req.Title,
		Body:     req.Body,
		Publish:  req.Publish,
		TopicID:  req.TopicID,
		Tags:     req.Tags,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(content)
}

// UpdateContent handles PUT /api/contents/:id
func (s *Server) UpdateContent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   *string  `json:"title"`
		Body    *string  `json:"body"`
		Publish *bool    `json:"publish"`
		TopicID *uint    `json:"topic_id"`
		Tags    []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	content, err := s.contentService.UpdateContent(c.Context(), service.UpdateContentInput{
		UserID:    currentUserID(c),
		ContentID: id,
		Title:     req.Title,
		Body:      req.Body,
		Publish:   req.Publish,
		TopicID:   req.TopicID,
		Tags:      req.Tags,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(content)
}

// DeleteContent handles DELETE /api/contents/:id
func (s *Server) DeleteContent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteContent(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Content deleted"})
}
