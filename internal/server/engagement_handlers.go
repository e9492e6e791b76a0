package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikeContent handles POST /api/contents/:id/like
func (s *Server) LikeContent(c *fiber.Ctx) error {
	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.engagementService.LikeContent(c.Context(), currentUserID(c), contentID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Content liked"})
}

// UnlikeContent handles DELETE /api/contents/:id/like
func (s *Server) UnlikeContent(c *fiber.Ctx) error {
	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.engagementService.UnlikeContent(c.Context(), currentUserID(c), contentID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Like removed"})
}

// GetBookmarks handles GET /api/bookmarks
func (s *Server) GetBookmarks(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	bookmarks, err := s.engagementService.ListBookmarks(c.Context(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(bookmarks)
}

// CreateBookmark handles POST /api/bookmarks
func (s *Server) CreateBookmark(c *fiber.Ctx) error {
	var req struct {
		ContentID uint `json:"content_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ContentID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("content_id is required"))
	}

	bookmark, err := s.engagementService.BookmarkContent(c.Context(), currentUserID(c), req.ContentID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bookmark)
}

// DeleteBookmark handles DELETE /api/bookmarks/:id
func (s *Server) DeleteBookmark(c *fiber.Ctx) error {
	bookmarkID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.engagementService.RemoveBookmark(c.Context(), currentUserID(c), bookmarkID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Bookmark removed"})
}
