package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/poi-browser/internal/domain"
	"github.com/poi-browser/internal/usecase/dto"
)

// CategoryHandler serves the static category catalog for the picker.
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories handles GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories := domain.Categories()
	return c.JSON(dto.CategoriesResponse{
		Categories: categories,
		Total:      len(categories),
	})
}
