package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/poi-browser/internal/pkg/utils"
	"github.com/poi-browser/internal/usecase"
	"go.uber.org/zap"
)

// POIHandler serves viewport queries from the local PostGIS table.
type POIHandler struct {
	poiUC  *usecase.POIUseCase
	logger *zap.Logger
}

func NewPOIHandler(poiUC *usecase.POIUseCase, logger *zap.Logger) *POIHandler {
	return &POIHandler{
		poiUC:  poiUC,
		logger: logger,
	}
}

// SearchViewport handles
// GET /api/v1/pois?bbox=minLon,minLat,maxLon,maxLat&category=school
// where category is an optional ILIKE pattern (default: match all).
func (h *POIHandler) SearchViewport(c *fiber.Ctx) error {
	bbox, err := utils.ParseBBox(c.Query("bbox"))
	if err != nil {
		return utils.SendError(c, err)
	}

	category := c.Query("category", "%")

	collection, err := h.poiUC.SearchViewport(c.Context(), bbox, category)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(collection)
}
