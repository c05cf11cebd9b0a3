package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/poi-browser/internal/pkg/utils"
	"github.com/poi-browser/internal/usecase"
	"go.uber.org/zap"
)

// OSMHandler serves live Overpass-backed viewport queries.
type OSMHandler struct {
	osmUC  *usecase.OSMUseCase
	logger *zap.Logger
}

func NewOSMHandler(osmUC *usecase.OSMUseCase, logger *zap.Logger) *OSMHandler {
	return &OSMHandler{
		osmUC:  osmUC,
		logger: logger,
	}
}

// SearchViewport handles
// GET /api/v1/osm?bbox=minLon,minLat,maxLon,maxLat&cat=school,pharmacy
// and responds with a GeoJSON FeatureCollection.
func (h *OSMHandler) SearchViewport(c *fiber.Ctx) error {
	bbox, err := utils.ParseBBox(c.Query("bbox"))
	if err != nil {
		return utils.SendError(c, err)
	}

	categories := utils.SplitList(c.Query("cat", "school"))

	collection, err := h.osmUC.SearchViewport(c.Context(), bbox, categories)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(collection)
}
