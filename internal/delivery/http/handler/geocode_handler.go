package handler

import (
	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/poi-browser/internal/pkg/errors"
	"github.com/poi-browser/internal/pkg/utils"
	"github.com/poi-browser/internal/pkg/validator"
	"github.com/poi-browser/internal/usecase"
	"github.com/poi-browser/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeHandler serves place-name searches for the map search box.
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Search handles GET /api/v1/geocode?q=Berlin
func (h *GeocodeHandler) Search(c *fiber.Ctx) error {
	req := dto.GeocodeRequest{Query: c.Query("q")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, pkgerrors.ErrInvalidQuery)
	}

	result, err := h.geocodeUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
