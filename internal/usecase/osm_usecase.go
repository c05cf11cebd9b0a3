package usecase

import (
	"context"

	"github.com/poi-browser/internal/domain"
	"github.com/poi-browser/internal/domain/repository"
	"go.uber.org/zap"
)

// OSMUseCase serves viewport POI queries through the Overpass API.
type OSMUseCase struct {
	overpassRepo repository.OverpassRepository
	logger       *zap.Logger
}

func NewOSMUseCase(
	overpassRepo repository.OverpassRepository,
	logger *zap.Logger,
) *OSMUseCase {
	return &OSMUseCase{
		overpassRepo: overpassRepo,
		logger:       logger,
	}
}

// SearchViewport resolves the requested categories to tag filters,
// queries Overpass and normalizes the result into a FeatureCollection.
func (uc *OSMUseCase) SearchViewport(
	ctx context.Context,
	bbox domain.BoundingBox,
	categoryIDs []string,
) (*domain.FeatureCollection, error) {
	filters := domain.ResolveFilters(categoryIDs)

	// Nothing to match: return an empty collection without contacting
	// Overpass. This guard is a business rule, not an optimization.
	if len(filters) == 0 {
		return domain.NewFeatureCollection(nil), nil
	}

	uc.logger.Info("Searching viewport",
		zap.Strings("categories", categoryIDs),
		zap.Int("filters_count", len(filters)),
	)

	elements, err := uc.overpassRepo.QueryElements(ctx, bbox, filters)
	if err != nil {
		uc.logger.Error("Failed to query Overpass", zap.Error(err))
		return nil, err
	}

	features := domain.NormalizeElements(elements)

	uc.logger.Info("Viewport search finished",
		zap.Int("raw_elements", len(elements)),
		zap.Int("features", len(features)),
	)

	return domain.NewFeatureCollection(features), nil
}
