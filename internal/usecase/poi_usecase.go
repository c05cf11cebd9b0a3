package usecase

import (
	"context"

	"github.com/poi-browser/internal/domain"
	"github.com/poi-browser/internal/domain/repository"
	"go.uber.org/zap"
)

// POIUseCase serves viewport POI queries from the PostGIS table.
type POIUseCase struct {
	poiRepo repository.POIRepository
	logger  *zap.Logger
}

func NewPOIUseCase(
	poiRepo repository.POIRepository,
	logger *zap.Logger,
) *POIUseCase {
	return &POIUseCase{
		poiRepo: poiRepo,
		logger:  logger,
	}
}

// SearchViewport returns POIs matching the category pattern inside the
// bounding box as a FeatureCollection.
func (uc *POIUseCase) SearchViewport(
	ctx context.Context,
	bbox domain.BoundingBox,
	categoryPattern string,
) (*domain.FeatureCollection, error) {
	pois, err := uc.poiRepo.GetInBBox(ctx, bbox, categoryPattern)
	if err != nil {
		uc.logger.Error("Failed to query POIs", zap.Error(err))
		return nil, err
	}

	features := make([]domain.Feature, 0, len(pois))
	for _, poi := range pois {
		features = append(features, poi.ToFeature())
	}

	return domain.NewFeatureCollection(features), nil
}
