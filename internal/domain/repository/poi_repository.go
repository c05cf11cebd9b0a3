package repository

import (
	"context"

	"github.com/poi-browser/internal/domain"
)

// POIRepository abstracts the PostGIS-backed pois table.
type POIRepository interface {
	// GetInBBox returns POIs whose category matches the given
	// case-insensitive pattern and whose geometry intersects the
	// bounding box.
	GetInBBox(ctx context.Context, bbox domain.BoundingBox, categoryPattern string) ([]*domain.POI, error)
}
