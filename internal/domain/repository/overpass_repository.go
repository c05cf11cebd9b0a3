package repository

import (
	"context"

	"github.com/poi-browser/internal/domain"
)

// OverpassRepository abstracts the Overpass API query path.
type OverpassRepository interface {
	// QueryElements runs one viewport query matching both nodes and
	// ways for every tag filter, restricted to the configured area.
	QueryElements(ctx context.Context, bbox domain.BoundingBox, filters []string) ([]domain.OverpassElement, error)
}
