package repository

import (
	"context"

	"github.com/poi-browser/internal/domain"
)

// GeocodeRepository abstracts the place-name geocoder used by the
// search box.
type GeocodeRepository interface {
	Search(ctx context.Context, query string) ([]domain.GeocodeResult, error)
}
