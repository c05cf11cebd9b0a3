package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/poi-browser/internal/domain"
	"github.com/poi-browser/internal/domain/repository"
	pkgerrors "github.com/poi-browser/internal/pkg/errors"
	"go.uber.org/zap"
)

// LimitPOIs caps the rows returned by a single viewport query.
const LimitPOIs = 1000

const poiInBBoxQuery = `
	SELECT
		id,
		name,
		category,
		ST_X(geom) AS lon,
		ST_Y(geom) AS lat
	FROM pois
	WHERE category ILIKE $1
	  AND ST_Intersects(geom, ST_MakeEnvelope($2, $3, $4, $5, 4326))
	LIMIT $6
`

type poiRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

type poiRow struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Category string  `db:"category"`
	Lon      float64 `db:"lon"`
	Lat      float64 `db:"lat"`
}

func (r poiRow) toDomain() *domain.POI {
	return &domain.POI{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		Lat:      r.Lat,
		Lon:      r.Lon,
	}
}

// NewPOIRepository creates the PostGIS-backed POI repository.
func NewPOIRepository(db *DB) repository.POIRepository {
	return &poiRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *poiRepository) GetInBBox(ctx context.Context, bbox domain.BoundingBox, categoryPattern string) ([]*domain.POI, error) {
	if categoryPattern == "" {
		categoryPattern = "%"
	}

	rows, err := r.db.QueryxContext(ctx, poiInBBoxQuery,
		categoryPattern,
		bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat,
		LimitPOIs,
	)
	if err != nil {
		r.logger.Error("failed to query pois in bbox",
			zap.String("category", categoryPattern),
			zap.Error(err),
		)
		return nil, pkgerrors.ErrDatabaseError
	}
	defer rows.Close()

	var result []*domain.POI
	for rows.Next() {
		var row poiRow
		if err := rows.StructScan(&row); err != nil {
			r.logger.Error("failed to scan poi row", zap.Error(err))
			continue
		}
		result = append(result, row.toDomain())
	}

	return result, nil
}
