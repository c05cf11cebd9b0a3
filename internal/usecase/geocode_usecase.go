package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/poi-browser/internal/domain"
	"github.com/poi-browser/internal/domain/repository"
	"github.com/poi-browser/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeUseCase resolves free-text place queries through Nominatim,
// with a Redis cache in front. POI queries are never cached; geocoding
// sits outside that pipeline and its results change rarely.
type GeocodeUseCase struct {
	geocodeRepo repository.GeocodeRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewGeocodeUseCase(
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocodeRepo: geocodeRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

func (uc *GeocodeUseCase) Search(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	key := "geocode:" + strings.ToLower(strings.TrimSpace(req.Query))

	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
			var cached []domain.GeocodeResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &dto.GeocodeResponse{Results: cached, Total: len(cached)}, nil
			}
			uc.logger.Warn("Dropping unreadable cache entry", zap.String("key", key))
		}
	}

	results, err := uc.geocodeRepo.Search(ctx, req.Query)
	if err != nil {
		uc.logger.Error("Failed to geocode query", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(results); err == nil {
			if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache geocode results", zap.Error(err))
			}
		}
	}

	return &dto.GeocodeResponse{Results: results, Total: len(results)}, nil
}
