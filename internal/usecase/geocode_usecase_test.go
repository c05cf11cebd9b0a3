package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/poi-browser/internal/domain"
	pkgerrors "github.com/poi-browser/internal/pkg/errors"
	"github.com/poi-browser/internal/usecase"
	"github.com/poi-browser/internal/usecase/dto"
)

// MockGeocodeRepository is a mock of GeocodeRepository
type MockGeocodeRepository struct {
	mock.Mock
}

func (m *MockGeocodeRepository) Search(ctx context.Context, query string) ([]domain.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeocodeResult), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestGeocodeUseCase_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	berlin := []domain.GeocodeResult{
		{
			DisplayName: "Berlin, Deutschland",
			BBox:        domain.BoundingBox{MinLon: 13.08, MinLat: 52.33, MaxLon: 13.76, MaxLat: 52.67},
		},
	}

	t.Run("cache hit skips the geocoder", func(t *testing.T) {
		cached, err := json.Marshal(berlin)
		require.NoError(t, err)

		mockGeocode := &MockGeocodeRepository{}
		mockCache := &MockCacheRepository{}
		mockCache.On("Get", ctx, "geocode:berlin").Return(cached, nil)

		uc := usecase.NewGeocodeUseCase(mockGeocode, mockCache, logger, time.Hour)

		result, err := uc.Search(ctx, dto.GeocodeRequest{Query: "Berlin"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "Berlin, Deutschland", result.Results[0].DisplayName)
		mockGeocode.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("cache miss calls geocoder and stores result", func(t *testing.T) {
		mockGeocode := &MockGeocodeRepository{}
		mockGeocode.On("Search", ctx, "Berlin").Return(berlin, nil)

		mockCache := &MockCacheRepository{}
		mockCache.On("Get", ctx, "geocode:berlin").Return(nil, nil)
		mockCache.On("Set", ctx, "geocode:berlin", mock.Anything, time.Hour).Return(nil)

		uc := usecase.NewGeocodeUseCase(mockGeocode, mockCache, logger, time.Hour)

		result, err := uc.Search(ctx, dto.GeocodeRequest{Query: "Berlin"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		mockGeocode.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache write failure does not fail the request", func(t *testing.T) {
		mockGeocode := &MockGeocodeRepository{}
		mockGeocode.On("Search", ctx, "Potsdam").Return(berlin, nil)

		mockCache := &MockCacheRepository{}
		mockCache.On("Get", ctx, "geocode:potsdam").Return(nil, nil)
		mockCache.On("Set", ctx, "geocode:potsdam", mock.Anything, time.Hour).Return(pkgerrors.ErrCacheError)

		uc := usecase.NewGeocodeUseCase(mockGeocode, mockCache, logger, time.Hour)

		result, err := uc.Search(ctx, dto.GeocodeRequest{Query: "Potsdam"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("geocoder failure propagates", func(t *testing.T) {
		mockGeocode := &MockGeocodeRepository{}
		mockGeocode.On("Search", ctx, "Berlin").Return(nil, pkgerrors.ErrGeocoderError)

		mockCache := &MockCacheRepository{}
		mockCache.On("Get", ctx, "geocode:berlin").Return(nil, nil)

		uc := usecase.NewGeocodeUseCase(mockGeocode, mockCache, logger, time.Hour)

		result, err := uc.Search(ctx, dto.GeocodeRequest{Query: "Berlin"})
		assert.Equal(t, pkgerrors.ErrGeocoderError, err)
		assert.Nil(t, result)
	})
}
