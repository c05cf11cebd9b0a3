package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/poi-browser/internal/config"
	"github.com/poi-browser/internal/domain"
	"github.com/poi-browser/internal/domain/repository"
	pkgerrors "github.com/poi-browser/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	countryCodes string
	limit        int
	logger       *zap.Logger
}

// searchHit mirrors one entry of a Nominatim search response.
// boundingbox comes back as [minLat, maxLat, minLon, maxLon] strings.
type searchHit struct {
	DisplayName string    `json:"display_name"`
	BoundingBox [4]string `json:"boundingbox"`
}

// NewClient creates a client for the Nominatim search endpoint.
func NewClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.BaseURL,
		countryCodes: cfg.CountryCodes,
		limit:        cfg.Limit,
		logger:       logger,
	}
}

func (c *client) Search(ctx context.Context, query string) ([]domain.GeocodeResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("countrycodes", c.countryCodes)
	params.Set("limit", strconv.Itoa(c.limit))

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Nominatim API", zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, pkgerrors.ErrGeocoderError
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, pkgerrors.ErrGeocoderError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, pkgerrors.ErrGeocoderError
	}

	var hits []searchHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, pkgerrors.ErrGeocoderError
	}

	results := make([]domain.GeocodeResult, 0, len(hits))
	for _, hit := range hits {
		bbox, err := hit.toBBox()
		if err != nil {
			c.logger.Warn("Skipping hit with malformed bounding box",
				zap.String("display_name", hit.DisplayName),
				zap.Error(err),
			)
			continue
		}
		results = append(results, domain.GeocodeResult{
			DisplayName: hit.DisplayName,
			BBox:        bbox,
		})
	}

	return results, nil
}

// toBBox reorders the Nominatim bounding box into viewport order
// (minLon, minLat, maxLon, maxLat).
func (h searchHit) toBBox() (domain.BoundingBox, error) {
	values := make([]float64, 4)
	for i, s := range h.BoundingBox {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.BoundingBox{}, fmt.Errorf("parse boundingbox[%d]: %w", i, err)
		}
		values[i] = v
	}
	return domain.BoundingBox{
		MinLat: values[0],
		MaxLat: values[1],
		MinLon: values[2],
		MaxLon: values[3],
	}, nil
}
