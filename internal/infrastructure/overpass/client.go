package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poi-browser/internal/config"
	"github.com/poi-browser/internal/domain"
	"github.com/poi-browser/internal/domain/repository"
	pkgerrors "github.com/poi-browser/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	areaID       string
	queryTimeout int
	logger       *zap.Logger
}

// response mirrors the Overpass JSON envelope.
type response struct {
	Elements []domain.OverpassElement `json:"elements"`
}

// NewClient creates a client for the Overpass API interpreter.
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.OverpassRepository {
	return &client{
		httpClient: &http.Client{
			// The interpreter enforces the in-query budget; the HTTP
			// timeout only covers transfer overhead on top of it.
			Timeout: time.Duration(cfg.QueryTimeout+15) * time.Second,
		},
		baseURL:      cfg.BaseURL,
		areaID:       cfg.AreaID,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

// QueryElements runs one viewport query against the interpreter and
// returns the raw elements.
func (c *client) QueryElements(ctx context.Context, bbox domain.BoundingBox, filters []string) ([]domain.OverpassElement, error) {
	if len(filters) == 0 {
		return nil, fmt.Errorf("filters cannot be empty")
	}

	query := BuildViewportQuery(c.areaID, c.queryTimeout, bbox, filters)

	c.logger.Debug("Calling Overpass API",
		zap.String("url", c.baseURL),
		zap.Int("filters_count", len(filters)),
	)

	body := strings.NewReader("data=" + url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, pkgerrors.ErrOverpassError
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, pkgerrors.ErrOverpassError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return nil, pkgerrors.ErrOverpassError
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, pkgerrors.ErrOverpassError
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements_count", len(result.Elements)),
	)

	return result.Elements, nil
}

// BuildViewportQuery composes the Overpass QL statement: an area
// restriction, one node and one way clause per tag filter bounded by
// the viewport, and an output directive requesting computed centers
// plus full tag sets for area-shaped matches.
func BuildViewportQuery(areaID string, timeoutSec int, bbox domain.BoundingBox, filters []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[out:json][timeout:%d];\n", timeoutSec)
	fmt.Fprintf(&b, "area(id:%s)->.searchArea;\n", areaID)
	b.WriteString("(\n")
	for _, filter := range filters {
		fmt.Fprintf(&b, "  node[%s](area.searchArea)(%g,%g,%g,%g);\n",
			filter, bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)
	}
	for _, filter := range filters {
		fmt.Fprintf(&b, "  way[%s](area.searchArea)(%g,%g,%g,%g);\n",
			filter, bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)
	}
	b.WriteString(");\n")
	b.WriteString("out center tags;")

	return b.String()
}
