package utils

import (
	"strconv"
	"strings"

	"github.com/poi-browser/internal/domain"
	"github.com/poi-browser/internal/pkg/errors"
)

// ParseBBox parses a "minLon,minLat,maxLon,maxLat" viewport string.
// Only arity and numeric well-formedness are checked; coordinate ordering
// is the caller's responsibility.
func ParseBBox(s string) (domain.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return domain.BoundingBox{}, errors.ErrInvalidBBox
	}

	values := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.BoundingBox{}, errors.ErrInvalidBBox
		}
		values[i] = v
	}

	return domain.BoundingBox{
		MinLon: values[0],
		MinLat: values[1],
		MaxLon: values[2],
		MaxLat: values[3],
	}, nil
}

// SplitList splits a comma-separated query parameter into trimmed,
// non-empty items.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
