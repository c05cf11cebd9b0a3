package dto

import "github.com/poi-browser/internal/domain"

// GeocodeResponse carries the candidate places for a search query.
type GeocodeResponse struct {
	Results []domain.GeocodeResult `json:"results"`
	Total   int                    `json:"total"`
}

// CategoriesResponse carries the static category catalog.
type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
	Total      int               `json:"total"`
}
