package errors

import "net/http"

var (
	// ErrInvalidBBox is returned when the bbox query parameter is missing,
	// has the wrong arity or contains non-numeric components.
	ErrInvalidBBox = New(
		"INVALID_BBOX",
		"bbox=minLon,minLat,maxLon,maxLat",
		http.StatusBadRequest,
	)

	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Invalid search query",
		http.StatusBadRequest,
	)

	ErrOverpassError = New(
		"OVERPASS_ERROR",
		"Overpass API request failed",
		http.StatusBadGateway,
	)

	ErrGeocoderError = New(
		"GEOCODER_ERROR",
		"Geocoding request failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
