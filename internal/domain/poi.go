package domain

// BoundingBox is a viewport in WGS84 coordinates.
type BoundingBox struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// Center is the computed representative point Overpass attaches to
// area-shaped elements when the query requests "out center".
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// OverpassElement is one raw element of an Overpass API response.
// Nodes carry lat/lon directly; ways carry a computed center.
type OverpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat,omitempty"`
	Lon    float64           `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// POI is one row of the PostGIS-backed pois table.
type POI struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Category string  `json:"category" db:"category"`
	Lat      float64 `json:"lat" db:"lat"`
	Lon      float64 `json:"lon" db:"lon"`
}

// GeocodeResult is one candidate place returned by the geocoder,
// with its bounding box already converted to viewport order.
type GeocodeResult struct {
	DisplayName string      `json:"display_name"`
	BBox        BoundingBox `json:"bbox"`
}
