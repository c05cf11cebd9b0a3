package domain

// GeoJSON type discriminators.
const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

// FeatureCollection is the response envelope for both query paths.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection wraps features into a FeatureCollection.
// A nil slice is normalized to an empty one so the JSON output always
// carries "features": [].
func NewFeatureCollection(features []Feature) *FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return &FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: features,
	}
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Geometry is always a Point with [lon, lat] coordinates.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Address is populated field-by-field from addr:* tags. The sub-record
// itself is always present in the output, even when entirely empty.
type Address struct {
	Street      string `json:"street,omitempty"`
	Housenumber string `json:"housenumber,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	City        string `json:"city,omitempty"`
}

type FeatureProperties struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Subcategory   string            `json:"subcategory"`
	Amenity       string            `json:"amenity,omitempty"`
	Shop          string            `json:"shop,omitempty"`
	Healthcare    string            `json:"healthcare,omitempty"`
	Leisure       string            `json:"leisure,omitempty"`
	SchoolType    string            `json:"school_type,omitempty"`
	EducationType string            `json:"education_type,omitempty"`
	Website       string            `json:"website,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	OpeningHours  string            `json:"opening_hours,omitempty"`
	Address       Address           `json:"address"`
	Raw           map[string]string `json:"raw,omitempty"`
}
