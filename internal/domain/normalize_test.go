package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeElement_Node(t *testing.T) {
	el := OverpassElement{
		Type: "node",
		ID:   42,
		Lat:  52.52,
		Lon:  13.405,
		Tags: map[string]string{
			"amenity": "school",
			"school":  "gymnasium",
		},
	}

	f, ok := NormalizeElement(el)
	require.True(t, ok)

	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "Point", f.Geometry.Type)
	assert.Equal(t, []float64{13.405, 52.52}, f.Geometry.Coordinates)
	assert.Equal(t, "42", f.Properties.ID)
	assert.Equal(t, "school", f.Properties.Category)
	assert.Equal(t, "gymnasium", f.Properties.Subcategory)
	assert.Equal(t, "Gymnasium", f.Properties.Name)
}

func TestNormalizeElement_WayUsesCenter(t *testing.T) {
	el := OverpassElement{
		Type:   "way",
		ID:     7,
		Center: &Center{Lat: 48.1, Lon: 11.5},
		Tags:   map[string]string{"amenity": "pharmacy", "name": "Hof-Apotheke"},
	}

	f, ok := NormalizeElement(el)
	require.True(t, ok)

	assert.Equal(t, []float64{11.5, 48.1}, f.Geometry.Coordinates)
	assert.Equal(t, "pharmacy", f.Properties.Category)
	assert.Equal(t, "Hof-Apotheke", f.Properties.Name)
}

func TestNormalizeElement_DropsWithoutCoordinates(t *testing.T) {
	tests := []struct {
		name string
		el   OverpassElement
	}{
		{"node without coordinates", OverpassElement{Type: "node", ID: 1}},
		{"node with only lat", OverpassElement{Type: "node", ID: 2, Lat: 50.0}},
		{"way without center", OverpassElement{Type: "way", ID: 3}},
		{"relation", OverpassElement{Type: "relation", ID: 4, Center: &Center{Lat: 50, Lon: 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NormalizeElement(tt.el)
			assert.False(t, ok)
		})
	}
}

func TestNormalizeElements_PreservesOrderAndDropsMalformed(t *testing.T) {
	elements := []OverpassElement{
		{Type: "node", ID: 1, Lat: 50, Lon: 8, Tags: map[string]string{"amenity": "bank"}},
		{Type: "node", ID: 2},
		{Type: "way", ID: 3, Center: &Center{Lat: 51, Lon: 9}, Tags: map[string]string{"shop": "bakery"}},
	}

	features := NormalizeElements(elements)
	require.Len(t, features, 2)
	assert.Equal(t, "1", features[0].Properties.ID)
	assert.Equal(t, "3", features[1].Properties.ID)
}

func TestResolveCategory_PriorityOrder(t *testing.T) {
	tests := []struct {
		name        string
		tags        map[string]string
		category    string
		subcategory string
	}{
		{
			"amenity wins over shop",
			map[string]string{"amenity": "pharmacy", "shop": "chemist"},
			"pharmacy", "",
		},
		{
			"shop wins over healthcare",
			map[string]string{"shop": "supermarket", "healthcare": "pharmacy"},
			"supermarket", "",
		},
		{
			"healthcare wins over leisure",
			map[string]string{"healthcare": "doctor", "leisure": "park"},
			"doctor", "",
		},
		{
			"leisure alone",
			map[string]string{"leisure": "playground"},
			"playground", "",
		},
		{
			"building=school special case",
			map[string]string{"building": "school"},
			"school", "",
		},
		{
			"office=educational_institution special case",
			map[string]string{"office": "educational_institution"},
			"educational_institution", "",
		},
		{
			"no recognized tag",
			map[string]string{"tourism": "hotel"},
			"unknown", "",
		},
		{
			"school subcategory from school tag",
			map[string]string{"amenity": "school", "school": "realschule"},
			"school", "realschule",
		},
		{
			"no subcategory without amenity=school",
			map[string]string{"building": "school", "school": "realschule"},
			"school", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, subcategory := resolveCategory(tt.tags)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.subcategory, subcategory)
		})
	}
}

func TestResolveName_FallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		tags     map[string]string
		expected string
	}{
		{
			"explicit name wins",
			map[string]string{"name": "Marienschule", "brand": "X"},
			"Marienschule",
		},
		{
			"brand before localized name",
			map[string]string{"brand": "Sparkasse", "name:de": "Filiale"},
			"Sparkasse",
		},
		{
			"localized name before official name",
			map[string]string{"name:de": "Stadtpark", "official_name": "Park der Stadt"},
			"Stadtpark",
		},
		{
			"official name as last tag fallback",
			map[string]string{"official_name": "Amtsgericht"},
			"Amtsgericht",
		},
		{
			"unnamed school without type",
			map[string]string{"amenity": "school"},
			"Schule",
		},
		{
			"unnamed school with known type",
			map[string]string{"amenity": "school", "school": "grundschule"},
			"Grundschule",
		},
		{
			"unnamed school with primary code",
			map[string]string{"amenity": "school", "school": "primary"},
			"Grundschule",
		},
		{
			"unnamed school with secondary code",
			map[string]string{"amenity": "school", "school": "secondary"},
			"Weiterführende Schule",
		},
		{
			"unnamed school with unrecognized type",
			map[string]string{"amenity": "school", "school": "abendschule"},
			"Schule (abendschule)",
		},
		{
			"literal Schule name is replaced by type label",
			map[string]string{"name": "Schule", "amenity": "school", "school": "waldorfschule"},
			"Waldorfschule",
		},
		{
			"university prefers short name",
			map[string]string{"amenity": "university", "short_name": "TUM"},
			"TUM",
		},
		{
			"university without short name",
			map[string]string{"amenity": "university"},
			"Universität",
		},
		{
			"kindergarten fixed label",
			map[string]string{"amenity": "kindergarten"},
			"Kindergarten",
		},
		{
			"placeholder when nothing resolves",
			map[string]string{"amenity": "bank"},
			"(unbenannt)",
		},
		{
			"placeholder on empty tags",
			map[string]string{},
			"(unbenannt)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveName(tt.tags))
		})
	}
}

func TestResolveName_SchoolTypeSuffix(t *testing.T) {
	t.Run("appends type label to named school", func(t *testing.T) {
		tags := map[string]string{
			"name":    "Marienschule",
			"amenity": "school",
			"school":  "gymnasium",
		}
		assert.Equal(t, "Marienschule (Gymnasium)", resolveName(tags))
	})

	t.Run("no duplicate suffix when name already contains label", func(t *testing.T) {
		tags := map[string]string{
			"name":    "Städtisches Gymnasium",
			"amenity": "school",
			"school":  "gymnasium",
		}
		assert.Equal(t, "Städtisches Gymnasium", resolveName(tags))
	})

	t.Run("substring check is case-insensitive", func(t *testing.T) {
		tags := map[string]string{
			"name":    "GYMNASIUM AM WALL",
			"amenity": "school",
			"school":  "gymnasium",
		}
		assert.Equal(t, "GYMNASIUM AM WALL", resolveName(tags))
	})

	t.Run("idempotent when applied to its own output", func(t *testing.T) {
		tags := map[string]string{
			"name":    "Marienschule",
			"amenity": "school",
			"school":  "gymnasium",
		}
		once := resolveName(tags)

		tags["name"] = once
		twice := resolveName(tags)
		assert.Equal(t, once, twice)
	})

	t.Run("no suffix for types outside the small table", func(t *testing.T) {
		tags := map[string]string{
			"name":    "Freie Schule",
			"amenity": "school",
			"school":  "waldorfschule",
		}
		assert.Equal(t, "Freie Schule", resolveName(tags))
	})
}

func TestNormalizeElement_ContactAndAddress(t *testing.T) {
	el := OverpassElement{
		Type: "node",
		ID:   99,
		Lat:  50.9,
		Lon:  6.9,
		Tags: map[string]string{
			"amenity":          "pharmacy",
			"name":             "Dom-Apotheke",
			"website":          "https://dom-apotheke.example",
			"phone":            "+49 221 123456",
			"opening_hours":    "Mo-Fr 08:00-18:30",
			"addr:street":      "Hohe Straße",
			"addr:housenumber": "12",
			"addr:postcode":    "50667",
			"addr:city":        "Köln",
		},
	}

	f, ok := NormalizeElement(el)
	require.True(t, ok)

	assert.Equal(t, "https://dom-apotheke.example", f.Properties.Website)
	assert.Equal(t, "+49 221 123456", f.Properties.Phone)
	assert.Equal(t, "Mo-Fr 08:00-18:30", f.Properties.OpeningHours)
	assert.Equal(t, "Hohe Straße", f.Properties.Address.Street)
	assert.Equal(t, "12", f.Properties.Address.Housenumber)
	assert.Equal(t, "50667", f.Properties.Address.Postcode)
	assert.Equal(t, "Köln", f.Properties.Address.City)
	assert.Equal(t, el.Tags, f.Properties.Raw)
}

func TestPOI_ToFeature(t *testing.T) {
	poi := POI{ID: 17, Name: "Rathaus-Apotheke", Category: "pharmacy", Lat: 52.4, Lon: 13.4}

	f := poi.ToFeature()
	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, []float64{13.4, 52.4}, f.Geometry.Coordinates)
	assert.Equal(t, "17", f.Properties.ID)
	assert.Equal(t, "Rathaus-Apotheke", f.Properties.Name)
	assert.Equal(t, "pharmacy", f.Properties.Category)
}
