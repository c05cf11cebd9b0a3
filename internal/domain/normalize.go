package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// schoolTypeNames maps known school-type codes to their German display
// labels, used when a school carries no usable name of its own.
var schoolTypeNames = map[string]string{
	"primary":       "Grundschule",
	"secondary":     "Weiterführende Schule",
	"gymnasium":     "Gymnasium",
	"realschule":    "Realschule",
	"hauptschule":   "Hauptschule",
	"gesamtschule":  "Gesamtschule",
	"grundschule":   "Grundschule",
	"oberschule":    "Oberschule",
	"mittelschule":  "Mittelschule",
	"förderschule":  "Förderschule",
	"waldorfschule": "Waldorfschule",
	"montessori":    "Montessori-Schule",
}

// schoolTypeSuffixes covers only the common school types whose label is
// appended to an already named school.
var schoolTypeSuffixes = map[string]string{
	"gymnasium":    "Gymnasium",
	"realschule":   "Realschule",
	"hauptschule":  "Hauptschule",
	"gesamtschule": "Gesamtschule",
	"grundschule":  "Grundschule",
}

// NormalizeElements filters raw Overpass elements to those with usable
// coordinates and normalizes each survivor, preserving input order.
// Malformed elements are dropped, never reported as errors.
func NormalizeElements(elements []OverpassElement) []Feature {
	features := make([]Feature, 0, len(elements))
	for _, el := range elements {
		if f, ok := NormalizeElement(el); ok {
			features = append(features, f)
		}
	}
	return features
}

// NormalizeElement turns one raw element into a Feature. The second
// return value is false when the element has no usable coordinate pair.
func NormalizeElement(el OverpassElement) (Feature, bool) {
	lat, lon, ok := usableCoordinates(el)
	if !ok {
		return Feature{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	category, subcategory := resolveCategory(tags)
	name := resolveName(tags)

	return Feature{
		Type: TypeFeature,
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: []float64{lon, lat},
		},
		Properties: FeatureProperties{
			ID:            strconv.FormatInt(el.ID, 10),
			Name:          name,
			Category:      category,
			Subcategory:   subcategory,
			Amenity:       tags["amenity"],
			Shop:          tags["shop"],
			Healthcare:    tags["healthcare"],
			Leisure:       tags["leisure"],
			SchoolType:    tags["school"],
			EducationType: tags["isced:level"],
			Website:       tags["website"],
			Phone:         tags["phone"],
			OpeningHours:  tags["opening_hours"],
			Address: Address{
				Street:      tags["addr:street"],
				Housenumber: tags["addr:housenumber"],
				Postcode:    tags["addr:postcode"],
				City:        tags["addr:city"],
			},
			Raw: el.Tags,
		},
	}, true
}

// usableCoordinates resolves the coordinate pair of an element: nodes
// carry lat/lon directly, ways fall back to their computed center.
// A zero coordinate counts as absent, matching the source data
// conventions.
func usableCoordinates(el OverpassElement) (lat, lon float64, ok bool) {
	switch el.Type {
	case "node":
		if el.Lat == 0 || el.Lon == 0 {
			return 0, 0, false
		}
		return el.Lat, el.Lon, true
	case "way":
		if el.Center == nil {
			return 0, 0, false
		}
		lat, lon = el.Lat, el.Lon
		if lat == 0 {
			lat = el.Center.Lat
		}
		if lon == 0 {
			lon = el.Center.Lon
		}
		if lat == 0 || lon == 0 {
			return 0, 0, false
		}
		return lat, lon, true
	}
	return 0, 0, false
}

// resolveCategory picks the display category by tag priority:
// amenity, shop, healthcare, leisure, then the building=school and
// office=educational_institution special cases. First match wins.
func resolveCategory(tags map[string]string) (category, subcategory string) {
	category = "unknown"

	switch {
	case tags["amenity"] != "":
		category = tags["amenity"]
		if category == "school" && tags["school"] != "" {
			subcategory = tags["school"]
		}
	case tags["shop"] != "":
		category = tags["shop"]
	case tags["healthcare"] != "":
		category = tags["healthcare"]
	case tags["leisure"] != "":
		category = tags["leisure"]
	case tags["building"] == "school":
		category = "school"
	case tags["office"] == "educational_institution":
		category = "educational_institution"
	}

	return category, subcategory
}

// resolveName derives a display name that is never empty: explicit
// name-bearing tags first, then category-specific synthesis, then a
// placeholder. A named school additionally gets its school-type label
// appended when the name does not already mention it.
func resolveName(tags map[string]string) string {
	name := firstNonEmpty(tags["name"], tags["brand"], tags["name:de"], tags["official_name"])

	if name == "" || name == "Schule" {
		switch {
		case tags["amenity"] == "school":
			if schoolType := tags["school"]; schoolType != "" {
				if label, ok := schoolTypeNames[schoolType]; ok {
					name = label
				} else {
					name = fmt.Sprintf("Schule (%s)", schoolType)
				}
			} else {
				name = "Schule"
			}
		case tags["amenity"] == "university":
			name = firstNonEmpty(tags["short_name"], "Universität")
		case tags["amenity"] == "kindergarten":
			name = "Kindergarten"
		default:
			if name == "" {
				name = "(unbenannt)"
			}
		}
	}

	if tags["amenity"] == "school" && tags["school"] != "" && name != "Schule" {
		if label, ok := schoolTypeSuffixes[tags["school"]]; ok {
			if !strings.Contains(strings.ToLower(name), strings.ToLower(label)) {
				name = fmt.Sprintf("%s (%s)", name, label)
			}
		}
	}

	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ToFeature converts a PostGIS-backed POI row into the shared
// GeoJSON feature shape.
func (p POI) ToFeature() Feature {
	return Feature{
		Type: TypeFeature,
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: []float64{p.Lon, p.Lat},
		},
		Properties: FeatureProperties{
			ID:       strconv.FormatInt(p.ID, 10),
			Name:     p.Name,
			Category: p.Category,
		},
	}
}
