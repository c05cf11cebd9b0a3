// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/osm": {
            "get": {
                "produces": ["application/json"],
                "summary": "Search POIs in a viewport via the Overpass API",
                "parameters": [
                    {
                        "type": "string",
                        "description": "minLon,minLat,maxLon,maxLat",
                        "name": "bbox",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "comma-separated category ids (default: school)",
                        "name": "cat",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection"},
                    "400": {"description": "malformed bbox"},
                    "502": {"description": "Overpass API failure"}
                }
            }
        },
        "/api/v1/pois": {
            "get": {
                "produces": ["application/json"],
                "summary": "Search POIs in a viewport from the local PostGIS table",
                "parameters": [
                    {
                        "type": "string",
                        "description": "minLon,minLat,maxLon,maxLat",
                        "name": "bbox",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "case-insensitive category pattern",
                        "name": "category",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection"},
                    "400": {"description": "malformed bbox"}
                }
            }
        },
        "/api/v1/geocode": {
            "get": {
                "produces": ["application/json"],
                "summary": "Forward-geocode a place name",
                "parameters": [
                    {
                        "type": "string",
                        "name": "q",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "candidate places with bounding boxes"},
                    "400": {"description": "query too short"},
                    "502": {"description": "geocoder failure"}
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "summary": "List the category catalog",
                "responses": {
                    "200": {"description": "categories with labels, icons and colors"}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "service is healthy"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "POI Browser API",
	Description:      "Map-based points-of-interest browser: viewport queries against the Overpass API or a local PostGIS table, plus place-name geocoding for the search box.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
