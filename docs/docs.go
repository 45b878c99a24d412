// Package docs holds the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/app/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/api/v1/propositions/{id}/prediction": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Predict the outcome of a proposition",
                "parameters": [
                    {"type": "string", "description": "Proposition ID (<year>-<number>)", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Discard any cached prediction and score again", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid proposition ID or no usable data"},
                    "404": {"description": "Proposition not found"}
                }
            }
        },
        "/api/v1/propositions/{id}/similar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Find historically similar propositions",
                "parameters": [
                    {"type": "string", "description": "Proposition ID (<year>-<number>)", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum number of matches", "name": "limit", "in": "query"},
                    {"type": "number", "description": "Minimum similarity score", "name": "min_similarity", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid parameters"},
                    "404": {"description": "Proposition not found"}
                }
            }
        },
        "/api/v1/propositions/{id}/impact": {
            "get": {
                "produces": ["application/json"],
                "tags": ["impact"],
                "summary": "Project district-level partisan impact",
                "parameters": [
                    {"type": "string", "description": "Proposition ID (<year>-<number>)", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "District type filter", "name": "district_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Proposition not found"}
                }
            }
        },
        "/api/v1/propositions/{id}/impact/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["impact"],
                "summary": "Aggregate district impact by region",
                "parameters": [
                    {"type": "string", "description": "Proposition ID (<year>-<number>)", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "District type filter", "name": "district_type", "in": "query"},
                    {"type": "string", "description": "Return a single region (case-insensitive)", "name": "region", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid parameters"},
                    "404": {"description": "Proposition not found"}
                }
            }
        },
        "/api/v1/propositions/{id}/impact/districts/{districtID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["impact"],
                "summary": "Project a single district's partisan impact",
                "parameters": [
                    {"type": "string", "description": "Proposition ID (<year>-<number>)", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "District ID", "name": "districtID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid proposition ID"},
                    "404": {"description": "Proposition or district not found"}
                }
            }
        },
        "/api/v1/propositions/{id}/scenarios": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Simulate a what-if scenario",
                "parameters": [
                    {"type": "string", "description": "Proposition ID (<year>-<number>)", "name": "id", "in": "path", "required": true},
                    {"description": "Scenario request", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid parameters"},
                    "404": {"description": "Proposition or preset not found"}
                }
            }
        },
        "/api/v1/scenarios/presets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "List scenario presets",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PropForecast API",
	Description:      "Ballot proposition outcome predictions, district impact projections and what-if scenarios.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
