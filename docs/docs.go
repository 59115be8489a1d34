// Package docs registers the lemonai OpenAPI document served by the Swagger UI.
// It is maintained by hand alongside the handler annotations.
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
        "/clipboard/copy": {
            "post": {
                "description": "Checks the clipboard-write permission and writes the field value to the host clipboard",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clipboard"],
                "summary": "Copy a field to the clipboard",
                "parameters": [
                    {
                        "description": "Fields and source element",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CopyRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CopyEventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/clipboard/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clipboard"],
                "summary": "List copy events",
                "parameters": [
                    {"type": "string", "description": "Filter by outcome", "name": "outcome", "in": "query"},
                    {"type": "string", "description": "Filter by source element", "name": "source_id", "in": "query"},
                    {"type": "integer", "description": "Page size (default 50, max 200)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CopyEventsListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/clipboard/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clipboard"],
                "summary": "Get copy event",
                "parameters": [
                    {"type": "string", "description": "Event UUID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CopyEventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/tailwind": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tailwind"],
                "summary": "List style-build variants",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.VariantsResponse"}}
                }
            }
        },
        "/tailwind/{variant}": {
            "get": {
                "description": "Returns the descriptor with default font stacks expanded",
                "produces": ["application/json"],
                "tags": ["tailwind"],
                "summary": "Get style-build descriptor",
                "parameters": [
                    {"type": "string", "description": "Variant: components, components-wide, templates", "name": "variant", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tailwind.Resolved"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CopyEventResponse": {
            "type": "object",
            "properties": {
                "content_length": {"type": "integer"},
                "created_at": {"type": "string"},
                "error_message": {"type": "string"},
                "id": {"type": "string"},
                "outcome": {"type": "string"},
                "permission": {"type": "string"},
                "source_id": {"type": "string"}
            }
        },
        "dto.CopyEventsListResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/dto.CopyEventResponse"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "dto.CopyRequest": {
            "type": "object",
            "properties": {
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "source_id": {"type": "string"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/dto.ErrorDetail"}
            }
        },
        "dto.VariantsResponse": {
            "type": "object",
            "properties": {
                "default": {"type": "string"},
                "variants": {"type": "array", "items": {"type": "string"}}
            }
        },
        "tailwind.Resolved": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"type": "string"}},
                "plugins": {"type": "array", "items": {"type": "string"}},
                "theme": {"$ref": "#/definitions/tailwind.ResolvedTheme"}
            }
        },
        "tailwind.ResolvedExtension": {
            "type": "object",
            "properties": {
                "colors": {"type": "object", "additionalProperties": {"type": "string"}},
                "fontFamily": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "maxWidth": {"type": "object", "additionalProperties": {"type": "string"}},
                "minWidth": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "tailwind.ResolvedTheme": {
            "type": "object",
            "properties": {
                "extend": {"$ref": "#/definitions/tailwind.ResolvedExtension"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "lemonai API",
	Description:      "Prompt editor backend: permission-gated clipboard copies and Tailwind build descriptors.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
